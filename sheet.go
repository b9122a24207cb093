package adc2

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	// Sheets are Windows bitmaps
	_ "golang.org/x/image/bmp"
)

const bitmapExt = ".bmp"

// SheetLoader provides the decoded bitmap sheet for a category at a zoom
// level.
type SheetLoader interface {
	Sheet(c Category, z Zoom) (image.Image, error)
}

// SheetName returns the conventional filename of the sheet for category c at
// zoom level z, given the descriptor filename with its extension removed.
func SheetName(base string, c Category, z Zoom) string {
	return fmt.Sprintf("%s-%c%s%s", base, c.Suffix(), z, bitmapExt)
}

// FSSheets loads sheets from a filesystem following the naming convention
// of SheetName. If the exact filename doesn't exist, the directory is
// searched for a bitmap whose name matches ignoring case.
type FSSheets struct {
	FS   fs.FS
	Base string
}

// Sheet implements SheetLoader.
func (l FSSheets) Sheet(c Category, z Zoom) (image.Image, error) {
	want := SheetName(l.Base, c, z)

	name, err := l.find(want)
	if err != nil {
		return nil, err
	}

	f, err := l.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrIOFailure, name, err)
	}

	return m, nil
}

func (l FSSheets) find(want string) (string, error) {
	if _, err := fs.Stat(l.FS, want); err == nil {
		return want, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	dir := path.Dir(want)
	entries, err := fs.ReadDir(l.FS, dir)
	if err != nil {
		return "", fmt.Errorf("%w: missing bitmap file %s: %w", ErrIOFailure, want, err)
	}

	base := path.Base(want)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), bitmapExt) {
			continue
		}
		if strings.EqualFold(e.Name(), base) {
			return path.Join(dir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("%w: missing bitmap file %s", ErrIOFailure, want)
}
