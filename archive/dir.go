package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Dir is an archive that writes each image to a file in a directory.
type Dir string

func NewDir(dir string) (Dir, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return Dir(dir), nil
}

func (d Dir) Exists(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(string(d), filepath.Base(name)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Store writes b to a file called name, which must not already exist.
func (d Dir) Store(name string, b []byte) error {
	file := filepath.Join(string(d), filepath.Base(name))

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		return err
	}

	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
