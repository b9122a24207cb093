package adc2

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
)

// Sink receives encoded symbol images.
type Sink interface {
	Store(name string, b []byte) error
}

// Checker is implemented by sinks that can already hold images, such as an
// archive written by an earlier run. Externalize won't pick a name for which
// Exists reports true.
type Checker interface {
	Exists(name string) (bool, error)
}

// names tracks the archive filenames handed out so far. Comparisons ignore
// case so the names are safe on case-insensitive filesystems.
type names map[string]struct{}

var nameReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "\x00", "")

// next returns the first filename for a symbol called name that hasn't been
// handed out and isn't already in sink.
func (n names) next(name string, sink Sink) (string, error) {
	base := strings.TrimSpace(nameReplacer.Replace(name))
	if base == "" {
		base = "symbol"
	}

	checker, _ := sink.(Checker)

	file := base + ".png"
	for i := 1; ; i++ {
		if !n.has(file) {
			if checker == nil {
				return file, nil
			}
			exists, err := checker.Exists(file)
			if err != nil {
				return "", err
			}
			if !exists {
				return file, nil
			}
		}
		file = fmt.Sprintf("%s(%d).png", base, i)
	}
}

func (n names) has(file string) bool {
	_, ok := n[strings.ToLower(file)]
	return ok
}

func (n names) add(file string) {
	n[strings.ToLower(file)] = struct{}{}
}

func (s *SymbolSet) encode(m image.Image) ([]byte, error) {
	if s.palette > 0 {
		m = paletted(m, s.palette)
	}

	b := new(bytes.Buffer)
	e := png.Encoder{CompressionLevel: png.BestCompression}
	if err := e.Encode(b, m); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unique colors in m, or nil if there are more than limit
func uniqueColors(m image.Image, limit int) color.Palette {
	seen := make(map[color.Color]struct{})
	var p color.Palette
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y))
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == limit {
				return nil
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p
}

// paletted converts m to a paletted image of at most n colors. The colors
// are kept exactly if there are few enough of them, otherwise a median cut
// palette is used.
func paletted(m image.Image, n int) *image.Paletted {
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= n {
		return pm
	}

	b := m.Bounds()

	p := uniqueColors(m, n)
	if p == nil {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, n), m)
	}

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// WriteToArchive externalizes every symbol in the given categories, or just
// the game pieces if no categories are given.
func (s *SymbolSet) WriteToArchive(sink Sink, categories ...Category) error {
	if len(categories) == 0 {
		categories = []Category{GamePiece}
	}
	for _, c := range categories {
		for i, sym := range s.Symbols(c) {
			if _, err := sym.Externalize(sink); err != nil {
				return fmt.Errorf("%s symbol %d: %w", c, i, err)
			}
		}
	}
	return nil
}
