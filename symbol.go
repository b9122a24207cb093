package adc2

import (
	"image"
	"image/draw"
	"sync"

	"github.com/bodgit/adc2/mask"
)

// maskIndex is the one-based mask reference stored with each symbol, zero
// meaning no mask.
type maskIndex uint16

func (m maskIndex) resolve(n int) (int, bool) {
	if m == 0 || int(m) > n {
		return 0, false
	}
	return int(m) - 1, true
}

// Symbol is a single map board, game piece or mask symbol. Its image is cut
// out of the shared sheet on first use.
type Symbol struct {
	set      *SymbolSet
	sheet    image.Image
	category Category

	name  string
	index maskIndex
	rect  image.Rectangle
	mask  *Symbol

	once sync.Once
	img  image.Image

	fileName string
}

// read decodes the symbol's name, mask index and rectangles, keeping only
// the rectangle for the active zoom level. If sizes is non-nil it is filled
// with the height of the rectangle at each zoom level.
func (s *Symbol) read(d *decoder, sizes *[numZoom]int) error {
	var err error
	if s.name, err = d.readString(); err != nil {
		return readError("symbol name", err)
	}

	idx, err := d.readWord()
	if err != nil {
		return readError("mask index", err)
	}
	s.index = maskIndex(idx)

	var rects [numZoom]image.Rectangle
	for i := range rects {
		var c [4]int32
		for j := range c {
			if c[j], err = d.readInt32(); err != nil {
				return readError("symbol rectangle", err)
			}
		}
		// Corners are inclusive
		rects[i] = image.Rectangle{
			Min: image.Pt(int(c[0]), int(c[1])),
			Max: image.Pt(int(c[2])+1, int(c[3])+1),
		}
		if sizes != nil {
			sizes[i] = rects[i].Dy()
		}
	}
	s.rect = rects[s.set.zoom]

	return nil
}

func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) Category() Category {
	return s.category
}

// Rect returns the symbol's rectangle within its sheet at the active zoom
// level.
func (s *Symbol) Rect() image.Rectangle {
	return s.rect
}

// Mask returns the mask applied to s, or nil if there isn't one. Masks never
// have a mask themselves.
func (s *Symbol) Mask() *Symbol {
	return s.mask
}

// Image returns the symbol image, applying the mask if there is one. The
// image is computed once and shared by later calls; unmasked symbols share
// pixels with the sheet. Its bounds are the same as Rect.
func (s *Symbol) Image() image.Image {
	s.once.Do(func() {
		m := subImage(s.sheet, s.rect)
		if s.mask != nil {
			m = mask.Composite(m, s.mask.Image())
		}
		s.img = m
	})
	return s.img
}

// FileName returns the archive filename assigned by Externalize, or an empty
// string if the symbol hasn't been written yet.
func (s *Symbol) FileName() string {
	return s.fileName
}

// Externalize writes the symbol image to sink as a PNG under a name unique
// within the set, and within sink if it implements Checker, and returns that
// name. Only the first successful call
// writes anything; later calls return the same name.
func (s *Symbol) Externalize(sink Sink) (string, error) {
	if s.fileName != "" {
		return s.fileName, nil
	}

	name, err := s.set.names.next(s.name, sink)
	if err != nil {
		return "", ioError(err)
	}

	b, err := s.set.encode(s.Image())
	if err != nil {
		return "", ioError(err)
	}

	if err := sink.Store(name, b); err != nil {
		return "", ioError(err)
	}

	s.set.names.add(name)
	s.fileName = name

	return name, nil
}

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

func subImage(m image.Image, r image.Rectangle) image.Image {
	if si, ok := m.(subImager); ok {
		return si.SubImage(r)
	}
	dup := image.NewNRGBA(r)
	draw.Draw(dup, r, m, r.Min, draw.Src)
	return dup
}
