package adc2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/bodgit/adc2/base250"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

type record struct {
	name  string
	mask  uint16
	rects [numZoom]image.Rectangle
}

// rec returns a record using the same rectangle at every zoom level.
func rec(name string, mask uint16, r image.Rectangle) record {
	return record{name, mask, [numZoom]image.Rectangle{r, r, r}}
}

type fixture struct {
	header, orientation, style, version int8

	mapBoard, gamePieces, masks []record
}

func newFixture() fixture {
	return fixture{header: -1, orientation: 1}
}

func writeRecord(t *testing.T, b *bytes.Buffer, r record) {
	b.WriteString(r.name)
	b.WriteByte(0)
	require.NoError(t, base250.WriteWord(b, r.mask))
	for _, rect := range r.rects {
		// Corners are inclusive
		for _, v := range []int32{int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Max.X - 1), int32(rect.Max.Y - 1)} {
			require.NoError(t, binary.Write(b, binary.BigEndian, v))
		}
	}
}

func (f fixture) bytes(t *testing.T) []byte {
	b := new(bytes.Buffer)
	b.Write([]byte{byte(f.header), byte(f.orientation), byte(f.style), byte(f.version)})

	for _, records := range [][]record{f.mapBoard, f.gamePieces, f.masks} {
		require.NoError(t, base250.WriteWord(b, uint16(len(records))))
		for i := 0; i < numZoom*2; i++ {
			require.NoError(t, binary.Write(b, binary.BigEndian, int32(640)))
		}
	}

	for _, r := range f.mapBoard {
		writeRecord(t, b, r)
	}
	for _, r := range f.gamePieces {
		writeRecord(t, b, r)
	}
	if f.version == 0 {
		for _, r := range f.masks {
			writeRecord(t, b, r)
		}
	}

	return b.Bytes()
}

type sheets map[Category]image.Image

func (s sheets) Sheet(c Category, z Zoom) (image.Image, error) {
	m, ok := s[c]
	if !ok {
		return nil, fmt.Errorf("no %s sheet", c)
	}
	return m, nil
}

func fill(m *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetRGBA(x, y, c)
		}
	}
}

func fillGray(m *image.Gray, r image.Rectangle, y uint8) {
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			m.SetGray(px, py, color.Gray{Y: y})
		}
	}
}

var (
	red  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	gray = color.RGBA{0x80, 0x80, 0x80, 0xff}
	blue = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

// terrainSheet is three 8x8 squares: red, gray and blue.
func terrainSheet() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 24, 8))
	fill(m, image.Rect(0, 0, 8, 8), red)
	fill(m, image.Rect(8, 0, 16, 8), gray)
	fill(m, image.Rect(16, 0, 24, 8), blue)
	return m
}

// maskSheet is a single 8x8 mask, black on the left and white on the right.
func maskSheet() *image.Gray {
	m := image.NewGray(image.Rect(0, 0, 8, 8))
	fillGray(m, image.Rect(4, 0, 8, 8), 0xff)
	return m
}

// endToEnd is three map board symbols, the second of which is masked, and
// two game pieces.
func endToEnd() fixture {
	f := newFixture()
	f.mapBoard = []record{
		rec("clear", 0, image.Rect(0, 0, 8, 8)),
		rec("forest", 1, image.Rect(8, 0, 16, 8)),
		rec("water", 0, image.Rect(16, 0, 24, 8)),
	}
	f.gamePieces = []record{
		rec("infantry", 1, image.Rect(0, 0, 8, 8)),
		rec("armour", 0, image.Rect(16, 0, 24, 8)),
	}
	f.masks = []record{
		rec("mask", 0, image.Rect(0, 0, 8, 8)),
	}
	return f
}

func endToEndSheets() sheets {
	return sheets{
		MapBoard:  terrainSheet(),
		GamePiece: terrainSheet(),
		Mask:      maskSheet(),
	}
}

func encodeBMP(t *testing.T, m image.Image) []byte {
	b := new(bytes.Buffer)
	require.NoError(t, bmp.Encode(b, m))
	return b.Bytes()
}

// endToEndFS lays the end to end fixture out as files, using the given
// sheet filenames.
func endToEndFS(t *testing.T, terrain, units, masks string) fstest.MapFS {
	return fstest.MapFS{
		"set.ads": &fstest.MapFile{Data: endToEnd().bytes(t)},
		terrain:   &fstest.MapFile{Data: encodeBMP(t, terrainSheet())},
		units:     &fstest.MapFile{Data: encodeBMP(t, terrainSheet())},
		masks:     &fstest.MapFile{Data: encodeBMP(t, maskSheet())},
	}
}

func decodeFixture(t *testing.T, f fixture, s sheets, opts ...Option) (*SymbolSet, error) {
	t.Helper()
	return Decode(bytes.NewReader(f.bytes(t)), s, opts...)
}
