package mask

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformGray(w, h int, y uint8) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = y
	}
	return m
}

func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, c)
		}
	}
	return m
}

func assertUniform(t *testing.T, m *image.NRGBA, want color.NRGBA) {
	t.Helper()
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got := m.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGenerateOneBand(t *testing.T) {
	tables := []struct {
		w, h int
		y    uint8
		want color.NRGBA
	}{
		{1, 1, 0x00, color.NRGBA{0, 0, 0, 0xff}},
		{7, 3, 0x00, color.NRGBA{0, 0, 0, 0xff}},
		{7, 3, 0xff, color.NRGBA{0, 0, 0, 0x00}},
		{4, 9, 0x40, color.NRGBA{0, 0, 0, 0xbf}},
	}

	for _, table := range tables {
		out := Generate(uniformGray(table.w, table.h, table.y))
		assert.Equal(t, image.Rect(0, 0, table.w, table.h), out.Bounds())
		assertUniform(t, out, table.want)
	}
}

func TestGenerateThreeBand(t *testing.T) {
	black := Generate(uniformRGBA(5, 5, color.RGBA{0, 0, 0, 0xff}))
	assertUniform(t, black, color.NRGBA{0, 0, 0, 0xff})

	white := Generate(uniformRGBA(5, 5, color.RGBA{0xff, 0xff, 0xff, 0xff}))
	assertUniform(t, white, color.NRGBA{0, 0, 0, 0})

	// Only the red band matters
	red := Generate(uniformRGBA(2, 2, color.RGBA{0x80, 0x00, 0xff, 0xff}))
	assertUniform(t, red, color.NRGBA{0, 0, 0, 0x7f})
}

func TestGeneratePaletted(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{color.Black, color.White})
	m.SetColorIndex(1, 0, 1)

	out := Generate(m)
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 0, 0, 0x00}, out.NRGBAAt(1, 0))
}

func TestGenerateKeepsBounds(t *testing.T) {
	m := uniformGray(10, 10, 0).SubImage(image.Rect(2, 3, 6, 8))
	out := Generate(m)
	assert.Equal(t, image.Rect(2, 3, 6, 8), out.Bounds())
}

func TestComposite(t *testing.T) {
	gray := color.RGBA{0x80, 0x80, 0x80, 0xff}
	base := uniformRGBA(4, 4, gray)

	m := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i] = 0x80
	}

	out := Composite(base, m)
	assertUniform(t, out, color.NRGBA{0x80, 0x80, 0x80, 0x80})
}

func TestCompositeBlackWhite(t *testing.T) {
	base := uniformRGBA(2, 1, color.RGBA{0x10, 0x20, 0x30, 0xff})

	bw := image.NewGray(image.Rect(0, 0, 2, 1))
	bw.Pix[1] = 0xff

	out := Composite(base, Generate(bw))
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0xff}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0x00}, out.NRGBAAt(1, 0))
}

func TestCompositeOffsets(t *testing.T) {
	sheet := uniformRGBA(10, 10, color.RGBA{0x01, 0x02, 0x03, 0xff})
	base := sheet.SubImage(image.Rect(4, 4, 7, 7))

	maskSheet := Generate(uniformGray(10, 10, 0))
	m := maskSheet.SubImage(image.Rect(1, 1, 4, 4))

	out := Composite(base, m)
	assert.Equal(t, image.Rect(4, 4, 7, 7), out.Bounds())
	assertUniform(t, out, color.NRGBA{0x01, 0x02, 0x03, 0xff})
}

func TestCompositeSmallMask(t *testing.T) {
	base := uniformRGBA(3, 1, color.RGBA{0x40, 0x40, 0x40, 0xff})
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	out := Composite(base, m)
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0xff), out.NRGBAAt(1, 0).A)
	assert.Equal(t, uint8(0xff), out.NRGBAAt(2, 0).A)
}
