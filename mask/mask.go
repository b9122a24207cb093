/*
Package mask converts the black and white mask bitmaps shipped with ADC2
symbol sets into alpha masks and applies them to symbol images.

Mask bitmaps are black where a symbol should be opaque and white where it
should be transparent. Either a single luminance band or the red band of an
RGB image is used; the other bands of a black and white image carry the same
information.
*/
package mask

import (
	"image"
	"image/color"
	"image/draw"
)

const opaque = 0xff

// Generate returns an image with the same bounds as m where every pixel is
// black with an alpha of 255 minus the source luminance (or red) value.
func Generate(m image.Image) *image.NRGBA {
	b := m.Bounds()
	out := image.NewNRGBA(b)

	switch src := m.(type) {
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.Pix[out.PixOffset(x, y)+3] = opaque - src.Pix[src.PixOffset(x, y)]
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, _, _, _ := m.At(x, y).RGBA()
				out.Pix[out.PixOffset(x, y)+3] = opaque - uint8(r>>8)
			}
		}
	}

	return out
}

// Composite draws m over base using destination-atop and returns the result
// as a new image with the same bounds as base. The top-left corners of both
// images are aligned. Wherever m covers base the result takes the alpha of
// m, with the color of base where base is opaque. Pixels of base outside m
// are copied unchanged.
func Composite(base, m image.Image) *image.NRGBA {
	bb := base.Bounds()
	out := image.NewNRGBA(bb)
	draw.Draw(out, bb, base, bb.Min, draw.Src)

	mb := m.Bounds()
	offset := mb.Min.Sub(bb.Min)
	r := bb.Intersect(mb.Sub(offset))

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s := color.NRGBAModel.Convert(m.At(x+offset.X, y+offset.Y)).(color.NRGBA)
			i := out.PixOffset(x, y)
			d := out.Pix[i : i+4 : i+4]
			da := uint32(d[3])

			// Non-premultiplied form of Porter-Duff destination-atop:
			// alpha is the source alpha, color is the destination color
			// blended towards the source by the destination's transparency
			d[0] = atop(s.R, d[0], da)
			d[1] = atop(s.G, d[1], da)
			d[2] = atop(s.B, d[2], da)
			d[3] = s.A
		}
	}

	return out
}

func atop(s, d uint8, da uint32) uint8 {
	return uint8((uint32(s)*(opaque-da) + uint32(d)*da + opaque/2) / opaque)
}
