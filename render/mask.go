package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// roundedRectMask rasterizes the icon silhouette: a filled rounded rectangle
// with antialiased edges, as an 8-bit coverage mask.
func roundedRectMask(size, radius int) *image.Gray {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(radius))
	dc.Fill()
	return coverage(dc)
}

// circleMask rasterizes a filled circle spanning a d-by-d square.
func circleMask(d int) *image.Gray {
	dc := gg.NewContext(d, d)
	dc.SetColor(color.White)
	r := float64(d) / 2
	dc.DrawCircle(r, r, r)
	dc.Fill()
	return coverage(dc)
}

// coverage extracts the alpha channel of a gg context as a grayscale mask.
// Shapes must be drawn in a fully opaque color.
func coverage(dc *gg.Context) *image.Gray {
	src := dc.Image().(*image.RGBA)
	b := src.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.SetGray(x, y, color.Gray{Y: src.RGBAAt(x, y).A})
		}
	}
	return g
}

// alphaOf copies a layer's alpha channel into a grayscale mask.
func alphaOf(layer *image.NRGBA) *image.Gray {
	b := layer.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.SetGray(x, y, color.Gray{Y: layer.NRGBAAt(x, y).A})
		}
	}
	return g
}

// clipToMask multiplies a layer's alpha by a coverage mask (both treated as
// 0-255 fixed-point fractions) and returns the clipped copy. The result alpha
// never exceeds either input, so nothing survives outside the mask.
func clipToMask(layer *image.NRGBA, mask *image.Gray) *image.NRGBA {
	b := layer.Bounds()
	out := image.NewNRGBA(b)
	copy(out.Pix, layer.Pix)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := out.PixOffset(x, y)
			a := uint16(out.Pix[i+3]) * uint16(mask.GrayAt(x, y).Y)
			out.Pix[i+3] = uint8(a / 255)
		}
	}
	return out
}

// withAlpha builds a uniform-color layer whose alpha channel is the given
// mask, optionally scaled by factor (1.0 keeps the mask as-is).
func withAlpha(size int, c color.NRGBA, mask *image.Gray, factor float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := clamp255(float64(mask.GrayAt(x, y).Y) * factor)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: a})
		}
	}
	return img
}

// throughMask pastes fill onto a fresh transparent layer using mask as the
// per-pixel alpha, leaving everything outside the mask transparent.
func throughMask(fill *image.NRGBA, mask *image.Gray) *image.NRGBA {
	b := fill.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := fill.NRGBAAt(x, y)
			c.A = uint8(uint16(c.A) * uint16(mask.GrayAt(x, y).Y) / 255)
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
