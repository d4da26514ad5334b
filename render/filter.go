package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// blurLayer applies a Gaussian blur to an RGBA layer.
func blurLayer(layer *image.NRGBA, sigma float64) *image.NRGBA {
	return imaging.Blur(layer, sigma)
}

// blurGray applies a Gaussian blur to a coverage mask.
func blurGray(g *image.Gray, sigma float64) *image.Gray {
	blurred := imaging.Blur(g, sigma)
	b := g.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetGray(x, y, color.Gray{Y: blurred.NRGBAAt(x, y).R})
		}
	}
	return out
}

// unsharpGray sharpens a mask by adding back the difference against a blurred
// copy: out = v + (v-blurred)*percent/100 wherever |v-blurred| exceeds the
// threshold. Run after a smoothing blur to keep edges crisp.
func unsharpGray(g *image.Gray, sigma float64, percent, threshold int) *image.Gray {
	blurred := blurGray(g, sigma)
	b := g.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := int(g.GrayAt(x, y).Y)
			diff := v - int(blurred.GrayAt(x, y).Y)
			if diff < threshold && -diff < threshold {
				out.SetGray(x, y, color.Gray{Y: uint8(v)})
				continue
			}
			out.SetGray(x, y, color.Gray{Y: clamp255(float64(v) + float64(diff*percent)/100)})
		}
	}
	return out
}
