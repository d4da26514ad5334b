package render

import (
	"image"
	"image/draw"
)

func newLayer(size int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// over alpha-composites src onto dst in place (Porter-Duff over).
func over(dst *image.NRGBA, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
}

// overAt composites src onto dst with its top-left corner at p. Offsets may be
// negative or extend past the canvas; draw clips to the overlap.
func overAt(dst *image.NRGBA, src image.Image, p image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: p, Max: p.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}
