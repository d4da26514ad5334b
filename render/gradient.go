package render

import (
	"image"
	"image/color"
	"math"
)

// clamp255 rounds and clamps a channel value to the 0-255 range.
func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpColor interpolates two colors channel-wise. t outside [0,1] clamps.
func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: clamp255(lerp(float64(c1.R), float64(c2.R), t)),
		G: clamp255(lerp(float64(c1.G), float64(c2.G), t)),
		B: clamp255(lerp(float64(c1.B), float64(c2.B), t)),
		A: clamp255(lerp(float64(c1.A), float64(c2.A), t)),
	}
}

// linearGradient returns a vertical ramp, 0 at the top row to 255 at the bottom.
func linearGradient(size int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		v := clamp255(255 * rowT(y, size))
		for x := 0; x < size; x++ {
			g.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return g
}

func rowT(y, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(y) / float64(size-1)
}

// diagonalGradient averages a vertical ramp with its horizontal counterpart,
// giving a top-left-dark to bottom-right-light falloff.
func diagonalGradient(size int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := clamp255(255 * (rowT(y, size) + rowT(x, size)) / 2)
			g.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return g
}

// radialGradient returns a field that is brightest at the center and falls off
// toward the edges. gamma biases the falloff curve.
func radialGradient(size int, gamma float64) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center + 0.5
			dy := float64(y) - center + 0.5
			t := clamp01(1 - math.Hypot(dx, dy)/center)
			g.SetGray(x, y, color.Gray{Y: clamp255(math.Pow(t, gamma) * 255)})
		}
	}
	return g
}

// colorGradient fills a layer with a vertical top-to-bottom color blend.
func colorGradient(size int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := lerpColor(top, bottom, rowT(y, size))
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// blendColors interpolates two colors per pixel, weighted by a gradient field:
// c0 where the field is 0, c1 where it is 255. Equivalent to compositing two
// flat layers through the field as a blend mask.
func blendColors(size int, c0, c1 color.NRGBA, field *image.Gray) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := float64(field.GrayAt(x, y).Y) / 255
			img.SetNRGBA(x, y, lerpColor(c0, c1, t))
		}
	}
	return img
}

// radialGlowLayer builds a uniform-color layer whose alpha is a radial field
// scaled by intensity, for soft accent glows.
func radialGlowLayer(size int, c color.NRGBA, intensity, gamma float64) *image.NRGBA {
	field := radialGradient(size, gamma)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := clamp255(float64(field.GrayAt(x, y).Y) * intensity)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: a})
		}
	}
	return img
}
