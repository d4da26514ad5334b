package render

import (
	"image"
	"image/color"
	"testing"
)

func uniformGray(size int, v uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, size, size))
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

func stepGray(size int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := size / 2; x < size; x++ {
			g.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return g
}

func TestBlurGrayPreservesFlat(t *testing.T) {
	g := blurGray(uniformGray(32, 128), 2)
	for i, v := range g.Pix {
		if v != 128 {
			t.Fatalf("pixel %d = %d after blur of flat field, want 128", i, v)
		}
	}
}

// Below the threshold the unsharp pass must be a no-op, so flat regions stay
// untouched.
func TestUnsharpFlatRegionUnchanged(t *testing.T) {
	g := uniformGray(32, 77)
	out := unsharpGray(g, 2, glyphSharpPct, glyphSharpThresh)
	for i, v := range out.Pix {
		if v != 77 {
			t.Fatalf("pixel %d = %d, want 77", i, v)
		}
	}
}

func TestUnsharpIncreasesEdgeContrast(t *testing.T) {
	size := 64
	soft := blurGray(stepGray(size), 3)
	sharp := unsharpGray(soft, 3, glyphSharpPct, glyphSharpThresh)

	y := size / 2
	darkX, brightX := size/2-2, size/2+2
	if got, ref := sharp.GrayAt(darkX, y).Y, soft.GrayAt(darkX, y).Y; got > ref {
		t.Errorf("dark side near edge: %d > %d, sharpening should push down", got, ref)
	}
	if got, ref := sharp.GrayAt(brightX, y).Y, soft.GrayAt(brightX, y).Y; got < ref {
		t.Errorf("bright side near edge: %d < %d, sharpening should push up", got, ref)
	}
}
