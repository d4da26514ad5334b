package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Monogram geometry, as fractions of the canvas size. Hand-tuned; adjust here,
// not in the drawing code.
const (
	glyphStrokeFrac = 0.115
	aLeftFrac       = 0.20
	aRightFrac      = 0.56
	aTopFrac        = 0.23
	aBottomFrac     = 0.72
	barYFrac        = 0.54
	barInsetFrac    = 0.06
	barWidthScale   = 0.70

	iLeftFrac   = 0.63
	iWidthFrac  = 0.11
	stemGapFrac = 0.028
	minStemGap  = 2 // px, keeps dot and stem apart at small sizes

	glyphBlurFrac    = 0.0025
	glyphSharpFrac   = 0.006
	glyphSharpPct    = 165
	glyphSharpThresh = 2
)

type glyphGeom struct {
	stroke   int
	aLeft    int
	aRight   int
	aTop     int
	aBottom  int
	aMidX    int
	barY     int
	barWidth int

	iLeft     int
	iWidth    int
	dotBottom int
	stemTop   int
	stemGap   int
}

func glyphGeometry(size int) glyphGeom {
	g := glyphGeom{
		stroke:  int(float64(size) * glyphStrokeFrac),
		aLeft:   int(float64(size) * aLeftFrac),
		aRight:  int(float64(size) * aRightFrac),
		aTop:    int(float64(size) * aTopFrac),
		aBottom: int(float64(size) * aBottomFrac),
		barY:    int(float64(size) * barYFrac),
		iLeft:   int(float64(size) * iLeftFrac),
		iWidth:  int(float64(size) * iWidthFrac),
	}
	g.aMidX = (g.aLeft + g.aRight) / 2
	g.barWidth = max(1, int(float64(g.stroke)*barWidthScale))
	g.dotBottom = g.aTop + g.iWidth
	g.stemGap = max(minStemGap, int(float64(size)*stemGapFrac))
	g.stemTop = g.dotBottom + g.stemGap
	return g
}

// glyphMask rasterizes the "Ai" monogram as a coverage mask: two thick strokes
// with curved joints plus a crossbar for the A, a dot and a rounded stem for
// the i. The mask is smoothed with a small blur, then sharpened with an
// unsharp pass to keep the contour crisp. The order matters for appearance.
func glyphMask(size int) *image.Gray {
	g := glyphGeometry(size)

	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	dc.SetLineWidth(float64(g.stroke))
	dc.DrawLine(float64(g.aLeft), float64(g.aBottom), float64(g.aMidX), float64(g.aTop))
	dc.Stroke()
	dc.DrawLine(float64(g.aMidX), float64(g.aTop), float64(g.aRight), float64(g.aBottom))
	dc.Stroke()

	inset := int(float64(size) * barInsetFrac)
	dc.SetLineWidth(float64(g.barWidth))
	dc.DrawLine(float64(g.aLeft+inset), float64(g.barY), float64(g.aRight-inset), float64(g.barY))
	dc.Stroke()

	dotR := float64(g.iWidth) / 2
	dc.DrawCircle(float64(g.iLeft)+dotR, float64(g.aTop)+dotR, dotR)
	dc.Fill()

	stemH := g.aBottom - g.stemTop
	dc.DrawRoundedRectangle(float64(g.iLeft), float64(g.stemTop), float64(g.iWidth), float64(stemH), dotR)
	dc.Fill()

	mask := coverage(dc)
	mask = blurGray(mask, float64(max(1, int(float64(size)*glyphBlurFrac))))
	mask = unsharpGray(mask, float64(max(1, int(float64(size)*glyphSharpFrac))), glyphSharpPct, glyphSharpThresh)
	return mask
}

// glyphLayer fills the monogram mask with a white-to-light-blue vertical
// gradient and returns both the layer and the mask for the glow pass.
func glyphLayer(size int) (*image.NRGBA, *image.Gray) {
	mask := glyphMask(size)
	fill := colorGradient(size, colorWhiteFull, colorGlyphBlue)
	return throughMask(fill, mask), mask
}
