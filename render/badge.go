package render

import (
	"image"

	"github.com/fogleman/gg"
)

// Completion badge geometry and finish, as fractions of the badge diameter
// unless noted. Hand-tuned.
const (
	badgeFillGamma = 1.6

	badgeOutlineInset = 0.04
	badgeOutlineWidth = 0.04
	badgeOutlineAlpha = 120

	badgeHighlightIntensity = 0.18
	badgeHighlightGamma     = 2.2

	checkWidthFrac = 0.12
	checkAlpha     = 235
	checkBlurFrac  = 0.006

	// Checkmark polyline: bottom-left, middle-low, top-right.
	checkX1, checkY1 = 0.28, 0.54
	checkX2, checkY2 = 0.44, 0.68
	checkX3, checkY3 = 0.74, 0.36
)

// badgeFill builds the circular two-color fill: center color at the middle
// blending to the edge color outward, driven by a radial gradient field.
func badgeFill(d int) *image.NRGBA {
	field := radialGradient(d, badgeFillGamma)
	fill := blendColors(d, colorMintEdge, colorMintCenter, field)
	return throughMask(fill, circleMask(d))
}

// renderBadge draws the completion badge on its own square sub-canvas: fill,
// semi-transparent outline ring, radial highlight, then the checkmark.
func renderBadge(d int) *image.NRGBA {
	badge := badgeFill(d)

	dc := gg.NewContext(d, d)
	dc.SetRGBA255(int(colorWhite.R), int(colorWhite.G), int(colorWhite.B), badgeOutlineAlpha)
	dc.SetLineWidth(max(1, float64(d)*badgeOutlineWidth))
	ringR := float64(d) * (1 - 2*badgeOutlineInset) / 2
	dc.DrawCircle(float64(d)/2, float64(d)/2, ringR)
	dc.Stroke()
	over(badge, dc.Image())

	over(badge, radialGlowLayer(d, colorWhiteFull, badgeHighlightIntensity, badgeHighlightGamma))
	over(badge, checkmark(d))
	return badge
}

// checkmark draws the three-point polyline with thick rounded joints and a
// light blur for antialiasing.
func checkmark(d int) *image.NRGBA {
	dc := gg.NewContext(d, d)
	dc.SetRGBA255(255, 255, 255, checkAlpha)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineWidth(max(2, float64(d)*checkWidthFrac))
	s := float64(d)
	dc.MoveTo(s*checkX1, s*checkY1)
	dc.LineTo(s*checkX2, s*checkY2)
	dc.LineTo(s*checkX3, s*checkY3)
	dc.Stroke()

	layer := newLayer(d)
	over(layer, dc.Image())
	return blurLayer(layer, float64(max(1, int(float64(d)*checkBlurFrac))))
}
