package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Palette, aligned with the app UI.
var (
	colorBg0        = color.NRGBA{11, 16, 34, 255}    // #0b1022
	colorBg1        = color.NRGBA{15, 23, 51, 255}    // #0f1733
	colorAccent     = color.NRGBA{110, 123, 255, 255} // #6e7bff
	colorAccent2    = color.NRGBA{58, 108, 255, 255}  // #3a6cff
	colorCyan       = color.NRGBA{123, 227, 255, 255} // #7be3ff
	colorMintCenter = color.NRGBA{67, 243, 158, 255}  // #43f39e
	colorMintEdge   = color.NRGBA{46, 214, 130, 255}  // #2ed682
	colorWhite      = color.NRGBA{234, 240, 255, 255} // #eaf0ff
	colorWhiteFull  = color.NRGBA{255, 255, 255, 255}
	colorGlyphBlue  = color.NRGBA{178, 206, 255, 255}
	colorShadow     = color.NRGBA{0, 0, 0, 255}
)

// Silhouette, glow and badge placement, as fractions of the canvas size.
const (
	cornerFrac = 0.24

	glow1Scale, glow1Intensity     = 1.2, 0.34
	glow1XFrac, glow1YFrac         = -0.25, -0.30
	glow2Scale, glow2Intensity     = 1.1, 0.28
	glow2XFrac, glow2YFrac         = 0.35, -0.15
	glow3Scale, glow3Intensity     = 1.3, 0.16
	glow3XFrac, glow3YFrac         = -0.10, 0.35
	glowDefaultGamma, glow3Gamma   = 1.8, 2.2

	glyphGlowBlurFrac = 0.030
	glyphGlowAlpha    = 0.38

	badgeDiameterFrac = 0.34
	badgeXFrac        = 0.58
	badgeYFrac        = 0.58
	shadowBlurFrac    = 0.02
	shadowDXFrac      = 0.01
	shadowDYFrac      = 0.015

	borderInsetFrac  = 0.02
	borderRadiusFrac = 0.88 // of the corner radius
	borderAlpha      = 38
	borderWidthFrac  = 0.010
)

// Render builds the full icon at the given square size: background, accent
// glows, circuit pattern, monogram with glow, completion badge with drop
// shadow, and border, every layer clipped to the rounded-square silhouette.
func Render(size int) *image.NRGBA {
	radius := int(float64(size) * cornerFrac)
	mask := roundedRectMask(size, radius)
	s := float64(size)

	// Background base: diagonal blend of the two navy tones.
	canvas := throughMask(blendColors(size, colorBg0, colorBg1, diagonalGradient(size)), mask)

	// Accent glows, oversized and offset past the edges.
	glows := newLayer(size)
	overAt(glows, radialGlowLayer(int(s*glow1Scale), colorAccent, glow1Intensity, glowDefaultGamma),
		image.Pt(int(s*glow1XFrac), int(s*glow1YFrac)))
	overAt(glows, radialGlowLayer(int(s*glow2Scale), colorAccent2, glow2Intensity, glowDefaultGamma),
		image.Pt(int(s*glow2XFrac), int(s*glow2YFrac)))
	overAt(glows, radialGlowLayer(int(s*glow3Scale), colorCyan, glow3Intensity, glow3Gamma),
		image.Pt(int(s*glow3XFrac), int(s*glow3YFrac)))
	over(canvas, clipToMask(glows, mask))

	over(canvas, clipToMask(circuitPattern(size), mask))

	// Monogram with a soft accent glow behind it.
	glyph, gmask := glyphLayer(size)
	glowMask := blurGray(gmask, float64(int(s*glyphGlowBlurFrac)))
	over(canvas, clipToMask(withAlpha(size, colorAccent2, glowMask, glyphGlowAlpha), mask))
	over(canvas, clipToMask(glyph, mask))

	// Badge drop shadow first, then the badge itself at a slightly different
	// offset for the displacement illusion.
	d := int(s * badgeDiameterFrac)
	bx, by := int(s*badgeXFrac), int(s*badgeYFrac)
	shadowMask := blurGray(circleMask(d), float64(int(s*shadowBlurFrac)))
	shadow := newLayer(size)
	overAt(shadow, withAlpha(d, colorShadow, shadowMask, 1), image.Pt(bx+int(s*shadowDXFrac), by+int(s*shadowDYFrac)))
	over(canvas, clipToMask(shadow, mask))

	badge := newLayer(size)
	overAt(badge, renderBadge(d), image.Pt(bx, by))
	over(canvas, clipToMask(badge, mask))

	over(canvas, clipToMask(border(size, radius), mask))

	// Corners stay fully transparent.
	return clipToMask(canvas, mask)
}

// border strokes the subtle inner rounded-rectangle outline.
func border(size, radius int) *image.NRGBA {
	dc := gg.NewContext(size, size)
	dc.SetRGBA255(255, 255, 255, borderAlpha)
	dc.SetLineWidth(max(1, float64(size)*borderWidthFrac))
	inset := float64(size) * borderInsetFrac
	dc.DrawRoundedRectangle(inset, inset, float64(size)-2*inset, float64(size)-2*inset, float64(radius)*borderRadiusFrac)
	dc.Stroke()

	layer := newLayer(size)
	over(layer, dc.Image())
	return layer
}
