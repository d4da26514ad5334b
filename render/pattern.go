package render

import (
	"image"

	"github.com/fogleman/gg"
)

// Circuit-ish background pattern: a few faint traces between node dots,
// softened with a light blur.
const (
	traceAlpha      = 48
	trace3Alpha     = 42
	nodeFillAlpha   = 40
	nodeRingAlpha   = 70
	traceWidthFrac  = 0.012
	trace3WidthFrac = 0.010
	nodeRadiusFrac  = 0.018
	nodeRingFrac    = 0.004
	patternBlurFrac = 0.004
)

var patternNodes = [][2]float64{
	{0.18, 0.30},
	{0.30, 0.22},
	{0.68, 0.26},
	{0.80, 0.38},
	{0.22, 0.72},
	{0.36, 0.62},
}

func circuitPattern(size int) *image.NRGBA {
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	n := make([][2]float64, len(patternNodes))
	for i, p := range patternNodes {
		n[i] = [2]float64{float64(int(s * p[0])), float64(int(s * p[1]))}
	}

	dc.SetRGBA255(int(colorAccent.R), int(colorAccent.G), int(colorAccent.B), traceAlpha)
	dc.SetLineWidth(float64(int(s * traceWidthFrac)))
	dc.MoveTo(n[0][0], n[0][1])
	dc.LineTo(n[1][0], n[1][1])
	dc.LineTo(n[1][0], n[1][1]-float64(int(s*0.10)))
	dc.Stroke()
	dc.MoveTo(n[2][0], n[2][1])
	dc.LineTo(n[3][0], n[3][1])
	dc.LineTo(n[3][0], n[3][1]+float64(int(s*0.12)))
	dc.Stroke()

	dc.SetRGBA255(int(colorAccent2.R), int(colorAccent2.G), int(colorAccent2.B), trace3Alpha)
	dc.SetLineWidth(float64(int(s * trace3WidthFrac)))
	dc.MoveTo(n[4][0], n[4][1])
	dc.LineTo(n[5][0], n[5][1])
	dc.LineTo(n[5][0]+float64(int(s*0.10)), n[5][1])
	dc.Stroke()

	r := float64(int(s * nodeRadiusFrac))
	for _, p := range n {
		dc.SetRGBA255(int(colorWhite.R), int(colorWhite.G), int(colorWhite.B), nodeFillAlpha)
		dc.DrawCircle(p[0], p[1], r)
		dc.Fill()
		dc.SetRGBA255(int(colorAccent2.R), int(colorAccent2.G), int(colorAccent2.B), nodeRingAlpha)
		dc.SetLineWidth(max(1, float64(size)*nodeRingFrac))
		dc.DrawCircle(p[0], p[1], r)
		dc.Stroke()
	}

	layer := newLayer(size)
	over(layer, dc.Image())
	return blurLayer(layer, float64(int(s*patternBlurFrac)))
}
