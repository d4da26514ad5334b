package render

import "testing"

func TestBadgeFillCenterColor(t *testing.T) {
	d := 174 // 0.34 * 512
	fill := badgeFill(d)
	got := fill.NRGBAAt(d/2, d/2)
	colorClose(t, got, colorMintCenter, 2, "badge center")
}

func TestBadgeFillEdgeColor(t *testing.T) {
	d := 174
	fill := badgeFill(d)
	// Just inside the rim, past the highlight falloff.
	x := d/2 + int(float64(d)*0.48)
	got := fill.NRGBAAt(x, d/2)
	colorClose(t, got, colorMintEdge, 2, "badge edge")
}

func TestBadgeFillOutsideCircleTransparent(t *testing.T) {
	d := 96
	fill := badgeFill(d)
	for _, p := range [][2]int{{0, 0}, {d - 1, 0}, {0, d - 1}, {d - 1, d - 1}} {
		if a := fill.NRGBAAt(p[0], p[1]).A; a != 0 {
			t.Errorf("corner (%d,%d) alpha = %d, want 0", p[0], p[1], a)
		}
	}
}

func TestRenderBadge(t *testing.T) {
	d := 174
	badge := renderBadge(d)

	// Corners stay outside the circular silhouette.
	for _, p := range [][2]int{{0, 0}, {d - 1, 0}, {0, d - 1}, {d - 1, d - 1}} {
		if a := badge.NRGBAAt(p[0], p[1]).A; a != 0 {
			t.Errorf("corner (%d,%d) alpha = %d, want 0", p[0], p[1], a)
		}
	}

	// Center is opaque and still mint-dominant under the white highlight.
	c := badge.NRGBAAt(d/2, d/2)
	if c.A != 255 {
		t.Errorf("center alpha = %d, want 255", c.A)
	}
	if c.G < 200 {
		t.Errorf("center green = %d, want mint-dominant (>= 200)", c.G)
	}
	if c.G <= c.R {
		t.Errorf("center %v not mint-dominant", c)
	}
}

func TestCheckmarkInsideBadge(t *testing.T) {
	d := 174
	check := checkmark(d)
	// The elbow of the polyline is fully covered.
	x, y := int(float64(d)*checkX2), int(float64(d)*checkY2)
	if a := check.NRGBAAt(x, y).A; a < 200 {
		t.Errorf("elbow alpha = %d, want opaque stroke", a)
	}
	if a := check.NRGBAAt(1, 1).A; a != 0 {
		t.Errorf("far corner alpha = %d, want 0", a)
	}
}
