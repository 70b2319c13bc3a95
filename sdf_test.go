package sdfvm

import (
	"math"
	"testing"
)

func TestSDFCircle(t *testing.T) {
	center := V2(10, 10)
	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"center", V2(10, 10), -5},
		{"on boundary", V2(15, 10), 0},
		{"outside", V2(10, 22), 7},
		{"inside", V2(13, 10), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SDFCircle(tt.p, center, 5); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SDFCircle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSDFSegment(t *testing.T) {
	a, b := V2(0, 0), V2(10, 0)
	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"above middle", V2(5, 3), 3},
		{"beyond end", V2(13, 4), 5},
		{"before start", V2(-3, -4), 5},
		{"on segment", V2(7, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SDFSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SDFSegment = %v, want %v", got, tt.want)
			}
		})
	}

	// Degenerate segment collapses to point distance.
	if got := SDFSegment(V2(3, 4), V2(0, 0), V2(0, 0)); math.Abs(got-5) > 1e-12 {
		t.Errorf("degenerate SDFSegment = %v, want 5", got)
	}
}

func TestSDFTriangle(t *testing.T) {
	a, b, c := V2(0, 0), V2(10, 0), V2(0, 10)

	if got := SDFTriangle(V2(2, 2), a, b, c); got >= 0 {
		t.Errorf("interior point distance = %v, want negative", got)
	}
	if got := SDFTriangle(V2(5, -3), a, b, c); math.Abs(got-3) > 1e-12 {
		t.Errorf("point below edge = %v, want 3", got)
	}
	// Winding must not matter.
	cw := SDFTriangle(V2(2, 2), a, c, b)
	ccw := SDFTriangle(V2(2, 2), a, b, c)
	if math.Abs(cw-ccw) > 1e-12 {
		t.Errorf("winding changed distance: %v vs %v", cw, ccw)
	}
}

func TestSDFRoundedRectReducesToBox(t *testing.T) {
	lt, rb := V2(0, 0), V2(10, 6)
	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"center", V2(5, 3), -3},
		{"right of box", V2(14, 3), 4},
		{"corner diagonal", V2(13, 10), 5},
		{"on edge", V2(10, 3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SDFRoundedRect(tt.p, lt, rb, [4]float64{})
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SDFRoundedRect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSDFRoundedRectCorners(t *testing.T) {
	lt, rb := V2(0, 0), V2(20, 20)
	rounding := [4]float64{5, 0, 0, 0}

	// Top-left corner is rounded: its tip lies outside the shape.
	if got := SDFRoundedRect(V2(0.5, 0.5), lt, rb, rounding); got <= 0 {
		t.Errorf("rounded corner tip = %v, want positive", got)
	}
	// Top-right corner stays square: its tip is inside.
	if got := SDFRoundedRect(V2(19.5, 0.5), lt, rb, rounding); got >= 0 {
		t.Errorf("square corner tip = %v, want negative", got)
	}
}

func TestSDFRoundedRectRadiusClamp(t *testing.T) {
	// Radius larger than half the shorter side clamps; a 10x4 box with
	// radius 100 behaves like radius 2.
	lt, rb := V2(0, 0), V2(10, 4)
	big := SDFRoundedRect(V2(5, 2), lt, rb, [4]float64{100, 100, 100, 100})
	clamped := SDFRoundedRect(V2(5, 2), lt, rb, [4]float64{2, 2, 2, 2})
	if math.Abs(big-clamped) > 1e-12 {
		t.Errorf("clamped radius distance = %v, want %v", big, clamped)
	}
}

func TestSDFHalfPlane(t *testing.T) {
	// Line along +x through the origin: left of the direction (negative
	// y, since y grows downward) is inside.
	a, b := V2(0, 0), V2(10, 0)
	if got := SDFHalfPlane(V2(3, -2), a, b); math.Abs(got+2) > 1e-12 {
		t.Errorf("left side = %v, want -2", got)
	}
	if got := SDFHalfPlane(V2(3, 4), a, b); math.Abs(got-4) > 1e-12 {
		t.Errorf("right side = %v, want 4", got)
	}
	if got := SDFHalfPlane(V2(-100, 0), a, b); math.Abs(got) > 1e-12 {
		t.Errorf("on line = %v, want 0", got)
	}
}

func TestSDFQuadBezierEndpoints(t *testing.T) {
	p0, p1, p2 := V2(0, 0), V2(5, 10), V2(10, 0)

	if got := math.Abs(SDFQuadBezier(p0, p0, p1, p2)); got > 1e-9 {
		t.Errorf("distance at start = %v, want 0", got)
	}
	if got := math.Abs(SDFQuadBezier(p2, p0, p1, p2)); got > 1e-9 {
		t.Errorf("distance at end = %v, want 0", got)
	}
	// The curve midpoint B(0.5) = (5, 5).
	if got := math.Abs(SDFQuadBezier(V2(5, 5), p0, p1, p2)); got > 1e-9 {
		t.Errorf("distance at apex = %v, want 0", got)
	}
}

func TestSDFQuadBezierMagnitude(t *testing.T) {
	// Degenerate curve along the x axis: magnitude is point-line
	// distance for samples over the segment's interior.
	p0, p1, p2 := V2(0, 0), V2(5, 0), V2(10, 0)
	if got := math.Abs(SDFQuadBezier(V2(5, 3), p0, p1, p2)); math.Abs(got-3) > 1e-9 {
		t.Errorf("|distance| = %v, want 3", got)
	}

	// Symmetric arch: the sample far above the apex is closest to the
	// apex itself.
	a0, a1, a2 := V2(0, 0), V2(5, 10), V2(10, 0)
	got := math.Abs(SDFQuadBezier(V2(5, 8), a0, a1, a2))
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("|distance above apex| = %v, want 3", got)
	}
}

func TestSDFQuadBezierSign(t *testing.T) {
	// Arch opening downward (y grows down): points on the two sides of
	// the curve get opposite signs.
	p0, p1, p2 := V2(0, 0), V2(5, 10), V2(10, 0)
	above := SDFQuadBezier(V2(5, 1), p0, p1, p2)
	below := SDFQuadBezier(V2(5, 9), p0, p1, p2)
	if above == 0 || below == 0 {
		t.Fatalf("expected nonzero distances, got %v and %v", above, below)
	}
	if (above > 0) == (below > 0) {
		t.Errorf("same sign on both sides: %v and %v", above, below)
	}
}
