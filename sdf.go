package sdfvm

import "math"

// Primitive signed distance functions. All follow the standard SDF sign
// convention: positive outside, negative inside, zero on the boundary.
// Coordinates are in shape-local space; the interpreter applies the
// inverse of the current transform before calling these.

// SDFCircle returns the exact signed distance from p to a circle.
func SDFCircle(p, center Vec2, radius float64) float64 {
	return p.Sub(center).Length() - radius
}

// SDFSegment returns the exact unsigned distance from p to the segment
// a-b, via the clamped projection parameter. Always >= 0; used as a
// sub-primitive by SDFTriangle and for stroked lines.
func SDFSegment(p, a, b Vec2) float64 {
	pa := p.Sub(a)
	ba := b.Sub(a)
	denom := ba.LengthSq()
	h := 0.0
	if denom != 0 {
		h = clamp(pa.Dot(ba)/denom, 0, 1)
	}
	return pa.Sub(ba.Mul(h)).Length()
}

// SDFTriangle returns the exact signed distance from p to the triangle
// a-b-c. The magnitude is the minimum of the three edge-segment
// distances; the sign flips negative when all three edge cross products
// agree, which marks the interior for either winding.
func SDFTriangle(p, a, b, c Vec2) float64 {
	d := math.Min(SDFSegment(p, a, b),
		math.Min(SDFSegment(p, b, c), SDFSegment(p, c, a)))

	s := signOf(b.Sub(a).Cross(p.Sub(a))) +
		signOf(c.Sub(b).Cross(p.Sub(b))) +
		signOf(a.Sub(c).Cross(p.Sub(c)))
	if s == 3 || s == -3 {
		return -d
	}
	return d
}

// SDFRoundedRect returns the exact signed distance from p to an
// axis-aligned rectangle spanning lt to rb, with an independent corner
// radius per quadrant. The rounding array is ordered top-left, top-right,
// bottom-right, bottom-left (y grows downward). Radii are clamped to half
// the shorter side. With all radii zero this reduces exactly to the box
// distance.
func SDFRoundedRect(p, lt, rb Vec2, rounding [4]float64) float64 {
	center := lt.Add(rb).Mul(0.5)
	half := V2(math.Abs(rb.X-lt.X)/2, math.Abs(rb.Y-lt.Y)/2)
	q := p.Sub(center)

	var r float64
	switch {
	case q.X < 0 && q.Y < 0:
		r = rounding[0]
	case q.X >= 0 && q.Y < 0:
		r = rounding[1]
	case q.X >= 0 && q.Y >= 0:
		r = rounding[2]
	default:
		r = rounding[3]
	}
	if maxR := math.Min(half.X, half.Y); r > maxR {
		r = maxR
	}

	dx := math.Abs(q.X) - half.X + r
	dy := math.Abs(q.Y) - half.Y + r
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside - r
}

// SDFHalfPlane returns the exact signed distance from p to the infinite
// line through a and b, oriented so the left side of the a->b direction
// is negative (inside).
func SDFHalfPlane(p, a, b Vec2) float64 {
	dir := b.Sub(a)
	length := dir.Length()
	return dir.Cross(p.Sub(a)) / length
}

// SDFQuadBezier returns the analytic signed distance from p to the
// quadratic Bezier curve with control points p0, p1, p2.
//
// The nearest-point condition dot(B(t)-p, B'(t)) = 0 expands to a cubic
// in t, solved in closed form (see solveCubic); no iteration is involved.
// Roots are clamped to [0, 1] and the closest candidate wins, with the
// endpoints always considered. The sign comes from the cross product of
// the tangent at the nearest point with the vector to the sample, so the
// convex side of the curve is negative, consistent with SDFHalfPlane when
// the curve degenerates to a line.
func SDFQuadBezier(p, p0, p1, p2 Vec2) float64 {
	a := p1.Sub(p0)
	b := p0.Sub(p1.Mul(2)).Add(p2)
	d := p0.Sub(p)

	var roots [3]float64
	n := solveCubic(&roots,
		b.LengthSq(),
		3*a.Dot(b),
		2*a.LengthSq()+d.Dot(b),
		d.Dot(a))

	bestDistSq := math.Inf(1)
	bestT := 0.0
	var bestV Vec2

	consider := func(t float64) {
		q := p0.Add(a.Mul(2 * t)).Add(b.Mul(t * t))
		v := p.Sub(q)
		if distSq := v.LengthSq(); distSq < bestDistSq {
			bestDistSq = distSq
			bestT = t
			bestV = v
		}
	}

	consider(0)
	consider(1)
	for i := 0; i < n; i++ {
		if t := roots[i]; t > 0 && t < 1 {
			consider(t)
		}
	}

	tangent := a.Add(b.Mul(bestT)).Mul(2)
	return math.Copysign(math.Sqrt(bestDistSq), tangent.Cross(bestV))
}

// signOf returns -1, 0 or 1 according to the sign of x.
func signOf(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
