package sdfvm

import "math"

// Closed-form root solvers for quadratic and cubic equations, used by the
// quadratic Bezier distance function. The cubic solver follows Blinn's
// formulation ("How to Solve a Cubic Equation"): it reduces to a depressed
// cubic and branches on the discriminant sign between the trigonometric
// form (three real roots) and the Cardano cube-root form (one real root).
//
// The solvers are allocation-free: roots are written into a fixed array
// and the count is returned. The per-pixel interpreter calls them for
// every Bezier instruction, so no slice may escape.

// solveQuadratic finds the real roots of a*x^2 + b*x + c = 0.
// A vanishing or non-finite leading coefficient degrades to the linear
// case. Returns the number of roots written into out.
func solveQuadratic(out *[3]float64, a, b, c float64) int {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		// Leading coefficient is zero or too small: b*x + c = 0.
		root := -c / b
		if isFinite(root) {
			out[0] = root
			return 1
		}
		if b == 0 && c == 0 {
			out[0] = 0
			return 1
		}
		return 0
	}

	arg := sc1*sc1 - 4.0*sc0
	if arg < 0 {
		return 0
	}
	if arg == 0 {
		out[0] = -0.5 * sc1
		return 1
	}

	// Stable form avoiding cancellation between -b and the square root.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	out[0] = root1
	if !isFinite(root2) {
		return 1
	}
	out[1] = root2
	return 2
}

// solveCubic finds the real roots of a*x^3 + b*x^2 + c*x + d = 0.
// Returns the number of roots written into out (unsorted).
func solveCubic(out *[3]float64, a, b, c, d float64) int {
	const oneThird = 1.0 / 3.0
	aRecip := 1.0 / a
	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip

	if !isFinite(c2) || !isFinite(c1) || !isFinite(c0) {
		// Cubic coefficient is zero or nearly so.
		return solveQuadratic(out, b, c, d)
	}

	d0 := (-c2)*c2 + c1
	d1 := (-c1)*c2 + c0
	d2 := c2*c0 - c1*c1

	disc := 4.0*d0*d2 - d1*d1

	// Depressed cubic t^3 + 3*d0*t + de = 0 with x = t - c2.
	de := (-2.0*c2)*d0 + d1

	switch {
	case disc < 0:
		// One real root: Cardano cube-root form.
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		out[0] = math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2
		return 1
	case disc == 0:
		// A double root and a simple root.
		t1 := math.Copysign(math.Sqrt(-d0), de)
		out[0] = t1 - c2
		out[1] = -2.0*t1 - c2
		return 2
	default:
		// Three distinct real roots: trigonometric form.
		th := math.Atan2(math.Sqrt(disc), -de) * oneThird
		thSin, thCos := math.Sincos(th)

		ss3 := thSin * math.Sqrt(3.0)
		t := 2.0 * math.Sqrt(-d0)

		out[0] = t*thCos - c2
		out[1] = t*0.5*(-thCos+ss3) - c2
		out[2] = t*0.5*(-thCos-ss3) - c2
		return 3
	}
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
