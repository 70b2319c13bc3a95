package blend

import (
	"math"
	"testing"
)

func TestFromValue(t *testing.T) {
	if got := FromValue(1); got != ModeAdd {
		t.Errorf("FromValue(1) = %v, want Add", got)
	}
	if got := FromValue(7); got != ModeAlphaOver {
		t.Errorf("FromValue(7) = %v, want AlphaOver", got)
	}
	// Unknown wire values fall back to Replace rather than failing.
	if got := FromValue(99); got != ModeReplace {
		t.Errorf("FromValue(99) = %v, want Replace", got)
	}
}

func TestModeString(t *testing.T) {
	if got := ModeMultiply.String(); got != "Multiply" {
		t.Errorf("String = %q", got)
	}
	if got := Mode(200).String(); got != "Replace" {
		t.Errorf("out-of-range String = %q", got)
	}
}

func TestBlendArithmeticModes(t *testing.T) {
	src := RGBA{R: 0.5, G: 0.2, B: 1, A: 0.5}
	dst := RGBA{R: 0.25, G: 0.8, B: 0.5, A: 1}

	tests := []struct {
		name string
		mode Mode
		want RGBA
	}{
		{"replace", ModeReplace, src},
		{"add", ModeAdd, RGBA{R: 0.75, G: 1, B: 1.5, A: 1.5}},
		{"multiply", ModeMultiply, RGBA{R: 0.125, G: 0.16, B: 0.5, A: 0.5}},
		{"subtract", ModeSubtract, RGBA{R: -0.25, G: 0.6, B: -0.5, A: 0.5}},
		{"divide", ModeDivide, RGBA{R: 0.5, G: 4, B: 0.5, A: 2}},
		{"min", ModeMin, RGBA{R: 0.25, G: 0.2, B: 0.5, A: 0.5}},
		{"max", ModeMax, RGBA{R: 0.5, G: 0.8, B: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend(src, dst, tt.mode)
			if !approxRGBA(got, tt.want, 1e-12) {
				t.Errorf("Blend = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlendSubtractDirection(t *testing.T) {
	// Subtract removes the source from the accumulated color, not the
	// other way round.
	got := Blend(RGBA{R: 0.25, A: 0.25}, RGBA{R: 1, A: 1}, ModeSubtract)
	if got.R != 0.75 {
		t.Errorf("dst - src R = %v, want 0.75", got.R)
	}
}

func TestAlphaOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst RGBA
		want     RGBA
	}{
		{
			"opaque source wins",
			RGBA{R: 1, A: 1}, RGBA{G: 1, A: 1},
			RGBA{R: 1, A: 1},
		},
		{
			"transparent source keeps destination",
			RGBA{R: 1, A: 0}, RGBA{G: 1, A: 1},
			RGBA{G: 1, A: 1},
		},
		{
			"half over opaque",
			RGBA{R: 1, A: 0.5}, RGBA{A: 1},
			RGBA{R: 0.5, A: 1},
		},
		{
			"half over transparent keeps source color",
			RGBA{R: 1, A: 0.5}, RGBA{},
			RGBA{R: 1, A: 0.5},
		},
		{
			"both empty",
			RGBA{}, RGBA{},
			RGBA{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend(tt.src, tt.dst, ModeAlphaOver)
			if !approxRGBA(got, tt.want, 1e-12) {
				t.Errorf("alphaOver = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAlphaOverAccumulates(t *testing.T) {
	// Two 50% layers leave 25% of the backdrop visible.
	dst := RGBA{}
	layer := RGBA{R: 1, A: 0.5}
	dst = Blend(layer, dst, ModeAlphaOver)
	dst = Blend(layer, dst, ModeAlphaOver)
	if math.Abs(dst.A-0.75) > 1e-12 {
		t.Errorf("stacked alpha = %v, want 0.75", dst.A)
	}
	if math.Abs(dst.R-1) > 1e-12 {
		t.Errorf("stacked color = %v, want 1", dst.R)
	}
}

func approxRGBA(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}
