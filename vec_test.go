package sdfvm

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	if got := a.Add(b); got != V2(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := a.Sub(b); got != V2(2, 6) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
	if got := a.Mul(2); got != V2(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestVec2Cross(t *testing.T) {
	tests := []struct {
		name string
		v, w Vec2
		want float64
	}{
		{"perpendicular", V2(1, 0), V2(0, 1), 1},
		{"reversed", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(4, 4), 0},
		{"general", V2(3, 4), V2(1, -2), -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); got != tt.want {
				t.Errorf("Cross = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	v := V2(3, 4).Normalize()
	if !v.Approx(V2(0.6, 0.8), 1e-12) {
		t.Errorf("Normalize = %v, want (0.6,0.8)", v)
	}
	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("Normalize of zero = %v, want zero", got)
	}
}

func TestVec2Perp(t *testing.T) {
	v := V2(2, 1)
	p := v.Perp()
	if got := v.Dot(p); got != 0 {
		t.Errorf("Perp not perpendicular, dot = %v", got)
	}
	if math.Abs(p.Length()-v.Length()) > 1e-12 {
		t.Errorf("Perp changed length: %v vs %v", p.Length(), v.Length())
	}
}

func TestVec2Lerp(t *testing.T) {
	a := V2(0, 10)
	b := V2(10, 0)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != V2(5, 5) {
		t.Errorf("Lerp(0.5) = %v, want (5,5)", got)
	}
}
