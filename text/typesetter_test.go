package text

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sdfvm"
	"github.com/gogpu/sdfvm/scene"
)

func TestLayoutEmptyString(t *testing.T) {
	ts := NewTypesetter(nil, sdfvm.NewGlyphAtlas())
	glyphs, err := ts.Layout("", sdfvm.V2(0, 0), 16)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if glyphs != nil {
		t.Errorf("Layout of empty string = %v, want nil", glyphs)
	}
}

func TestMeasureEmptyString(t *testing.T) {
	ts := NewTypesetter(nil, sdfvm.NewGlyphAtlas())
	if w := ts.Measure("", 16); w != 0 {
		t.Errorf("Measure = %v, want 0", w)
	}
}

func TestDrawStringEmpty(t *testing.T) {
	ts := NewTypesetter(nil, sdfvm.NewGlyphAtlas())
	p := scene.NewPainter(sdfvm.V2(0, 0), sdfvm.V2(100, 100))
	if err := ts.DrawString(p, "", sdfvm.V2(10, 10), 16, sdfvm.White); err != nil {
		t.Fatalf("DrawString: %v", err)
	}
	instrs, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(instrs) != 0 {
		t.Errorf("empty string recorded %d instructions", len(instrs))
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Script
	}{
		{"latin", "hello", language.LookupScript('h')},
		{"leading spaces", "   abc", language.LookupScript('a')},
		{"cyrillic", "привет", language.LookupScript('п')},
		{"whitespace only", " \t\n", language.Latin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectScript([]rune(tt.text)); got != tt.want {
				t.Errorf("detectScript = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixedToFloat(t *testing.T) {
	tests := []struct {
		v    fixed.Int26_6
		want float64
	}{
		{0, 0},
		{64, 1},
		{96, 1.5},
		{-32, -0.5},
	}
	for _, tt := range tests {
		if got := fixedToFloat(tt.v); got != tt.want {
			t.Errorf("fixedToFloat(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
