package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sdfvm"
	"github.com/gogpu/sdfvm/scene"
)

// Typesetter shapes strings with HarfBuzz and turns them into glyph
// shapes backed by the atlas, baking each glyph's distance field the
// first time it appears.
//
// The glyph cache is guarded by a mutex, but the embedded HarfBuzz
// shaper keeps internal buffers, so a Typesetter must not be used from
// multiple goroutines at once.
type Typesetter struct {
	font  *Font
	atlas *sdfvm.GlyphAtlas

	shaper shaping.HarfbuzzShaper

	mu    sync.Mutex
	cells map[sfnt.GlyphIndex]int
}

// NewTypesetter creates a typesetter baking into the given atlas.
func NewTypesetter(f *Font, atlas *sdfvm.GlyphAtlas) *Typesetter {
	return &Typesetter{
		font:  f,
		atlas: atlas,
		cells: make(map[sfnt.GlyphIndex]int),
	}
}

// PlacedGlyph is one shaped glyph, positioned in logical pixels.
type PlacedGlyph struct {
	// CellID addresses the glyph's atlas cell.
	CellID int
	// Pos is the top-left corner of the glyph quad.
	Pos sdfvm.Vec2
	// Size is the quad's side length.
	Size float64
}

// Layout shapes a string starting at the baseline origin, at size
// pixels per em, and returns the positioned glyphs. Left-to-right text
// only; the shaper still applies kerning and ligatures.
func (t *Typesetter) Layout(s string, origin sdfvm.Vec2, size float64) ([]PlacedGlyph, error) {
	if s == "" {
		return nil, nil
	}
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(t.font.gotext),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := t.shaper.Shape(input)

	// The cell's em box is cellInnerSize pixels, so on-screen cell
	// units scale by size/cellInnerSize.
	cellScale := size / cellInnerSize
	quadSize := sdfvm.GlyphCellSize * cellScale

	placed := make([]PlacedGlyph, 0, len(output.Glyphs))
	pen := origin
	for _, g := range output.Glyphs {
		cell, err := t.cell(sfnt.GlyphIndex(g.GlyphID))
		if err != nil {
			return nil, err
		}

		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)
		placed = append(placed, PlacedGlyph{
			CellID: cell,
			Pos: sdfvm.V2(
				pen.X+xOff-cellPadding*cellScale,
				pen.Y+yOff-(cellPadding+baselineShare*cellInnerSize)*cellScale,
			),
			Size: quadSize,
		})
		pen.X += fixedToFloat(g.Advance)
	}
	return placed, nil
}

// DrawString shapes a string and records it on the painter as a single
// union shape with a solid fill, so the whole run composites in one
// paint.
func (t *Typesetter) DrawString(p *scene.Painter, s string, origin sdfvm.Vec2, size float64, c sdfvm.RGBA) error {
	glyphs, err := t.Layout(s, origin, size)
	if err != nil {
		return err
	}
	if len(glyphs) == 0 {
		return nil
	}

	shape := scene.Glyph(glyphs[0].Pos, glyphs[0].Size, glyphs[0].CellID)
	for _, g := range glyphs[1:] {
		shape = shape.Union(scene.Glyph(g.Pos, g.Size, g.CellID))
	}
	p.Draw(shape, scene.Solid(c))
	return nil
}

// Measure returns the advance width of a string at size pixels per em.
func (t *Typesetter) Measure(s string, size float64) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	output := t.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(t.font.gotext),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	var width float64
	for _, g := range output.Glyphs {
		width += fixedToFloat(g.Advance)
	}
	return width
}

// cell returns the atlas cell for a glyph, baking it on first use.
func (t *Typesetter) cell(gid sfnt.GlyphIndex) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.cells[gid]; ok {
		return id, nil
	}
	id, err := bakeGlyph(t.font, gid, t.atlas)
	if err != nil {
		return 0, err
	}
	t.cells[gid] = id
	return id, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, split runs by script
// before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
