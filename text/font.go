// Package text renders text through the glyph atlas: it parses fonts,
// bakes glyph outlines into multi-channel signed distance field cells,
// and shapes strings into positioned glyph shapes for the scene
// painter.
package text

import (
	"bytes"
	"errors"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrNoGlyph reports a rune the font has no glyph for.
var ErrNoGlyph = errors.New("text: no glyph for rune")

// Font wraps one parsed font file. The same bytes are parsed twice: the
// sfnt parser supplies glyph outlines for distance field baking, and
// the go-text parser feeds the HarfBuzz shaper. Both views are
// read-only after Load.
type Font struct {
	sfnt   *sfnt.Font
	gotext *gtfont.Font
	upem   float64
}

// Load parses a TTF or OTF font from raw bytes.
func Load(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font outlines: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}
	return &Font{
		sfnt:   sf,
		gotext: face.Font,
		upem:   float64(sf.UnitsPerEm()),
	}, nil
}

// GlyphIndex returns the font's glyph id for a rune.
func (f *Font) GlyphIndex(r rune) (sfnt.GlyphIndex, error) {
	var buf sfnt.Buffer
	gid, err := f.sfnt.GlyphIndex(&buf, r)
	if err != nil {
		return 0, err
	}
	if gid == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	return gid, nil
}

// loadOutline loads a glyph's outline segments at the given pixel size.
// Coordinates are y-down with the origin on the baseline.
func (f *Font) loadOutline(buf *sfnt.Buffer, gid sfnt.GlyphIndex, ppem float64) ([]sfnt.Segment, error) {
	return f.sfnt.LoadGlyph(buf, gid, fixed.Int26_6(ppem*64), nil)
}
