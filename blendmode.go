package sdfvm

import "github.com/gogpu/sdfvm/internal/blend"

// BlendMode selects how a painted color composites into the accumulated
// pixel color. It aliases the internal compositor's enum so the wire
// values and the blending arithmetic live in one place.
type BlendMode = blend.Mode

const (
	// BlendReplace overwrites the accumulated color.
	BlendReplace = blend.ModeReplace
	// BlendAdd adds componentwise.
	BlendAdd = blend.ModeAdd
	// BlendMultiply multiplies componentwise.
	BlendMultiply = blend.ModeMultiply
	// BlendSubtract subtracts the paint from the accumulated color.
	BlendSubtract = blend.ModeSubtract
	// BlendDivide divides the accumulated color by the paint.
	BlendDivide = blend.ModeDivide
	// BlendMin takes the componentwise minimum.
	BlendMin = blend.ModeMin
	// BlendMax takes the componentwise maximum.
	BlendMax = blend.ModeMax
	// BlendAlphaOver composites source over destination; the default.
	BlendAlphaOver = blend.ModeAlphaOver
)
