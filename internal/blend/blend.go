// Package blend implements the color compositor's blend modes.
package blend

// RGBA is a straight-alpha color with float64 components. It mirrors the
// parent package's color type field for field, so values convert both
// ways with a plain struct conversion.
type RGBA struct {
	R, G, B, A float64
}

// Mode represents a blending mode. The numeric values are part of the
// instruction wire format (SetBlendMode carries one in its first operand
// slot), so the order here is fixed.
type Mode uint32

const (
	// ModeReplace overwrites the accumulated color with the source.
	ModeReplace Mode = iota
	// ModeAdd adds the source to the accumulated color componentwise.
	ModeAdd
	// ModeMultiply multiplies the colors componentwise.
	ModeMultiply
	// ModeSubtract subtracts the source from the accumulated color.
	ModeSubtract
	// ModeDivide divides the accumulated color by the source.
	ModeDivide
	// ModeMin takes the componentwise minimum.
	ModeMin
	// ModeMax takes the componentwise maximum.
	ModeMax
	// ModeAlphaOver composites the source over the accumulated color,
	// weighting by both alphas and normalizing by the total weight.
	// This is the initial mode of every pixel evaluation.
	ModeAlphaOver

	modeCount
)

// FromValue decodes a wire value into a Mode, defaulting unknown values
// to ModeReplace.
func FromValue(v uint32) Mode {
	if Mode(v) < modeCount {
		return Mode(v)
	}
	return ModeReplace
}

var modeNames = [...]string{
	ModeReplace:   "Replace",
	ModeAdd:       "Add",
	ModeMultiply:  "Multiply",
	ModeSubtract:  "Subtract",
	ModeDivide:    "Divide",
	ModeMin:       "Min",
	ModeMax:       "Max",
	ModeAlphaOver: "AlphaOver",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "Replace"
}

// Blend combines a painted source color into the accumulated destination
// using the specified mode. Arithmetic modes apply to all four channels;
// only ModeAlphaOver treats alpha as a compositing weight.
func Blend(src, dst RGBA, mode Mode) RGBA {
	switch mode {
	case ModeAdd:
		return RGBA{R: dst.R + src.R, G: dst.G + src.G, B: dst.B + src.B, A: dst.A + src.A}
	case ModeMultiply:
		return RGBA{R: dst.R * src.R, G: dst.G * src.G, B: dst.B * src.B, A: dst.A * src.A}
	case ModeSubtract:
		return RGBA{R: dst.R - src.R, G: dst.G - src.G, B: dst.B - src.B, A: dst.A - src.A}
	case ModeDivide:
		return RGBA{R: dst.R / src.R, G: dst.G / src.G, B: dst.B / src.B, A: dst.A / src.A}
	case ModeMin:
		return RGBA{R: minF(dst.R, src.R), G: minF(dst.G, src.G), B: minF(dst.B, src.B), A: minF(dst.A, src.A)}
	case ModeMax:
		return RGBA{R: maxF(dst.R, src.R), G: maxF(dst.G, src.G), B: maxF(dst.B, src.B), A: maxF(dst.A, src.A)}
	case ModeAlphaOver:
		return alphaOver(src, dst)
	default:
		return src
	}
}

// alphaOver blends source over destination using alpha compositing.
func alphaOver(src, dst RGBA) RGBA {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return RGBA{}
	}

	outR := (src.R*srcA + dst.R*dstA*invSrcA) / outA
	outG := (src.G*srcA + dst.G*dstA*invSrcA) / outA
	outB := (src.B*srcA + dst.B*dstA*invSrcA) / outA

	return RGBA{
		R: outR,
		G: outG,
		B: outB,
		A: outA,
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
