package sdfvm

import "fmt"

// RegisterCount is the fixed size of the per-pixel register stack.
const RegisterCount = 64

// DiscardRegister is a target register sentinel. Any target at or above
// RegisterCount suppresses the register write; this constant is the
// conventional value for instructions that only touch side-channel state.
const DiscardRegister uint32 = RegisterCount

// Opcode selects which operation an instruction performs.
type Opcode uint32

const (
	// OpNone does nothing.
	OpNone Opcode = iota
	// OpCircle evaluates a circle distance. Operands: center, radius.
	OpCircle
	// OpTriangle evaluates a triangle distance. Operands: three vertices.
	OpTriangle
	// OpRect evaluates a rounded-rectangle distance. Operands: two
	// corners, four per-corner radii.
	OpRect
	// OpHalfPlane evaluates a half-plane distance. Operands: two points
	// on the boundary line.
	OpHalfPlane
	// OpQuadBezier evaluates a quadratic Bezier distance. Operands:
	// start, control, end points.
	OpQuadBezier
	// OpSDFTexture evaluates a distance baked into a grayscale texture.
	// Operands: bounding box corners, texture layer id.
	OpSDFTexture
	// OpGlyph evaluates an MSDF glyph coverage. Operands: position,
	// size, glyph id.
	OpGlyph
	// OpFill paints a solid color. Operands: RGBA color.
	OpFill
	// OpFillLinearGradient paints a two-stop linear gradient. Operands:
	// two RGBA colors, start and end points.
	OpFillLinearGradient
	// OpFillRadialGradient paints a two-stop radial gradient. Operands:
	// two RGBA colors, center and radius.
	OpFillRadialGradient
	// OpFillTexture paints from the generic texture atlas. Operands:
	// destination box, source UV box, texture layer id.
	OpFillTexture
	// OpSetTransform replaces the current affine transform. Operands:
	// the six affine matrix entries.
	OpSetTransform
	// OpSetBlendMode replaces the current blend mode. Operand: mode.
	OpSetBlendMode
	// OpLoadRegister re-emits a register value as the result, letting
	// the combine step merge two registers. Operand: source register.
	OpLoadRegister

	opcodeCount
)

var opcodeNames = [...]string{
	OpNone:               "None",
	OpCircle:             "Circle",
	OpTriangle:           "Triangle",
	OpRect:               "Rect",
	OpHalfPlane:          "HalfPlane",
	OpQuadBezier:         "QuadBezier",
	OpSDFTexture:         "SDFTexture",
	OpGlyph:              "Glyph",
	OpFill:               "Fill",
	OpFillLinearGradient: "FillLinearGradient",
	OpFillRadialGradient: "FillRadialGradient",
	OpFillTexture:        "FillTexture",
	OpSetTransform:       "SetTransform",
	OpSetBlendMode:       "SetBlendMode",
	OpLoadRegister:       "LoadRegister",
}

func (op Opcode) String() string {
	if op < opcodeCount {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint32(op))
}

// IsShape reports whether the opcode evaluates a distance primitive,
// which is subject to stroke conversion and gradient normalization.
func (op Opcode) IsShape() bool {
	return op >= OpCircle && op <= OpGlyph
}

// IsPaint reports whether the opcode produces a color.
func (op Opcode) IsPaint() bool {
	return op >= OpFill && op <= OpFillTexture
}

// CombineOp selects how an evaluated result merges into the target
// register.
type CombineOp uint32

const (
	// CombineNone discards the result.
	CombineNone CombineOp = iota
	// CombineReplace overwrites the register.
	CombineReplace
	// CombineReplaceInside overwrites only when the result is negative.
	CombineReplaceInside
	// CombineReplaceOutside overwrites only when the result is positive.
	CombineReplaceOutside
	// CombineAnd intersects: reg = max(reg, result).
	CombineAnd
	// CombineOr unions: reg = min(reg, result).
	CombineOr
	// CombineXor folds: reg = reg + result - 2*reg*result.
	CombineXor
	// CombineSub subtracts: reg = max(reg, -result).
	CombineSub
	// CombineNeg negates: reg = -result.
	CombineNeg
	// CombineLerp mixes: reg = mix(reg, result, parameter).
	CombineLerp
	// CombineSmoothStep blends: reg = smoothstep(reg, result, parameter).
	CombineSmoothStep
	// CombineSigmoid mixes by a sigmoid of the parameter.
	CombineSigmoid

	combineOpCount
)

var combineOpNames = [...]string{
	CombineNone:           "None",
	CombineReplace:        "Replace",
	CombineReplaceInside:  "ReplaceInside",
	CombineReplaceOutside: "ReplaceOutside",
	CombineAnd:            "And",
	CombineOr:             "Or",
	CombineXor:            "Xor",
	CombineSub:            "Sub",
	CombineNeg:            "Neg",
	CombineLerp:           "Lerp",
	CombineSmoothStep:     "SmoothStep",
	CombineSigmoid:        "Sigmoid",
}

func (c CombineOp) String() string {
	if c < combineOpCount {
		return combineOpNames[c]
	}
	return fmt.Sprintf("CombineOp(%d)", uint32(c))
}

// Instruction is one fixed-size record of the instruction buffer. The 16
// operand slots are reinterpreted per opcode; the accessor methods below
// document each layout. Unknown opcodes and combine ops are tolerated as
// no-ops by the interpreter, never as errors.
type Instruction struct {
	// Op selects the operation.
	Op Opcode
	// StrokeWidth converts a shape distance to a stroke of this width.
	// Negative means fill (no conversion); this is the sentinel an
	// encoder writes for non-stroked shapes.
	StrokeWidth float64
	// Parameter feeds the blend-style combinators: the lerp factor, the
	// smoothstep edge width, or the sigmoid steepness.
	Parameter float64
	// SmoothFunc and SmoothParam are reserved combine-step modifiers.
	// They travel with the instruction but nothing reads them yet.
	SmoothFunc  uint32
	SmoothParam float64
	// Slots holds the opcode-specific operands.
	Slots [16]float64
	// Combine selects how the result merges into the target register.
	Combine CombineOp
	// TargetRegister indexes the register stack; values at or above
	// RegisterCount discard the result.
	TargetRegister uint32
}

// FillStrokeWidth is the conventional stroke-width sentinel an encoder
// writes for filled (non-stroked) shapes.
const FillStrokeWidth = -1.0

func (in *Instruction) slotVec(i int) Vec2 {
	return Vec2{X: in.Slots[i], Y: in.Slots[i+1]}
}

func (in *Instruction) slotColor(i int) RGBA {
	return RGBA{R: in.Slots[i], G: in.Slots[i+1], B: in.Slots[i+2], A: in.Slots[i+3]}
}

// Circle operands: slots 0-1 center, slot 2 radius.

func (in *Instruction) CircleCenter() Vec2    { return in.slotVec(0) }
func (in *Instruction) CircleRadius() float64 { return in.Slots[2] }

// Triangle operands: slots 0-5 hold the three vertices.

func (in *Instruction) TriangleA() Vec2 { return in.slotVec(0) }
func (in *Instruction) TriangleB() Vec2 { return in.slotVec(2) }
func (in *Instruction) TriangleC() Vec2 { return in.slotVec(4) }

// Rect operands: slots 0-1 top-left, 2-3 bottom-right, 4-7 per-corner
// radii in top-left, top-right, bottom-right, bottom-left order.

func (in *Instruction) RectLT() Vec2 { return in.slotVec(0) }
func (in *Instruction) RectRB() Vec2 { return in.slotVec(2) }
func (in *Instruction) RectRounding() [4]float64 {
	return [4]float64{in.Slots[4], in.Slots[5], in.Slots[6], in.Slots[7]}
}

// HalfPlane operands: slots 0-1 and 2-3 are two points on the line.

func (in *Instruction) HalfPlaneA() Vec2 { return in.slotVec(0) }
func (in *Instruction) HalfPlaneB() Vec2 { return in.slotVec(2) }

// QuadBezier operands: slots 0-1 start, 2-3 control, 4-5 end.

func (in *Instruction) BezierStart() Vec2   { return in.slotVec(0) }
func (in *Instruction) BezierControl() Vec2 { return in.slotVec(2) }
func (in *Instruction) BezierEnd() Vec2     { return in.slotVec(4) }

// SDFTexture operands: slots 0-1 top-left, 2-3 bottom-right of the
// bounding box, slot 4 the atlas layer id.

func (in *Instruction) SDFTextureLT() Vec2 { return in.slotVec(0) }
func (in *Instruction) SDFTextureRB() Vec2 { return in.slotVec(2) }
func (in *Instruction) SDFTextureID() int  { return int(in.Slots[4]) }

// Glyph operands: slots 0-1 position, slot 2 font size in pixels,
// slot 3 the glyph atlas id.

func (in *Instruction) GlyphPos() Vec2     { return in.slotVec(0) }
func (in *Instruction) GlyphSize() float64 { return in.Slots[2] }
func (in *Instruction) GlyphID() int       { return int(in.Slots[3]) }

// Fill operands: slots 0-3 are the RGBA color. Gradient fills put the
// second color in slots 4-7 and the geometry after it: linear gradients
// use slots 8-9 start and 10-11 end, radial gradients use slots 8-9
// center and slot 10 radius.

func (in *Instruction) FillColor() RGBA       { return in.slotColor(0) }
func (in *Instruction) GradientFrom() RGBA    { return in.slotColor(0) }
func (in *Instruction) GradientTo() RGBA      { return in.slotColor(4) }
func (in *Instruction) LinearStart() Vec2     { return in.slotVec(8) }
func (in *Instruction) LinearEnd() Vec2       { return in.slotVec(10) }
func (in *Instruction) RadialCenter() Vec2    { return in.slotVec(8) }
func (in *Instruction) RadialRadius() float64 { return in.Slots[10] }

// FillTexture operands: slots 0-3 destination box, 4-7 source UV box,
// slot 8 the atlas layer id.

func (in *Instruction) TextureDstLT() Vec2 { return in.slotVec(0) }
func (in *Instruction) TextureDstRB() Vec2 { return in.slotVec(2) }
func (in *Instruction) TextureSrcLT() Vec2 { return in.slotVec(4) }
func (in *Instruction) TextureSrcRB() Vec2 { return in.slotVec(6) }
func (in *Instruction) FillTextureID() int { return int(in.Slots[8]) }

// SetTransform operands: slots 0-5 are the affine entries A, B, C, D,
// E, F in row-major order.

func (in *Instruction) TransformMatrix() Matrix {
	return Matrix{
		A: in.Slots[0], B: in.Slots[1], C: in.Slots[2],
		D: in.Slots[3], E: in.Slots[4], F: in.Slots[5],
	}
}

// SetTransformSlots writes a matrix into the operand layout above.
func (in *Instruction) SetTransformSlots(m Matrix) {
	in.Slots[0], in.Slots[1], in.Slots[2] = m.A, m.B, m.C
	in.Slots[3], in.Slots[4], in.Slots[5] = m.D, m.E, m.F
}

// SetBlendMode operand: slot 0 is the mode's numeric value.

func (in *Instruction) BlendModeValue() uint32 { return uint32(in.Slots[0]) }

// LoadRegister operand: slot 0 is the source register index.

func (in *Instruction) LoadSource() int { return int(in.Slots[0]) }
