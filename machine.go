package sdfvm

import (
	"math"

	"github.com/gogpu/sdfvm/internal/blend"
)

// EdgeWidth is the antialiasing edge width in device pixels. A pixel
// whose combined distance lies within this band of the boundary gets a
// proportional alpha instead of a hard step.
const EdgeWidth = 1.0

// gradEpsilon is the screen-space half-step for the central-difference
// gradient estimate.
const gradEpsilon = 1e-4

// Machine evaluates an instruction buffer for individual pixels. It
// bundles the frame-constant inputs: the buffer itself, the uniform
// block, and the two atlases. Evaluate is a pure function of those
// inputs plus the sample position, so one Machine may be shared by any
// number of goroutines.
type Machine struct {
	Instructions []Instruction
	Uniforms     Uniforms
	Textures     *TextureAtlas
	Glyphs       *GlyphAtlas
}

// NewMachine builds a machine over an instruction buffer. Either atlas
// may be nil when no instruction references it.
func NewMachine(instrs []Instruction, u Uniforms, textures *TextureAtlas, glyphs *GlyphAtlas) *Machine {
	return &Machine{
		Instructions: instrs,
		Uniforms:     u,
		Textures:     textures,
		Glyphs:       glyphs,
	}
}

// pixelState is the mutable state threaded through one pixel's program.
// It resets for every pixel; there is no cross-pixel state.
type pixelState struct {
	transform Matrix
	mode      blend.Mode
	color     RGBA
	regs      [RegisterCount]float64
}

// Evaluate runs the instruction buffer for the pixel at sample (logical
// pixel coordinates) and returns its gamma-encoded color.
//
// The machine processes min(len(Instructions), Uniforms.InstructionCount)
// entries, so trailing garbage in an oversized reused buffer is ignored.
// Unknown opcodes and combine ops are no-ops; nothing here can fail.
func (m *Machine) Evaluate(sample Vec2) RGBA {
	st := pixelState{
		transform: Identity(),
		mode:      blend.ModeAlphaOver,
	}

	count := len(m.Instructions)
	if c := int(m.Uniforms.InstructionCount); c < count {
		count = c
	}

	for i := 0; i < count; i++ {
		in := &m.Instructions[i]

		switch {
		case in.Op == OpNone:
			continue

		case in.Op.IsShape():
			result := m.shapeResult(in, &st, sample)
			combineInto(&st, in, result)

		case in.Op == OpLoadRegister:
			src := in.LoadSource()
			result := 0.0
			if src >= 0 && src < RegisterCount {
				result = st.regs[src]
			}
			// The stroke conversion is part of the generic execution
			// loop, so a loaded register value is strokable too.
			if in.StrokeWidth >= 0 {
				result = math.Abs(result) - in.StrokeWidth/2
			}
			combineInto(&st, in, result)

		case in.Op.IsPaint():
			m.paint(in, &st, sample)

		case in.Op == OpSetTransform:
			st.transform = in.TransformMatrix()

		case in.Op == OpSetBlendMode:
			st.mode = blend.FromValue(in.BlendModeValue())

		default:
			// Unknown opcode: tolerated, never fatal.
		}
	}

	return st.color.GammaEncode()
}

// shapeResult evaluates a shape primitive at the sample and four
// screen-space neighbors, applies the stroke conversion, and divides by
// the numerical gradient magnitude. The gradient division is the
// Lipschitz correction: under a non-uniform transform the raw distance
// is compressed or stretched, and dividing by |grad| restores a
// screen-space metric so strokes and the antialiasing band keep their
// width.
func (m *Machine) shapeResult(in *Instruction, st *pixelState, sample Vec2) float64 {
	inv := st.transform.Invert()

	d := m.primitive(in, inv.Apply(sample))
	dxp := m.primitive(in, inv.Apply(V2(sample.X+gradEpsilon, sample.Y)))
	dxn := m.primitive(in, inv.Apply(V2(sample.X-gradEpsilon, sample.Y)))
	dyp := m.primitive(in, inv.Apply(V2(sample.X, sample.Y+gradEpsilon)))
	dyn := m.primitive(in, inv.Apply(V2(sample.X, sample.Y-gradEpsilon)))

	if in.StrokeWidth >= 0 {
		d = math.Abs(d) - in.StrokeWidth/2
	}

	gradLen := math.Hypot(
		(dxp-dxn)/(2*gradEpsilon),
		(dyp-dyn)/(2*gradEpsilon),
	)
	if gradLen != 0 && isFinite(gradLen) {
		d /= gradLen
	}
	return d
}

// primitive dispatches a shape opcode to its distance function at a
// point already in shape-local space.
func (m *Machine) primitive(in *Instruction, p Vec2) float64 {
	switch in.Op {
	case OpCircle:
		return SDFCircle(p, in.CircleCenter(), in.CircleRadius())
	case OpTriangle:
		return SDFTriangle(p, in.TriangleA(), in.TriangleB(), in.TriangleC())
	case OpRect:
		return SDFRoundedRect(p, in.RectLT(), in.RectRB(), in.RectRounding())
	case OpHalfPlane:
		return SDFHalfPlane(p, in.HalfPlaneA(), in.HalfPlaneB())
	case OpQuadBezier:
		return SDFQuadBezier(p, in.BezierStart(), in.BezierControl(), in.BezierEnd())
	case OpSDFTexture:
		return m.textureDistance(in, p)
	case OpGlyph:
		return m.glyphDistance(in, p)
	default:
		return 0
	}
}

// textureDistance samples a baked grayscale SDF over the instruction's
// bounding box. Outside the box the baked field is unreliable, so the
// box's own distance takes over via max.
func (m *Machine) textureDistance(in *Instruction, p Vec2) float64 {
	lt := in.SDFTextureLT()
	rb := in.SDFTextureRB()
	boxD := SDFRoundedRect(p, lt, rb, [4]float64{})
	if m.Textures == nil {
		return boxD
	}

	size := rb.Sub(lt)
	uv := V2(
		clamp((p.X-lt.X)/size.X, 0, 1),
		clamp((p.Y-lt.Y)/size.Y, 0, 1),
	)
	texD := m.Textures.Distance(in.SDFTextureID(), uv, m.edgeScale())
	return math.Max(texD, boxD)
}

// glyphDistance samples the MSDF glyph atlas over the glyph's square.
// The median reconstruction yields a coverage, not a metric distance;
// it is mapped onto a pseudo-distance spanning the antialiasing band so
// the downstream stroke/AA machinery treats it like any other shape.
func (m *Machine) glyphDistance(in *Instruction, p Vec2) float64 {
	pos := in.GlyphPos()
	size := in.GlyphSize()
	boxD := SDFRoundedRect(p, pos, pos.Add(V2(size, size)), [4]float64{})
	if m.Glyphs == nil || size <= 0 {
		return boxD
	}

	uv := V2((p.X-pos.X)/size, (p.Y-pos.Y)/size)
	med := m.Glyphs.MedianSample(in.GlyphID(), uv)
	cov := smoothstep(0.5-glyphSmoothing, 0.5+glyphSmoothing, med)
	d := (0.5 - cov) * 2 * EdgeWidth * m.edgeScale()
	return math.Max(d, boxD)
}

// glyphSmoothing is the half-width of the median threshold band.
const glyphSmoothing = 0.1

// edgeScale converts device pixels to the logical units distances are
// measured in.
func (m *Machine) edgeScale() float64 {
	if m.Uniforms.ScaleFactor > 0 {
		return 1 / m.Uniforms.ScaleFactor
	}
	return 1
}

// combineInto merges a result into the instruction's target register.
// An out-of-range target discards the result.
func combineInto(st *pixelState, in *Instruction, result float64) {
	t := in.TargetRegister
	if t >= RegisterCount {
		return
	}
	st.regs[t] = combine(st.regs[t], result, in.Parameter, in.Combine)
}

// combine applies a combine op to an existing register value and a new
// result. Unknown ops leave the register untouched.
func combine(reg, result, parameter float64, op CombineOp) float64 {
	switch op {
	case CombineReplace:
		return result
	case CombineReplaceInside:
		if result < 0 {
			return result
		}
		return reg
	case CombineReplaceOutside:
		if result > 0 {
			return result
		}
		return reg
	case CombineAnd:
		return math.Max(reg, result)
	case CombineOr:
		return math.Min(reg, result)
	case CombineXor:
		return reg + result - 2*reg*result
	case CombineSub:
		return math.Max(reg, -result)
	case CombineNeg:
		return -result
	case CombineLerp:
		return mix(reg, result, parameter)
	case CombineSmoothStep:
		return smoothstep(reg, result, parameter)
	case CombineSigmoid:
		return mix(reg, result, sigmoid(parameter))
	default:
		return reg
	}
}

// mix linearly interpolates between a and b.
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothstep is the cubic Hermite step between edges e0 and e1.
func smoothstep(e0, e1, x float64) float64 {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

// sigmoid is the logistic function.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
