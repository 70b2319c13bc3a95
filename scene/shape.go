// Package scene builds instruction buffers for the sdfvm interpreter.
//
// A Shape is an immutable expression tree over distance primitives and
// combine operators. The Painter collects shapes with their fills, clip
// and blend state, and Encode compiles the whole scene into a flat
// instruction buffer: the tree becomes a register program, scratch
// registers holding intermediate distances and register 1 receiving the
// final combined shape the paint stage inspects.
package scene

import "github.com/gogpu/sdfvm"

// Operator combines two sub-shapes (or one, for Complement).
type Operator int

const (
	// OperatorUnion keeps points inside either shape.
	OperatorUnion Operator = iota
	// OperatorIntersect keeps points inside both shapes.
	OperatorIntersect
	// OperatorDifference keeps points inside the first shape only.
	OperatorDifference
	// OperatorSymmetricDifference folds the two distances so overlap
	// cancels out.
	OperatorSymmetricDifference
	// OperatorComplement flips inside and outside. Unary.
	OperatorComplement
	// OperatorLerp mixes the two distances by a parameter.
	OperatorLerp
	// OperatorSmoothStep blends via a smoothstep of the parameter.
	OperatorSmoothStep
	// OperatorSigmoid mixes by a sigmoid of the parameter.
	OperatorSigmoid
)

// combineOp maps an Operator to its instruction-level combine op.
func (op Operator) combineOp() sdfvm.CombineOp {
	switch op {
	case OperatorUnion:
		return sdfvm.CombineOr
	case OperatorIntersect:
		return sdfvm.CombineAnd
	case OperatorDifference:
		return sdfvm.CombineSub
	case OperatorSymmetricDifference:
		return sdfvm.CombineXor
	case OperatorComplement:
		return sdfvm.CombineNeg
	case OperatorLerp:
		return sdfvm.CombineLerp
	case OperatorSmoothStep:
		return sdfvm.CombineSmoothStep
	case OperatorSigmoid:
		return sdfvm.CombineSigmoid
	default:
		return sdfvm.CombineNone
	}
}

// Shape is a node of a distance expression tree. Shapes are built by
// the constructor functions and combinator methods and never mutated,
// so they can be reused across painters and frames.
type Shape struct {
	// Leaf payload. prim is nil on interior nodes.
	prim *primitive

	// Interior payload.
	op          Operator
	parameter   float64
	left, right *Shape

	// strokeWidth < 0 means fill.
	strokeWidth float64
}

// primitive is a leaf shape: one instruction opcode plus its operands.
type primitive struct {
	op    sdfvm.Opcode
	slots [16]float64
}

func leaf(op sdfvm.Opcode, slots [16]float64) Shape {
	return Shape{
		prim:        &primitive{op: op, slots: slots},
		strokeWidth: sdfvm.FillStrokeWidth,
	}
}

// Circle creates a circle shape.
func Circle(center sdfvm.Vec2, radius float64) Shape {
	return leaf(sdfvm.OpCircle, [16]float64{center.X, center.Y, radius})
}

// Triangle creates a triangle shape.
func Triangle(a, b, c sdfvm.Vec2) Shape {
	return leaf(sdfvm.OpTriangle, [16]float64{a.X, a.Y, b.X, b.Y, c.X, c.Y})
}

// Rect creates an axis-aligned rectangle shape with square corners.
func Rect(lt, rb sdfvm.Vec2) Shape {
	return RoundedRect(lt, rb, [4]float64{})
}

// RoundedRect creates a rectangle with per-corner radii, ordered
// top-left, top-right, bottom-right, bottom-left.
func RoundedRect(lt, rb sdfvm.Vec2, rounding [4]float64) Shape {
	return leaf(sdfvm.OpRect, [16]float64{
		lt.X, lt.Y, rb.X, rb.Y,
		rounding[0], rounding[1], rounding[2], rounding[3],
	})
}

// HalfPlane creates a half-plane shape: everything left of the a-to-b
// direction is inside.
func HalfPlane(a, b sdfvm.Vec2) Shape {
	return leaf(sdfvm.OpHalfPlane, [16]float64{a.X, a.Y, b.X, b.Y})
}

// QuadBezier creates a quadratic Bezier curve shape. On its own the
// curve has zero area; stroke it, or combine it with half-planes to
// build filled curved regions.
func QuadBezier(start, control, end sdfvm.Vec2) Shape {
	return leaf(sdfvm.OpQuadBezier, [16]float64{
		start.X, start.Y, control.X, control.Y, end.X, end.Y,
	})
}

// SDFTexture creates a shape whose distance field was baked into a
// grayscale layer of the generic texture atlas, stretched over the
// lt-rb box.
func SDFTexture(lt, rb sdfvm.Vec2, layer int) Shape {
	return leaf(sdfvm.OpSDFTexture, [16]float64{
		lt.X, lt.Y, rb.X, rb.Y, float64(layer),
	})
}

// Glyph creates an MSDF glyph shape at pos, rendered at size pixels.
// The id addresses a glyph atlas cell.
func Glyph(pos sdfvm.Vec2, size float64, id int) Shape {
	return leaf(sdfvm.OpGlyph, [16]float64{pos.X, pos.Y, size, float64(id)})
}

func binary(op Operator, parameter float64, a, b Shape) Shape {
	left, right := a, b
	return Shape{
		op:          op,
		parameter:   parameter,
		left:        &left,
		right:       &right,
		strokeWidth: sdfvm.FillStrokeWidth,
	}
}

// Union returns the shape covering either operand.
func (s Shape) Union(other Shape) Shape {
	return binary(OperatorUnion, 0, s, other)
}

// Intersect returns the shape covering both operands.
func (s Shape) Intersect(other Shape) Shape {
	return binary(OperatorIntersect, 0, s, other)
}

// Difference returns the shape covering s but not other.
func (s Shape) Difference(other Shape) Shape {
	return binary(OperatorDifference, 0, s, other)
}

// SymmetricDifference returns the distance fold of the two operands.
func (s Shape) SymmetricDifference(other Shape) Shape {
	return binary(OperatorSymmetricDifference, 0, s, other)
}

// Lerp mixes the two distance fields by t.
func (s Shape) Lerp(other Shape, t float64) Shape {
	return binary(OperatorLerp, t, s, other)
}

// SmoothStep blends the two distance fields by a smoothstep of edge.
func (s Shape) SmoothStep(other Shape, edge float64) Shape {
	return binary(OperatorSmoothStep, edge, s, other)
}

// Sigmoid mixes the two distance fields by a sigmoid of steepness.
func (s Shape) Sigmoid(other Shape, steepness float64) Shape {
	return binary(OperatorSigmoid, steepness, s, other)
}

// Complement flips inside and outside.
func (s Shape) Complement() Shape {
	inner := s
	return Shape{
		op:          OperatorComplement,
		left:        &inner,
		strokeWidth: sdfvm.FillStrokeWidth,
	}
}

// Stroke converts the shape boundary into a stroked band of the given
// width. Applied to a composite, the stroke wraps the combined outline.
func (s Shape) Stroke(width float64) Shape {
	s.strokeWidth = width
	return s
}

// depth returns the height of the expression tree, which bounds the
// scratch registers the encoder needs.
func (s *Shape) depth() int {
	if s.prim != nil {
		return 1
	}
	d := s.left.depth()
	if s.right != nil {
		if rd := s.right.depth(); rd+1 > d {
			d = rd + 1
		}
	}
	return d
}
