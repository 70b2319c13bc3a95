package scene

import "github.com/gogpu/sdfvm"

// Painter collects draws for one frame. Transform, blend mode and clip
// are painter state: each Draw captures their current values, so the
// usual pattern is set-then-draw, like an immediate-mode canvas.
//
// A Painter is not safe for concurrent use. Encode does not reset it;
// call Reset to reuse one across frames.
type Painter struct {
	clipLT, clipRB sdfvm.Vec2
	transform      sdfvm.Matrix
	blendMode      sdfvm.BlendMode
	draws          []draw
}

type draw struct {
	shape     Shape
	fill      Fill
	transform sdfvm.Matrix
	blendMode sdfvm.BlendMode
}

// NewPainter creates a painter clipped to the lt-rb window rectangle.
// Everything outside the clip renders as outside, whatever the shapes
// say.
func NewPainter(clipLT, clipRB sdfvm.Vec2) *Painter {
	return &Painter{
		clipLT:    clipLT,
		clipRB:    clipRB,
		transform: sdfvm.Identity(),
		blendMode: sdfvm.BlendAlphaOver,
	}
}

// Reset clears the recorded draws and restores the default transform
// and blend mode, keeping the clip.
func (p *Painter) Reset() {
	p.draws = p.draws[:0]
	p.transform = sdfvm.Identity()
	p.blendMode = sdfvm.BlendAlphaOver
}

// SetTransform sets the transform applied to subsequent draws.
func (p *Painter) SetTransform(m sdfvm.Matrix) {
	p.transform = m
}

// SetBlendMode sets the blend mode applied to subsequent draws.
func (p *Painter) SetBlendMode(mode sdfvm.BlendMode) {
	p.blendMode = mode
}

// Draw records a shape with its fill under the current painter state.
func (p *Painter) Draw(shape Shape, fill Fill) {
	p.draws = append(p.draws, draw{
		shape:     shape,
		fill:      fill,
		transform: p.transform,
		blendMode: p.blendMode,
	})
}

// FillCircle draws a solid circle.
func (p *Painter) FillCircle(center sdfvm.Vec2, radius float64, c sdfvm.RGBA) {
	p.Draw(Circle(center, radius), Solid(c))
}

// StrokeCircle draws a circle outline of the given stroke width.
func (p *Painter) StrokeCircle(center sdfvm.Vec2, radius, width float64, c sdfvm.RGBA) {
	p.Draw(Circle(center, radius).Stroke(width), Solid(c))
}

// FillRect draws a solid rectangle.
func (p *Painter) FillRect(lt, rb sdfvm.Vec2, c sdfvm.RGBA) {
	p.Draw(Rect(lt, rb), Solid(c))
}

// FillRoundedRect draws a solid rectangle with per-corner radii.
func (p *Painter) FillRoundedRect(lt, rb sdfvm.Vec2, rounding [4]float64, c sdfvm.RGBA) {
	p.Draw(RoundedRect(lt, rb, rounding), Solid(c))
}

// StrokeLine draws a line segment of the given stroke width. The
// segment is encoded as a degenerate quadratic Bezier whose control
// point sits on the line.
func (p *Painter) StrokeLine(a, b sdfvm.Vec2, width float64, c sdfvm.RGBA) {
	mid := a.Lerp(b, 0.5)
	p.Draw(QuadBezier(a, mid, b).Stroke(width), Solid(c))
}

// StrokeQuadBezier draws a stroked quadratic Bezier curve.
func (p *Painter) StrokeQuadBezier(start, control, end sdfvm.Vec2, width float64, c sdfvm.RGBA) {
	p.Draw(QuadBezier(start, control, end).Stroke(width), Solid(c))
}

// StrokeCubicBezier draws a stroked cubic Bezier curve. The interpreter
// only evaluates quadratics analytically, so the cubic is subdivided
// and each piece approximated by a quadratic; the pieces are unioned
// into one shape so the stroke stays continuous at the joints.
func (p *Painter) StrokeCubicBezier(p0, c1, c2, p3 sdfvm.Vec2, width float64, c sdfvm.RGBA) {
	quads := cubicToQuads(p0, c1, c2, p3)
	shape := QuadBezier(quads[0][0], quads[0][1], quads[0][2])
	for _, q := range quads[1:] {
		shape = shape.Union(QuadBezier(q[0], q[1], q[2]))
	}
	p.Draw(shape.Stroke(width), Solid(c))
}

// cubicSegments is the number of quadratic pieces a cubic splits into.
// Four keeps the midpoint-rule error well under a pixel for on-screen
// curve sizes.
const cubicSegments = 4

// cubicToQuads splits a cubic Bezier into quadratic approximations.
// Each sub-cubic is extracted with de Casteljau's algorithm and
// approximated by the midpoint rule: the quadratic control point is
// (3*(c1+c2) - p0 - p3) / 4.
func cubicToQuads(p0, c1, c2, p3 sdfvm.Vec2) [][3]sdfvm.Vec2 {
	quads := make([][3]sdfvm.Vec2, 0, cubicSegments)
	prev := [4]sdfvm.Vec2{p0, c1, c2, p3}
	for i := 0; i < cubicSegments; i++ {
		// Split off the leading 1/(remaining pieces) of the curve.
		t := 1.0 / float64(cubicSegments-i)
		head, tail := splitCubic(prev, t)
		control := head[1].Add(head[2]).Mul(3).Sub(head[0]).Sub(head[3]).Mul(0.25)
		quads = append(quads, [3]sdfvm.Vec2{head[0], control, head[3]})
		prev = tail
	}
	return quads
}

// splitCubic divides a cubic Bezier at parameter t via de Casteljau.
func splitCubic(p [4]sdfvm.Vec2, t float64) (head, tail [4]sdfvm.Vec2) {
	ab := p[0].Lerp(p[1], t)
	bc := p[1].Lerp(p[2], t)
	cd := p[2].Lerp(p[3], t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	mid := abc.Lerp(bcd, t)

	head = [4]sdfvm.Vec2{p[0], ab, abc, mid}
	tail = [4]sdfvm.Vec2{mid, bcd, cd, p[3]}
	return head, tail
}
