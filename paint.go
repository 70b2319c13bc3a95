package sdfvm

import "github.com/gogpu/sdfvm/internal/blend"

// Paint stage. Every paint opcode is gated on register 1, the
// conventional combined shape distance: a non-negative value means the
// pixel is outside the shape and the paint is skipped entirely. Inside,
// the source alpha is scaled by the antialiasing factor derived from the
// same distance, then the source is composited under the current blend
// mode.

// paint executes one paint instruction against the pixel state.
func (m *Machine) paint(in *Instruction, st *pixelState, sample Vec2) {
	dist := st.regs[1]
	if dist >= 0 {
		return
	}

	local := st.transform.Invert().Apply(sample)

	var src RGBA
	switch in.Op {
	case OpFill:
		src = in.FillColor()
	case OpFillLinearGradient:
		src = m.linearGradient(in, local)
	case OpFillRadialGradient:
		src = m.radialGradient(in, local)
	case OpFillTexture:
		src = m.textureFill(in, local)
	default:
		return
	}

	aa := clamp(-dist/(EdgeWidth*m.edgeScale()), 0, 1)
	src = src.MulAlpha(aa)

	st.color = RGBA(blend.Blend(blend.RGBA(src), blend.RGBA(st.color), st.mode))
}

// linearGradient projects the sample onto the start-end axis and mixes
// the two endpoint colors. The projection's absolute value is taken
// before clamping, so the ramp mirrors on both sides of the start point
// rather than clamping flat.
func (m *Machine) linearGradient(in *Instruction, p Vec2) RGBA {
	start := in.LinearStart()
	axis := in.LinearEnd().Sub(start)
	lenSq := axis.LengthSq()
	if lenSq == 0 {
		return in.GradientFrom()
	}
	t := clamp(absF(p.Sub(start).Dot(axis)/lenSq), 0, 1)
	return in.GradientFrom().Lerp(in.GradientTo(), t)
}

// radialGradient mixes by normalized distance from the center.
func (m *Machine) radialGradient(in *Instruction, p Vec2) RGBA {
	radius := in.RadialRadius()
	if radius <= 0 {
		return in.GradientTo()
	}
	t := clamp(p.Sub(in.RadialCenter()).Length()/radius, 0, 1)
	return in.GradientFrom().Lerp(in.GradientTo(), t)
}

// textureFill maps the local point through the destination box into the
// source UV sub-rectangle and samples the generic atlas directly.
func (m *Machine) textureFill(in *Instruction, p Vec2) RGBA {
	if m.Textures == nil {
		return Transparent
	}
	dstLT := in.TextureDstLT()
	dstSize := in.TextureDstRB().Sub(dstLT)
	if dstSize.X == 0 || dstSize.Y == 0 {
		return Transparent
	}

	u := clamp((p.X-dstLT.X)/dstSize.X, 0, 1)
	v := clamp((p.Y-dstLT.Y)/dstSize.Y, 0, 1)

	srcLT := in.TextureSrcLT()
	srcSize := in.TextureSrcRB().Sub(srcLT)
	uv := V2(srcLT.X+u*srcSize.X, srcLT.Y+v*srcSize.Y)
	return m.Textures.Sample(in.FillTextureID(), uv)
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
