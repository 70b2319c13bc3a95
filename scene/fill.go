package scene

import "github.com/gogpu/sdfvm"

// Fill describes how a shape's interior is painted. Construct values
// with the functions below; the zero value paints nothing visible
// (a transparent solid fill).
type Fill struct {
	op    sdfvm.Opcode
	slots [16]float64
}

// Solid fills with a single color.
func Solid(c sdfvm.RGBA) Fill {
	return Fill{
		op:    sdfvm.OpFill,
		slots: [16]float64{c.R, c.G, c.B, c.A},
	}
}

// LinearGradient fills with a two-stop gradient along the start-end
// axis. The ramp is two-sided: it mirrors around the start point.
func LinearGradient(from, to sdfvm.RGBA, start, end sdfvm.Vec2) Fill {
	return Fill{
		op: sdfvm.OpFillLinearGradient,
		slots: [16]float64{
			from.R, from.G, from.B, from.A,
			to.R, to.G, to.B, to.A,
			start.X, start.Y, end.X, end.Y,
		},
	}
}

// RadialGradient fills with a two-stop gradient by distance from
// center, reaching the outer color at radius.
func RadialGradient(inner, outer sdfvm.RGBA, center sdfvm.Vec2, radius float64) Fill {
	return Fill{
		op: sdfvm.OpFillRadialGradient,
		slots: [16]float64{
			inner.R, inner.G, inner.B, inner.A,
			outer.R, outer.G, outer.B, outer.A,
			center.X, center.Y, radius,
		},
	}
}

// Texture fills by mapping the dstLT-dstRB box onto the srcLT-srcRB
// sub-rectangle of an atlas layer's UV space.
func Texture(layer int, dstLT, dstRB, srcLT, srcRB sdfvm.Vec2) Fill {
	return Fill{
		op: sdfvm.OpFillTexture,
		slots: [16]float64{
			dstLT.X, dstLT.Y, dstRB.X, dstRB.Y,
			srcLT.X, srcLT.Y, srcRB.X, srcRB.Y,
			float64(layer),
		},
	}
}

// instruction builds the paint instruction for this fill. Paints write
// no register, so the target is the discard sentinel.
func (f Fill) instruction() sdfvm.Instruction {
	op := f.op
	if op == 0 {
		op = sdfvm.OpFill
	}
	return sdfvm.Instruction{
		Op:             op,
		StrokeWidth:    sdfvm.FillStrokeWidth,
		Slots:          f.slots,
		Combine:        sdfvm.CombineNone,
		TargetRegister: sdfvm.DiscardRegister,
	}
}
