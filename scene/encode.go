package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/sdfvm"
)

// Encoding errors.
var (
	// ErrSingularTransform reports a draw under a non-invertible
	// transform. The interpreter inverts transforms without guarding,
	// so degenerate ones must be rejected here, before they reach it.
	ErrSingularTransform = errors.New("scene: singular transform")

	// ErrShapeTooDeep reports a shape expression needing more scratch
	// registers than the machine has.
	ErrShapeTooDeep = errors.New("scene: shape expression too deep")
)

// resultRegister receives each draw's combined distance; the paint
// stage reads the same register.
const resultRegister = 1

// Encode compiles the recorded draws into an instruction buffer.
//
// Per draw the emitted sequence is: a SetTransform when the transform
// differs from the running one, the shape's register program leaving
// its distance in register 1, the clip rectangle intersected into
// register 1 under the identity transform, a SetBlendMode when the mode
// differs, and finally the paint instruction. Scratch registers start
// at register 2 and are reused between draws.
func (p *Painter) Encode() ([]sdfvm.Instruction, error) {
	var out []sdfvm.Instruction
	current := sdfvm.Identity()
	currentBlend := sdfvm.BlendAlphaOver

	for i := range p.draws {
		d := &p.draws[i]
		if !d.transform.IsInvertible() {
			return nil, fmt.Errorf("draw %d: %w", i, ErrSingularTransform)
		}

		if d.transform != current {
			out = append(out, transformInstruction(d.transform))
			current = d.transform
		}

		if err := encodeShape(&out, &d.shape, resultRegister); err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}

		// The clip rectangle lives in window space, so the transform
		// resets before it is intersected in.
		if !current.IsIdentity() {
			out = append(out, transformInstruction(sdfvm.Identity()))
			current = sdfvm.Identity()
		}
		out = append(out, sdfvm.Instruction{
			Op:          sdfvm.OpRect,
			StrokeWidth: sdfvm.FillStrokeWidth,
			Slots: [16]float64{
				p.clipLT.X, p.clipLT.Y, p.clipRB.X, p.clipRB.Y,
			},
			Combine:        sdfvm.CombineAnd,
			TargetRegister: resultRegister,
		})

		if d.blendMode != currentBlend {
			out = append(out, sdfvm.Instruction{
				Op:             sdfvm.OpSetBlendMode,
				StrokeWidth:    sdfvm.FillStrokeWidth,
				Slots:          [16]float64{float64(d.blendMode)},
				Combine:        sdfvm.CombineNone,
				TargetRegister: sdfvm.DiscardRegister,
			})
			currentBlend = d.blendMode
		}

		out = append(out, d.fill.instruction())
	}
	return out, nil
}

// Uniforms builds the uniform block matching an encoded buffer.
func (p *Painter) Uniforms(windowSize sdfvm.Vec2, scaleFactor float64, instructionCount int) sdfvm.Uniforms {
	u := sdfvm.NewUniforms(windowSize.X, windowSize.Y)
	u.ScaleFactor = scaleFactor
	u.InstructionCount = uint32(instructionCount)
	return u
}

func transformInstruction(m sdfvm.Matrix) sdfvm.Instruction {
	in := sdfvm.Instruction{
		Op:             sdfvm.OpSetTransform,
		StrokeWidth:    sdfvm.FillStrokeWidth,
		Combine:        sdfvm.CombineNone,
		TargetRegister: sdfvm.DiscardRegister,
	}
	in.SetTransformSlots(m)
	return in
}

// encodeShape emits the register program for a shape expression,
// leaving its distance in reg. Leaves replace reg directly; a binary
// node evaluates its left side into reg, its right side into reg+1,
// then folds reg+1 into reg with a LoadRegister carrying the node's
// combine op. Register pressure therefore equals the tree's height
// along right branches.
func encodeShape(out *[]sdfvm.Instruction, s *Shape, reg uint32) error {
	if reg+uint32(s.depth())-1 >= sdfvm.RegisterCount {
		return ErrShapeTooDeep
	}
	return encodeNode(out, s, reg)
}

func encodeNode(out *[]sdfvm.Instruction, s *Shape, reg uint32) error {
	if s.prim != nil {
		*out = append(*out, sdfvm.Instruction{
			Op:             s.prim.op,
			StrokeWidth:    s.strokeWidth,
			Slots:          s.prim.slots,
			Combine:        sdfvm.CombineReplace,
			TargetRegister: reg,
		})
		return nil
	}

	if s.op == OperatorComplement {
		if err := encodeNode(out, s.left, reg); err != nil {
			return err
		}
		*out = append(*out, loadInstruction(reg, reg, sdfvm.CombineNeg, 0, sdfvm.FillStrokeWidth))
	} else {
		if err := encodeNode(out, s.left, reg); err != nil {
			return err
		}
		if err := encodeNode(out, s.right, reg+1); err != nil {
			return err
		}
		*out = append(*out, loadInstruction(reg+1, reg, s.op.combineOp(), s.parameter, sdfvm.FillStrokeWidth))
	}

	// A stroked composite outlines the combined result, so the stroke
	// conversion runs in a separate reload after the fold.
	if s.strokeWidth >= 0 {
		*out = append(*out, loadInstruction(reg, reg, sdfvm.CombineReplace, 0, s.strokeWidth))
	}
	return nil
}

func loadInstruction(src, target uint32, op sdfvm.CombineOp, parameter, strokeWidth float64) sdfvm.Instruction {
	return sdfvm.Instruction{
		Op:             sdfvm.OpLoadRegister,
		StrokeWidth:    strokeWidth,
		Parameter:      parameter,
		Slots:          [16]float64{float64(src)},
		Combine:        op,
		TargetRegister: target,
	}
}
