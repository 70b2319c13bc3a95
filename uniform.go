package sdfvm

// Uniforms is the read-only per-frame block shared by every pixel
// evaluation. The host fills it once per frame; the interpreter never
// mutates it.
type Uniforms struct {
	// WindowSize is the viewport size in logical pixels.
	WindowSize Vec2
	// Pointer is the pointer device position in logical pixels.
	Pointer Vec2
	// Time is the elapsed time in seconds since the host started.
	Time float64
	// ScaleFactor converts logical pixels to device pixels.
	ScaleFactor float64
	// RegisterLen is the logical register stack length. Currently always
	// RegisterCount; carried for wire-format completeness.
	RegisterLen uint32
	// InstructionCount is the number of instruction buffer entries to
	// execute. Entries past this count are ignored, so a host may reuse
	// an oversized buffer.
	InstructionCount uint32
}

// NewUniforms returns a uniform block for a viewport with sensible
// defaults: unit scale factor and the full register stack.
func NewUniforms(width, height float64) Uniforms {
	return Uniforms{
		WindowSize:  V2(width, height),
		ScaleFactor: 1,
		RegisterLen: RegisterCount,
	}
}
