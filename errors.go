package sdfvm

import "errors"

// Sentinel errors returned by the renderer entry points. The per-pixel
// interpreter itself never fails: malformed instructions degrade to
// no-ops so one bad entry cannot take down a frame.
var (
	// ErrInvalidViewport reports a non-positive window size or scale
	// factor in the uniform block.
	ErrInvalidViewport = errors.New("sdfvm: invalid viewport dimensions")

	// ErrNilMachine reports a render call without a machine.
	ErrNilMachine = errors.New("sdfvm: nil machine")

	// ErrSizeMismatch reports a destination pixmap whose dimensions do
	// not match the viewport.
	ErrSizeMismatch = errors.New("sdfvm: pixmap size does not match viewport")
)
