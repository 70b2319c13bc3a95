// Package sdfvm implements a per-pixel interpreter for signed distance
// field (SDF) draw programs.
//
// A frame is described by a flat buffer of fixed-size Instructions. For
// every pixel the interpreter walks the buffer once, left to right,
// evaluating primitive distance functions (circles, rounded rectangles,
// triangles, half-planes, quadratic Beziers, texture and glyph SDFs),
// combining them through a constructive shape algebra on a 64-register
// scalar stack, painting the combined shape (solid colors, gradients,
// textures) and compositing the result under a selectable blend mode.
// Edges are antialiased analytically from the signed distance, using
// numerically estimated gradients to stay visually consistent under
// arbitrary affine transforms.
//
// Each pixel is evaluated independently: Evaluate is a pure function of
// (sample position, program, uniforms, atlases). Renderer partitions the
// pixel grid into bands and evaluates them on a worker pool.
//
// The instruction buffer is produced by the scene package, which compiles
// a retained shape algebra into the flat program format.
package sdfvm
