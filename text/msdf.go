package text

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sdfvm"
)

// Glyph cells are laid out as a padded em box: the glyph is loaded at
// cellInnerSize pixels per em, the baseline sits baselineShare down the
// inner box, and cellPadding pixels of distance falloff surround it so
// the field decays smoothly to "outside" at the cell border.
const (
	cellPadding   = 8.0
	cellInnerSize = sdfvm.GlyphCellSize - 2*cellPadding
	baselineShare = 0.8

	// distanceRange is the signed distance span, in cell pixels, that
	// maps onto a channel's [0, 1]: 0.5 is the edge, 1.0 is
	// distanceRange pixels inside.
	distanceRange = 8.0
)

// Channel bits for edge coloring.
const (
	chanR uint8 = 1 << iota
	chanG
	chanB
	chanAll = chanR | chanG | chanB
)

// crossThreshold decides what counts as a corner between adjacent
// edges: sin of the msdfgen default 3-radian angle threshold.
var crossThreshold = math.Sin(3.0)

// msdfEdge is one colored outline edge, always quadratic; straight
// edges carry their midpoint as the control.
type msdfEdge struct {
	start, control, end sdfvm.Vec2
	color               uint8
}

func lineEdge(a, b sdfvm.Vec2) msdfEdge {
	return msdfEdge{start: a, control: a.Lerp(b, 0.5), end: b}
}

func (e *msdfEdge) direction(t float64) sdfvm.Vec2 {
	d := e.control.Sub(e.start).Lerp(e.end.Sub(e.control), t)
	if d.IsZero() {
		return e.end.Sub(e.start)
	}
	return d
}

func (e *msdfEdge) point(t float64) sdfvm.Vec2 {
	a := e.start.Lerp(e.control, t)
	b := e.control.Lerp(e.end, t)
	return a.Lerp(b, t)
}

// distance returns the unsigned distance from p to the edge curve.
func (e *msdfEdge) distance(p sdfvm.Vec2) float64 {
	return math.Abs(sdfvm.SDFQuadBezier(p, e.start, e.control, e.end))
}

// bakeGlyph renders a glyph's outline into a fresh atlas cell and
// returns the cell's glyph id. Glyphs without an outline (spaces) bake
// as fully outside.
func bakeGlyph(f *Font, gid sfnt.GlyphIndex, atlas *sdfvm.GlyphAtlas) (int, error) {
	var buf sfnt.Buffer
	segs, err := f.loadOutline(&buf, gid, cellInnerSize)
	if err != nil {
		return 0, err
	}

	id := atlas.AllocateCell()
	img := image.NewNRGBA(image.Rect(0, 0, sdfvm.GlyphCellSize, sdfvm.GlyphCellSize))

	contours := buildContours(segs)
	for _, c := range contours {
		colorContour(c)
	}

	for y := 0; y < sdfvm.GlyphCellSize; y++ {
		for x := 0; x < sdfvm.GlyphCellSize; x++ {
			p := sdfvm.V2(float64(x)+0.5, float64(y)+0.5)
			r, g, b := fieldAt(contours, p)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}

	atlas.SetCell(id, img)
	return id, nil
}

// buildContours converts loaded outline segments into closed edge
// loops in cell space. The sfnt coordinates are y-down with the origin
// on the baseline; the cell transform adds the padding and baseline
// offsets.
func buildContours(segs []sfnt.Segment) [][]msdfEdge {
	toCell := func(p fixed.Point26_6) sdfvm.Vec2 {
		return sdfvm.V2(
			cellPadding+float64(p.X)/64,
			cellPadding+baselineShare*cellInnerSize+float64(p.Y)/64,
		)
	}

	var contours [][]msdfEdge
	var current []msdfEdge
	var first, pen sdfvm.Vec2

	closeCurrent := func() {
		if len(current) == 0 {
			return
		}
		if !pen.Approx(first, 1e-9) {
			current = append(current, lineEdge(pen, first))
		}
		contours = append(contours, current)
		current = nil
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeCurrent()
			first = toCell(seg.Args[0])
			pen = first
		case sfnt.SegmentOpLineTo:
			to := toCell(seg.Args[0])
			current = append(current, lineEdge(pen, to))
			pen = to
		case sfnt.SegmentOpQuadTo:
			ctrl := toCell(seg.Args[0])
			to := toCell(seg.Args[1])
			current = append(current, msdfEdge{start: pen, control: ctrl, end: to})
			pen = to
		case sfnt.SegmentOpCubeTo:
			c1 := toCell(seg.Args[0])
			c2 := toCell(seg.Args[1])
			to := toCell(seg.Args[2])
			q1, q2 := cubicToQuadPair(pen, c1, c2, to)
			current = append(current, q1, q2)
			pen = to
		}
	}
	closeCurrent()
	return contours
}

// cubicToQuadPair approximates a cubic Bezier with two quadratics by
// splitting at the midpoint and applying the midpoint rule to each
// half. Glyph cubics are short, so two pieces stay well under a texel
// of error at cell resolution.
func cubicToQuadPair(p0, c1, c2, p3 sdfvm.Vec2) (msdfEdge, msdfEdge) {
	ab := p0.Lerp(c1, 0.5)
	bc := c1.Lerp(c2, 0.5)
	cd := c2.Lerp(p3, 0.5)
	abc := ab.Lerp(bc, 0.5)
	bcd := bc.Lerp(cd, 0.5)
	mid := abc.Lerp(bcd, 0.5)

	ctrl1 := ab.Add(abc).Mul(3).Sub(p0).Sub(mid).Mul(0.25)
	ctrl2 := bcd.Add(cd).Mul(3).Sub(mid).Sub(p3).Mul(0.25)
	return msdfEdge{start: p0, control: ctrl1, end: mid},
		msdfEdge{start: mid, control: ctrl2, end: p3}
}

// colorContour assigns channel colors to a contour's edges. A contour
// without corners is white on all channels; with corners, the color
// cycles at every corner so the two edges meeting there disagree in
// exactly one channel, which is what lets the median reconstruct the
// corner.
func colorContour(edges []msdfEdge) {
	n := len(edges)
	if n == 0 {
		return
	}

	var corners []int
	for i := range edges {
		prev := &edges[(i+n-1)%n]
		if isCorner(prev.direction(1).Normalize(), edges[i].direction(0).Normalize()) {
			corners = append(corners, i)
		}
	}

	if len(corners) == 0 {
		for i := range edges {
			edges[i].color = chanAll
		}
		return
	}

	cycle := [3]uint8{chanR | chanG, chanG | chanB, chanR | chanB}
	colorIdx := 0
	corner := 0
	for off := 0; off < n; off++ {
		i := (corners[0] + off) % n
		if corner+1 < len(corners) && i == corners[corner+1] {
			corner++
			colorIdx = (colorIdx + 1) % 3
		}
		edges[i].color = cycle[colorIdx]
	}
}

func isCorner(a, b sdfvm.Vec2) bool {
	return a.Dot(b) <= 0 || math.Abs(a.Cross(b)) > crossThreshold
}

// fieldAt evaluates the three distance channels at a cell point. Each
// channel takes the minimum distance over the edges carrying it, and
// all three share the sign given by the nonzero winding rule, so the
// channels only disagree near corners where they track different
// edges.
func fieldAt(contours [][]msdfEdge, p sdfvm.Vec2) (r, g, b uint8) {
	minR := math.Inf(1)
	minG := math.Inf(1)
	minB := math.Inf(1)

	for _, c := range contours {
		for i := range c {
			e := &c[i]
			d := e.distance(p)
			if e.color&chanR != 0 && d < minR {
				minR = d
			}
			if e.color&chanG != 0 && d < minG {
				minG = d
			}
			if e.color&chanB != 0 && d < minB {
				minB = d
			}
		}
	}

	sign := 1.0
	if windingAt(contours, p) != 0 {
		sign = -1
	}
	return distanceByte(sign * minR), distanceByte(sign * minG), distanceByte(sign * minB)
}

// windingAt computes the winding number of the outline around p by
// casting a ray toward +x over the edges flattened to short segments.
func windingAt(contours [][]msdfEdge, p sdfvm.Vec2) int {
	const flatten = 8
	winding := 0
	for _, c := range contours {
		for i := range c {
			e := &c[i]
			prev := e.start
			for s := 1; s <= flatten; s++ {
				next := e.point(float64(s) / flatten)
				if (prev.Y <= p.Y) != (next.Y <= p.Y) {
					t := (p.Y - prev.Y) / (next.Y - prev.Y)
					if prev.X+t*(next.X-prev.X) > p.X {
						if next.Y > prev.Y {
							winding++
						} else {
							winding--
						}
					}
				}
				prev = next
			}
		}
	}
	return winding
}

// distanceByte maps a signed cell-pixel distance (negative inside) to a
// channel byte: 128 on the edge, brighter inside.
func distanceByte(d float64) uint8 {
	if math.IsInf(d, 1) {
		return 0
	}
	v := 0.5 - d/(2*distanceRange)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}
