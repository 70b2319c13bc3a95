package sdfvm

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Atlas geometry. The generic texture atlas is a stack of square RGBA
// layers addressed by (layer id, UV). The glyph atlas is a stack of
// layers divided into a fixed grid of square cells, one MSDF glyph per
// cell, addressed by a single integer glyph id.
const (
	// TextureAtlasSize is the side length of one generic atlas layer.
	TextureAtlasSize = 2560
	// GlyphAtlasSize is the side length of one glyph atlas layer.
	GlyphAtlasSize = 2048
	// GlyphCellSize is the side length of one glyph cell.
	GlyphCellSize = 64
	// GlyphCellsPerRow is the number of cells across one layer.
	GlyphCellsPerRow = GlyphAtlasSize / GlyphCellSize
	// GlyphCellsPerLayer is the number of cells in one layer.
	GlyphCellsPerLayer = GlyphCellsPerRow * GlyphCellsPerRow
)

// sdfSpread is the distance range, in cell pixels, that a baked
// grayscale SDF texture encodes across its [0, 1] luminance span.
const sdfSpread = 16.0

// TextureAtlas holds the generic RGBA texture layers used by texture
// fills and baked-SDF shapes. Not safe for concurrent mutation; the
// renderer only reads it, so a host must finish uploads before
// submitting a frame.
type TextureAtlas struct {
	layers []*image.NRGBA
}

// NewTextureAtlas returns an empty atlas.
func NewTextureAtlas() *TextureAtlas {
	return &TextureAtlas{}
}

// AddLayer appends an empty layer and returns its id.
func (a *TextureAtlas) AddLayer() int {
	a.layers = append(a.layers, image.NewNRGBA(
		image.Rect(0, 0, TextureAtlasSize, TextureAtlasSize)))
	return len(a.layers) - 1
}

// Layers returns the number of layers.
func (a *TextureAtlas) Layers() int {
	return len(a.layers)
}

// Insert scales src into the given rectangle of a layer. The layer must
// exist. Scaling uses a bilinear kernel so downscaled uploads stay
// smooth when re-sampled during rendering.
func (a *TextureAtlas) Insert(layer int, r image.Rectangle, src image.Image) {
	dst := a.layers[layer]
	xdraw.BiLinear.Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
}

// Sample reads the atlas with bilinear filtering at a UV coordinate in
// [0, 1] layer space. Coordinates clamp to the edge; an out-of-range
// layer id yields transparent black.
func (a *TextureAtlas) Sample(layer int, uv Vec2) RGBA {
	if layer < 0 || layer >= len(a.layers) {
		return Transparent
	}
	return bilinear(a.layers[layer], uv.X*TextureAtlasSize, uv.Y*TextureAtlasSize)
}

// Distance converts a grayscale-baked SDF texel to a signed distance in
// device pixels. Luminance 0.5 is the boundary; brighter is inside. The
// scale argument converts the baked spread to the viewport's pixel
// density.
func (a *TextureAtlas) Distance(layer int, uv Vec2, scale float64) float64 {
	c := a.Sample(layer, uv)
	lum := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	return (0.5 - lum) * sdfSpread * scale
}

// GlyphAtlas holds multi-channel signed distance fields for glyphs, one
// glyph per fixed-size cell. A glyph id addresses layer id/GlyphCellsPerLayer,
// cell id%GlyphCellsPerLayer, row-major within the layer.
type GlyphAtlas struct {
	layers []*image.NRGBA
	next   int
}

// NewGlyphAtlas returns an empty atlas.
func NewGlyphAtlas() *GlyphAtlas {
	return &GlyphAtlas{}
}

// AllocateCell reserves the next free cell and returns its glyph id,
// growing the layer stack when the current layer fills up.
func (a *GlyphAtlas) AllocateCell() int {
	id := a.next
	a.next++
	for id/GlyphCellsPerLayer >= len(a.layers) {
		a.layers = append(a.layers, image.NewNRGBA(
			image.Rect(0, 0, GlyphAtlasSize, GlyphAtlasSize)))
	}
	return id
}

// CellRect returns the layer index and pixel rectangle of a glyph cell.
func (a *GlyphAtlas) CellRect(glyphID int) (layer int, r image.Rectangle) {
	layer = glyphID / GlyphCellsPerLayer
	cell := glyphID % GlyphCellsPerLayer
	x := (cell % GlyphCellsPerRow) * GlyphCellSize
	y := (cell / GlyphCellsPerRow) * GlyphCellSize
	return layer, image.Rect(x, y, x+GlyphCellSize, y+GlyphCellSize)
}

// SetCell copies a rendered GlyphCellSize-square MSDF image into the
// cell for glyphID. The cell must have been allocated.
func (a *GlyphAtlas) SetCell(glyphID int, src image.Image) {
	layer, r := a.CellRect(glyphID)
	xdraw.Draw(a.layers[layer], r, src, src.Bounds().Min, xdraw.Src)
}

// MedianSample reads the glyph cell at a UV coordinate in [0, 1] cell
// space and returns the median of the three distance channels, the
// standard MSDF reconstruction that preserves corners. Out-of-range
// glyph ids read as fully outside (0).
func (a *GlyphAtlas) MedianSample(glyphID int, uv Vec2) float64 {
	if glyphID < 0 {
		return 0
	}
	layer, r := a.CellRect(glyphID)
	if layer >= len(a.layers) {
		return 0
	}
	x := float64(r.Min.X) + clamp(uv.X, 0, 1)*float64(GlyphCellSize-1)
	y := float64(r.Min.Y) + clamp(uv.Y, 0, 1)*float64(GlyphCellSize-1)
	c := bilinear(a.layers[layer], x, y)
	return median3(c.R, c.G, c.B)
}

// Layers returns the number of layers.
func (a *GlyphAtlas) Layers() int {
	return len(a.layers)
}

// bilinear samples an NRGBA image at a fractional pixel coordinate with
// clamp-to-edge addressing, returning normalized components.
func bilinear(img *image.NRGBA, x, y float64) RGBA {
	b := img.Bounds()
	x = clamp(x, float64(b.Min.X), float64(b.Max.X-1))
	y = clamp(y, float64(b.Min.Y), float64(b.Max.Y-1))

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := min(x0+1, b.Max.X-1)
	y1 := min(y0+1, b.Max.Y-1)
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := texelAt(img, x0, y0)
	c10 := texelAt(img, x1, y0)
	c01 := texelAt(img, x0, y1)
	c11 := texelAt(img, x1, y1)

	top := c00.Lerp(c10, fx)
	bottom := c01.Lerp(c11, fx)
	return top.Lerp(bottom, fy)
}

func texelAt(img *image.NRGBA, x, y int) RGBA {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	return RGBA{
		R: float64(s[0]) / 255,
		G: float64(s[1]) / 255,
		B: float64(s[2]) / 255,
		A: float64(s[3]) / 255,
	}
}

// median3 returns the middle of three values.
func median3(a, b, c float64) float64 {
	return math.Max(math.Min(a, b), math.Min(math.Max(a, b), c))
}
