package sdfvm

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestTextureAtlasSample(t *testing.T) {
	a := NewTextureAtlas()
	layer := a.AddLayer()

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})
	a.Insert(layer, image.Rect(0, 0, 2, 2), src)

	got := a.Sample(layer, V2(0.5/TextureAtlasSize, 0.5/TextureAtlasSize))
	if got.R != 1 || got.A != 1 {
		t.Errorf("inserted texel = %+v, want opaque red", got)
	}

	// Out-of-range layers read transparent instead of panicking.
	if got := a.Sample(-1, V2(0, 0)); got != Transparent {
		t.Errorf("layer -1 = %+v, want transparent", got)
	}
	if got := a.Sample(layer+1, V2(0, 0)); got != Transparent {
		t.Errorf("missing layer = %+v, want transparent", got)
	}
}

func TestTextureAtlasSampleClamps(t *testing.T) {
	a := NewTextureAtlas()
	layer := a.AddLayer()

	// UV far outside [0,1] clamps to the edge texel.
	a.layers[layer].SetNRGBA(TextureAtlasSize-1, 0, color.NRGBA{R: 255, A: 255})
	got := a.Sample(layer, V2(5, -3))
	if got.R != 1 || got.A != 1 {
		t.Errorf("clamped sample = %+v, want the corner texel", got)
	}
}

func TestTextureAtlasDistance(t *testing.T) {
	a := NewTextureAtlas()
	layer := a.AddLayer()

	tests := []struct {
		name string
		gray uint8
		want float64
	}{
		{"boundary luminance", 128, (0.5 - 128.0/255) * sdfSpread},
		{"white is inside", 255, -0.5 * sdfSpread},
		{"black is outside", 0, 0.5 * sdfSpread},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := a.layers[layer]
			img.SetNRGBA(0, 0, color.NRGBA{tt.gray, tt.gray, tt.gray, 255})
			got := a.Distance(layer, V2(0, 0), 1)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}

	// The scale argument multiplies through.
	img := a.layers[layer]
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	half := a.Distance(layer, V2(0, 0), 0.5)
	full := a.Distance(layer, V2(0, 0), 1)
	if math.Abs(half*2-full) > 1e-9 {
		t.Errorf("scaled distance %v, want half of %v", half, full)
	}
}

func TestGlyphAtlasCellMapping(t *testing.T) {
	a := NewGlyphAtlas()

	// First id maps to the top-left cell of layer 0.
	id := a.AllocateCell()
	if id != 0 {
		t.Fatalf("first id = %d, want 0", id)
	}
	layer, r := a.CellRect(id)
	if layer != 0 || r != image.Rect(0, 0, GlyphCellSize, GlyphCellSize) {
		t.Errorf("cell 0 = layer %d rect %v", layer, r)
	}

	// Row-major within a layer.
	layer, r = a.CellRect(GlyphCellsPerRow + 1)
	want := image.Rect(GlyphCellSize, GlyphCellSize, 2*GlyphCellSize, 2*GlyphCellSize)
	if layer != 0 || r != want {
		t.Errorf("cell %d = layer %d rect %v, want layer 0 %v", GlyphCellsPerRow+1, layer, r, want)
	}

	// Layer rollover.
	layer, r = a.CellRect(GlyphCellsPerLayer + 5)
	if layer != 1 {
		t.Errorf("cell beyond first layer in layer %d, want 1", layer)
	}
	if _, first := a.CellRect(5); r != first {
		t.Errorf("cell %d rect %v, want same as cell 5 %v", GlyphCellsPerLayer+5, r, first)
	}
}

func TestGlyphAtlasAllocateGrowsLayers(t *testing.T) {
	a := NewGlyphAtlas()
	if a.Layers() != 0 {
		t.Fatalf("fresh atlas has %d layers", a.Layers())
	}
	for i := 0; i < GlyphCellsPerLayer; i++ {
		a.AllocateCell()
	}
	if a.Layers() != 1 {
		t.Errorf("after one layer's worth: %d layers, want 1", a.Layers())
	}
	id := a.AllocateCell()
	if id != GlyphCellsPerLayer {
		t.Errorf("rollover id = %d, want %d", id, GlyphCellsPerLayer)
	}
	if a.Layers() != 2 {
		t.Errorf("after rollover: %d layers, want 2", a.Layers())
	}
}

func TestGlyphAtlasMedianSample(t *testing.T) {
	a := NewGlyphAtlas()
	id := a.AllocateCell()

	cell := image.NewNRGBA(image.Rect(0, 0, GlyphCellSize, GlyphCellSize))
	for y := 0; y < GlyphCellSize; y++ {
		for x := 0; x < GlyphCellSize; x++ {
			// Distinct channels make the median observable.
			cell.SetNRGBA(x, y, color.NRGBA{R: 51, G: 204, B: 102, A: 255})
		}
	}
	a.SetCell(id, cell)

	got := a.MedianSample(id, V2(0.5, 0.5))
	if math.Abs(got-102.0/255) > 1e-9 {
		t.Errorf("median = %v, want %v", got, 102.0/255)
	}

	// Unallocated and negative ids read as fully outside.
	if got := a.MedianSample(id+GlyphCellsPerLayer, V2(0.5, 0.5)); got != 0 {
		t.Errorf("missing glyph median = %v, want 0", got)
	}
	if got := a.MedianSample(-3, V2(0.5, 0.5)); got != 0 {
		t.Errorf("negative glyph median = %v, want 0", got)
	}
}

func TestMedian3(t *testing.T) {
	tests := []struct {
		a, b, c, want float64
	}{
		{1, 2, 3, 2},
		{3, 1, 2, 2},
		{2, 3, 1, 2},
		{5, 5, 1, 5},
		{1, 5, 5, 5},
		{4, 4, 4, 4},
	}
	for _, tt := range tests {
		if got := median3(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("median3(%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestBilinearInterpolates(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})

	got := bilinear(img, 0.5, 0)
	if math.Abs(got.R-0.5) > 1e-9 {
		t.Errorf("midpoint R = %v, want 0.5", got.R)
	}
	// Clamp-to-edge beyond the last texel.
	if got := bilinear(img, 10, 10); math.Abs(got.R-1) > 1e-9 {
		t.Errorf("clamped R = %v, want 1", got.R)
	}
}
