package sdfvm

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)

	pm.SetPixel(2, 1, RGBA{R: 1, G: 0.5, B: 0, A: 1})
	got := pm.GetPixel(2, 1)
	if got.R != 1 || got.A != 1 {
		t.Errorf("GetPixel = %+v", got)
	}
	// 0.5 quantizes to 127/255.
	if got.G != 127.0/255 {
		t.Errorf("G = %v, want %v", got.G, 127.0/255)
	}

	// Out-of-bounds access is ignored on write and transparent on read.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(4, 0, White)
	pm.SetPixel(0, 3, White)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds read = %+v, want transparent", got)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("pixel (0,0) = %+v, want untouched", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(RGB(0, 0, 1))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); got.B != 1 || got.A != 1 {
				t.Fatalf("pixel (%d,%d) = %+v after Clear", x, y, got)
			}
		}
	}
}

func TestPixmapClampsComponents(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, RGBA{R: 2.5, G: -1, B: 0.5, A: 3})
	got := pm.GetPixel(0, 0)
	if got.R != 1 || got.G != 0 || got.A != 1 {
		t.Errorf("clamped pixel = %+v", got)
	}
}

func TestPixmapImageSharesData(t *testing.T) {
	pm := NewPixmap(2, 2)
	img := pm.Image()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("image bounds = %v", b)
	}

	pm.SetPixel(1, 1, Red)
	r, _, _, a := img.At(1, 1).RGBA()
	if r == 0 || a == 0 {
		t.Error("Image does not share the pixmap's backing data")
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	pm := NewPixmap(5, 4)
	pm.Clear(RGB(0.2, 0.4, 0.6))

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 5 || cfg.Height != 4 {
		t.Errorf("decoded size = %dx%d, want 5x4", cfg.Width, cfg.Height)
	}
}
