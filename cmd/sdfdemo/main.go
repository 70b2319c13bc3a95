// Command sdfdemo renders a demo scene with the sdfvm interpreter.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/gogpu/sdfvm"
	"github.com/gogpu/sdfvm/scene"
	"github.com/gogpu/sdfvm/text"
)

func main() {
	var (
		width    = flag.Float64("width", 800, "viewport width in logical pixels")
		height   = flag.Float64("height", 600, "viewport height in logical pixels")
		scale    = flag.Float64("scale", 1, "device pixel scale factor")
		output   = flag.String("output", "demo.png", "output file")
		fontPath = flag.String("font", "", "TTF font for the text sample (optional)")
	)
	flag.Parse()

	windowSize := sdfvm.V2(*width, *height)
	p := scene.NewPainter(sdfvm.V2(0, 0), windowSize)
	glyphs := sdfvm.NewGlyphAtlas()

	drawBackground(p, windowSize)
	drawShapes(p)
	drawCSG(p)
	drawStrokes(p)

	if *fontPath != "" {
		if err := drawText(p, glyphs, *fontPath); err != nil {
			log.Fatalf("text sample: %v", err)
		}
	}

	instrs, err := p.Encode()
	if err != nil {
		log.Fatalf("encoding scene: %v", err)
	}

	u := p.Uniforms(windowSize, *scale, len(instrs))
	m := sdfvm.NewMachine(instrs, u, nil, glyphs)

	r := sdfvm.NewRenderer()
	defer r.Close()

	pm, err := r.Render(m)
	if err != nil {
		log.Fatalf("rendering: %v", err)
	}
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("saving %s: %v", *output, err)
	}
	log.Printf("rendered %d instructions to %s (%dx%d)",
		len(instrs), *output, pm.Width(), pm.Height())
}

func drawBackground(p *scene.Painter, size sdfvm.Vec2) {
	p.Draw(
		scene.Rect(sdfvm.V2(0, 0), size),
		scene.LinearGradient(
			sdfvm.RGB(0.10, 0.12, 0.25),
			sdfvm.RGB(0.02, 0.03, 0.08),
			sdfvm.V2(0, 0),
			sdfvm.V2(0, size.Y),
		),
	)
}

func drawShapes(p *scene.Painter) {
	p.Draw(
		scene.Circle(sdfvm.V2(150, 150), 80),
		scene.RadialGradient(
			sdfvm.RGB(1, 0.85, 0.3),
			sdfvm.RGBA{R: 1, G: 0.4, B: 0.1, A: 0.9},
			sdfvm.V2(150, 150), 80,
		),
	)

	p.FillRoundedRect(
		sdfvm.V2(280, 80),
		sdfvm.V2(460, 220),
		[4]float64{40, 10, 40, 10},
		sdfvm.RGBA{R: 0.3, G: 0.8, B: 0.6, A: 0.85},
	)

	p.Draw(
		scene.Triangle(sdfvm.V2(540, 220), sdfvm.V2(620, 80), sdfvm.V2(700, 220)),
		scene.Solid(sdfvm.RGBA{R: 0.9, G: 0.3, B: 0.5, A: 0.9}),
	)
}

// drawCSG shows the combine algebra: a ring via difference, and a lens
// via intersection, the latter under a rotated transform.
func drawCSG(p *scene.Painter) {
	ring := scene.Circle(sdfvm.V2(150, 400), 90).
		Difference(scene.Circle(sdfvm.V2(150, 400), 55))
	p.Draw(ring, scene.Solid(sdfvm.RGB(0.4, 0.6, 1)))

	lens := scene.Circle(sdfvm.V2(360, 400), 70).
		Intersect(scene.Circle(sdfvm.V2(420, 400), 70))

	rot := sdfvm.Translate(390, 400).
		Multiply(sdfvm.Rotate(math.Pi / 8)).
		Multiply(sdfvm.Translate(-390, -400))
	p.SetTransform(rot)
	p.Draw(lens, scene.Solid(sdfvm.RGBA{R: 1, G: 1, B: 1, A: 0.9}))
	p.SetTransform(sdfvm.Identity())
}

func drawStrokes(p *scene.Painter) {
	p.StrokeCircle(sdfvm.V2(600, 400), 80, 6, sdfvm.RGB(0.95, 0.8, 0.2))
	p.StrokeQuadBezier(
		sdfvm.V2(480, 540), sdfvm.V2(600, 300), sdfvm.V2(720, 540),
		4, sdfvm.RGB(0.2, 0.9, 0.9),
	)
	p.StrokeCubicBezier(
		sdfvm.V2(60, 560), sdfvm.V2(220, 480), sdfvm.V2(380, 640), sdfvm.V2(540, 560),
		3, sdfvm.RGBA{R: 1, G: 0.5, B: 0.7, A: 0.9},
	)
}

func drawText(p *scene.Painter, glyphs *sdfvm.GlyphAtlas, fontPath string) error {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return err
	}
	f, err := text.Load(data)
	if err != nil {
		return err
	}
	ts := text.NewTypesetter(f, glyphs)
	return ts.DrawString(p, "signed distance fields", sdfvm.V2(60, 60), 32, sdfvm.White)
}
