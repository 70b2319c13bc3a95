package sdfvm

import (
	"math"

	"github.com/gogpu/sdfvm/internal/parallel"
)

// Renderer rasterizes instruction buffers on the CPU. Each frame is
// split into horizontal bands dispatched to a worker pool; every pixel
// is an independent machine evaluation, so bands never synchronize with
// each other.
type Renderer struct {
	pool    *parallel.WorkerPool
	ownPool bool
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers int
	pool    *parallel.WorkerPool
}

// WithWorkers sets the number of render workers. Zero or negative means
// one per CPU.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithWorkerPool injects an existing pool instead of creating one. The
// caller keeps ownership and must close it; Close on the Renderer will
// not touch it.
func WithWorkerPool(p *parallel.WorkerPool) RendererOption {
	return func(o *rendererOptions) {
		o.pool = p
	}
}

// NewRenderer creates a renderer. The zero-option form uses a private
// pool with one worker per CPU.
func NewRenderer(opts ...RendererOption) *Renderer {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool != nil {
		return &Renderer{pool: o.pool}
	}
	return &Renderer{
		pool:    parallel.NewWorkerPool(o.workers),
		ownPool: true,
	}
}

// Close releases the renderer's worker pool if it owns one.
func (r *Renderer) Close() {
	if r.ownPool {
		r.pool.Close()
	}
}

// Render evaluates the machine for every device pixel of its viewport
// and returns the frame. The output size is the uniform window size
// multiplied by the scale factor, rounded up.
func (r *Renderer) Render(m *Machine) (*Pixmap, error) {
	w, h, err := deviceSize(m)
	if err != nil {
		return nil, err
	}
	pm := NewPixmap(w, h)
	if err := r.RenderInto(m, pm); err != nil {
		return nil, err
	}
	return pm, nil
}

// RenderInto evaluates the machine into an existing pixmap, which must
// match the viewport's device size. Reusing a pixmap across frames
// avoids one large allocation per frame.
func (r *Renderer) RenderInto(m *Machine, pm *Pixmap) error {
	w, h, err := deviceSize(m)
	if err != nil {
		return err
	}
	if pm.Width() != w || pm.Height() != h {
		return ErrSizeMismatch
	}

	scale := m.Uniforms.ScaleFactor
	bands := parallel.SplitBands(h)
	work := make([]func(), len(bands))
	for i, band := range bands {
		band := band
		work[i] = func() {
			renderBand(m, pm, band.Y0, band.Y1, w, scale)
		}
	}
	r.pool.ExecuteAll(work)
	return nil
}

// renderBand evaluates one horizontal strip serially.
func renderBand(m *Machine, pm *Pixmap, y0, y1, width int, scale float64) {
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			// Sample at the pixel center, in logical coordinates.
			sample := V2(
				(float64(x)+0.5)/scale,
				(float64(y)+0.5)/scale,
			)
			pm.SetPixel(x, y, m.Evaluate(sample))
		}
	}
}

// deviceSize validates the machine's viewport and returns the output
// dimensions in device pixels.
func deviceSize(m *Machine) (w, h int, err error) {
	if m == nil {
		return 0, 0, ErrNilMachine
	}
	u := m.Uniforms
	if u.WindowSize.X <= 0 || u.WindowSize.Y <= 0 || u.ScaleFactor <= 0 {
		return 0, 0, ErrInvalidViewport
	}
	w = int(math.Ceil(u.WindowSize.X * u.ScaleFactor))
	h = int(math.Ceil(u.WindowSize.Y * u.ScaleFactor))
	return w, h, nil
}
