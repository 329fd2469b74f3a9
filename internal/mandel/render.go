package mandel

import (
	"fmt"
	"image/color"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/mandelbrot/internal/compute"
)

// Renderer fills pixel buffers from a Viewport. The zero value is ready to
// use: it picks the active compute kernel and sizes both Bands and Workers
// from GOMAXPROCS.
type Renderer struct {
	Kernel compute.Kernel
	// Bands is the number of Fast mode bands, capped by the image height.
	Bands int
	// Workers bounds the number of work units in flight.
	Workers int

	fallbackOnce sync.Once
}

func NewRenderer(k compute.Kernel) *Renderer {
	return &Renderer{Kernel: k}
}

var defaultRenderer = &Renderer{}

// Render fills pix using the default renderer.
func Render(v *Viewport, pix []byte) error {
	return defaultRenderer.Render(v, pix)
}

// Render fills pix, which must hold Width*Height RGBA8 pixels in row-major
// order. Every pixel is written exactly once.
func (r *Renderer) Render(v *Viewport, pix []byte) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if want := v.Width * v.Height * 4; len(pix) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(pix), want)
	}

	col := v.Colorizer()
	_, err := r.run(v, visitor{
		block: func(lo int, es []compute.Escape) {
			for i, e := range es {
				putPixel(pix, lo+i, col.Escape(e))
			}
		},
		band: func(lo int, counts []int) {
			for i, n := range counts {
				putPixel(pix, lo+i, col.Count(n))
			}
		},
	})
	return err
}

func putPixel(pix []byte, i int, c color.RGBA) {
	p := pix[i*4 : i*4+4 : i*4+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// visitor receives the output of each work unit. lo is the image index of
// the first pixel. Units never overlap, so callbacks write without locking.
type visitor struct {
	block func(lo int, es []compute.Escape)
	band  func(lo int, counts []int)
}

// run partitions the frame and returns the number of kernel evaluations.
func (r *Renderer) run(v *Viewport, vis visitor) (int, error) {
	k := r.kernel()
	params := v.Params()
	begin := time.Now()

	var g errgroup.Group
	g.SetLimit(r.workers())

	var evaluated int
	var perBand []int
	switch v.Rendering {
	case Smooth:
		p := newPlane(v, 0, v.Height)
		n := v.Width * v.Height
		for lo := 0; lo < n; lo += v.BlockSize {
			hi := min(lo+v.BlockSize, n)
			g.Go(func() error {
				b := blocks.Get(hi - lo)
				defer blocks.Put(b)
				for i := range b.cs {
					idx := lo + i
					b.cs[i] = p.at(idx%v.Width, idx/v.Width)
				}
				k.EscapeBatch(b.cs, params, b.out)
				vis.block(lo, b.out)
				return nil
			})
		}
		evaluated = n

	case Fast:
		bands := r.bands(v.Height)
		perBand = make([]int, bands)
		for b := 0; b < bands; b++ {
			start := b * v.Height / bands
			end := (b + 1) * v.Height / bands
			g.Go(func() error {
				s := NewScanner(k, v, start, end)
				vis.band(start*v.Width, s.Scan())
				perBand[b] = s.Evaluated()
				return nil
			})
		}

	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidViewport, v.Rendering)
	}

	err := g.Wait()
	for _, c := range perBand {
		evaluated += c
	}
	Logger().Debug("frame rendered",
		"mode", v.Rendering,
		"kernel", k.Name(),
		"width", v.Width,
		"height", v.Height,
		"iterations", v.MaxIterations,
		"elapsed", time.Since(begin),
	)
	return evaluated, err
}

// kernel resolves the kernel of one frame. An unavailable kernel is
// replaced by the portable one; the first replacement per renderer logs a
// warning.
func (r *Renderer) kernel() compute.Kernel {
	if r.Kernel == nil {
		k := compute.GetKernel()
		if vec := compute.NewVectorizedKernel(); !vec.Available() {
			r.warnFallback(vec, k)
		}
		return k
	}
	if r.Kernel.Available() {
		return r.Kernel
	}
	k := compute.NewPortableKernel()
	r.warnFallback(r.Kernel, k)
	return k
}

func (r *Renderer) warnFallback(want, got compute.Kernel) {
	r.fallbackOnce.Do(func() {
		Logger().Warn("kernel unavailable, using fallback", "kernel", want.Name(), "fallback", got.Name())
	})
}

func (r *Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (r *Renderer) bands(height int) int {
	n := r.Bands
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(min(n, height), 1)
}
