package palette

import (
	"image/color"
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelbrot/internal/compute"
)

var _ = Describe("Colorizer", func() {
	var (
		g   *Gradient
		pal Colorizer
	)

	BeforeEach(func() {
		g = DefaultGradient()
		pal = NewColorizer(PaletteMode, g, 1000, 1)
	})

	Describe("palette strategy", func() {
		It("uses the default gradient when none is given", func() {
			c := NewColorizer(PaletteMode, nil, 1000, 1)
			Expect(c.Gradient.Name).To(Equal(DefaultName))
			Expect(c.Color(0.5)).To(Equal(pal.Color(0.5)))
		})

		It("maps s=0 to the first stop", func() {
			Expect(pal.Color(0)).To(Equal(g.RGBA(0)))
			Expect(pal.Count(0)).To(Equal(g.RGBA(0)))
		})

		It("maps s=1 to the last stop", func() {
			Expect(pal.Color(1)).To(Equal(g.RGBA(1)))
		})

		It("warps s by its cube root", func() {
			Expect(maxChannelDelta(pal.Color(0.125), g.RGBA(0.5))).To(BeNumerically("<=", 1))
		})

		It("has no jumps between adjacent iteration buckets", func() {
			prev := pal.Count(1)
			for n := 2; n < pal.MaxIterations; n++ {
				cur := pal.Count(n)
				Expect(maxChannelDelta(prev, cur)).To(BeNumerically("<=", 16), "bucket %d", n)
				prev = cur
			}
		})
	})

	Describe("bounded points", func() {
		It("colors counts at the limit black", func() {
			Expect(pal.Count(1000)).To(Equal(color.RGBA{A: 255}))
		})

		It("colors every bounded outcome black", func() {
			for _, o := range []compute.Outcome{compute.Cardioid, compute.Bulb, compute.Periodic, compute.Exhausted} {
				e := compute.Escape{Outcome: o, Iterations: 1000}
				Expect(pal.Escape(e)).To(Equal(color.RGBA{A: 255}))
			}
		})
	})

	Describe("progress", func() {
		It("clamps to the unit interval", func() {
			Expect(Progress(-5, 100, 1)).To(Equal(0.0))
			Expect(Progress(250, 100, 1)).To(Equal(1.0))
			Expect(Progress(math.NaN(), 100, 1)).To(Equal(0.0))
		})

		It("applies the exponent", func() {
			Expect(Progress(25, 100, 0.5)).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("renormalizes smooth counts", func() {
			e := compute.NewPortableKernel().Escape(complex(10, 10), compute.DefaultParams())
			want := float64(e.Iterations) + 1 - math.Log2(math.Log2(cmplx.Abs(e.Z)))
			Expect(SmoothCount(e.Iterations, e.Z)).To(BeNumerically("~", want, 1e-9))
		})

		It("is deterministic", func() {
			e := compute.NewPortableKernel().Escape(complex(0.3, 0.5), compute.DefaultParams())
			Expect(pal.Escape(e)).To(Equal(pal.Escape(e)))
		})
	})

	Describe("procedural strategy", func() {
		var proc Colorizer

		BeforeEach(func() {
			proc = NewColorizer(ProceduralMode, nil, 1000, 1)
		})

		It("produces opaque colors", func() {
			for i := 0; i <= 100; i++ {
				Expect(proc.Color(float64(i) / 100).A).To(Equal(uint8(255)))
			}
		})

		It("wraps around so both ends share a color", func() {
			Expect(Procedural(0)).To(Equal(Procedural(1)))
		})

		It("ignores the gradient", func() {
			other := NewColorizer(ProceduralMode, MustGradient("x", "#ff0000", "#00ff00"), 1000, 1)
			Expect(other.Color(0.4)).To(Equal(proc.Color(0.4)))
		})
	})

	Describe("modes", func() {
		It("parses names", func() {
			m, err := ParseMode("Procedural")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(ProceduralMode))
			Expect(m.String()).To(Equal("procedural"))

			_, err = ParseMode("histogram")
			Expect(err).To(MatchError(ErrUnknownMode))
		})
	})
})
