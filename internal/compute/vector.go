//go:build (amd64 || arm64) && !purego

package compute

const lanes = 4

// VectorizedKernel iterates four points in lock step. The lanes share the
// snapshot schedule and retire independently as they escape or cycle.
type VectorizedKernel struct{}

func NewVectorizedKernel() *VectorizedKernel {
	return &VectorizedKernel{}
}

func (k *VectorizedKernel) Name() string    { return "vectorized" }
func (k *VectorizedKernel) Available() bool { return true }

func (k *VectorizedKernel) Escape(c complex128, p Params) Escape {
	return iterate(real(c), imag(c), p)
}

func (k *VectorizedKernel) Iterations(c complex128, p Params) int {
	return iterate(real(c), imag(c), p).Iterations
}

func (k *VectorizedKernel) EscapeBatch(cs []complex128, p Params, out []Escape) {
	i := 0
	for ; i+lanes <= len(cs); i += lanes {
		iterateLanes((*[lanes]complex128)(cs[i:i+lanes]), p, (*[lanes]Escape)(out[i:i+lanes]))
	}
	for ; i < len(cs); i++ {
		out[i] = iterate(real(cs[i]), imag(cs[i]), p)
	}
}

func iterateLanes(cs *[lanes]complex128, p Params, out *[lanes]Escape) {
	var x, y, zr, zi, oldR, oldI [lanes]float64
	var active [lanes]bool

	live := 0
	for l, c := range cs {
		x[l], y[l] = real(c), imag(c)
		if o := shortcut(x[l], y[l]); o != Escaped {
			out[l] = bounded(o, p, 0, 0, 0)
			continue
		}
		active[l] = true
		live++
	}

	period := 0
	for i := 0; i < p.MaxIterations && live > 0; i++ {
		for l := 0; l < lanes; l++ {
			if !active[l] {
				continue
			}
			zr2 := zr[l] * zr[l]
			zi2 := zi[l] * zi[l]
			zi[l] = 2*zr[l]*zi[l] + y[l]
			zr[l] = zr2 - zi2 + x[l]

			if zr[l]*zr[l]+zi[l]*zi[l] >= p.Bailout {
				out[l] = Escape{Outcome: Escaped, Iterations: i, Steps: i + 1, Z: complex(zr[l], zi[l])}
				active[l] = false
				live--
				continue
			}
			if zr[l] == oldR[l] && zi[l] == oldI[l] {
				out[l] = bounded(Periodic, p, i+1, zr[l], zi[l])
				active[l] = false
				live--
			}
		}

		period++
		if period >= p.PeriodLength {
			period = 0
			oldR, oldI = zr, zi
		}
	}

	for l := 0; l < lanes; l++ {
		if active[l] {
			out[l] = bounded(Exhausted, p, p.MaxIterations, zr[l], zi[l])
		}
	}
}
