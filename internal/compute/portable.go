package compute

type PortableKernel struct{}

func NewPortableKernel() *PortableKernel {
	return &PortableKernel{}
}

func (k *PortableKernel) Name() string    { return "portable" }
func (k *PortableKernel) Available() bool { return true }

func (k *PortableKernel) Escape(c complex128, p Params) Escape {
	return iterate(real(c), imag(c), p)
}

func (k *PortableKernel) Iterations(c complex128, p Params) int {
	return iterate(real(c), imag(c), p).Iterations
}

func (k *PortableKernel) EscapeBatch(cs []complex128, p Params, out []Escape) {
	for i, c := range cs {
		out[i] = iterate(real(c), imag(c), p)
	}
}

func iterate(x, y float64, p Params) Escape {
	if o := shortcut(x, y); o != Escaped {
		return bounded(o, p, 0, 0, 0)
	}

	var zr, zi, oldR, oldI float64
	period := 0
	for i := 0; i < p.MaxIterations; i++ {
		zr2 := zr * zr
		zi2 := zi * zi
		zi = 2*zr*zi + y
		zr = zr2 - zi2 + x

		if zr*zr+zi*zi >= p.Bailout {
			return Escape{Outcome: Escaped, Iterations: i, Steps: i + 1, Z: complex(zr, zi)}
		}
		if zr == oldR && zi == oldI {
			return bounded(Periodic, p, i+1, zr, zi)
		}

		period++
		if period >= p.PeriodLength {
			period = 0
			oldR, oldI = zr, zi
		}
	}
	return bounded(Exhausted, p, p.MaxIterations, zr, zi)
}
