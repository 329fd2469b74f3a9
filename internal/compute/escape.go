package compute

// Outcome records how the kernel decided a point.
type Outcome uint8

const (
	Escaped Outcome = iota
	Cardioid
	Bulb
	Periodic
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Escaped:
		return "escaped"
	case Cardioid:
		return "cardioid"
	case Bulb:
		return "bulb"
	case Periodic:
		return "periodic"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

const (
	DefaultMaxIterations = 1000
	DefaultBailout       = 1 << 16
	DefaultPeriodLength  = 20
)

type Params struct {
	MaxIterations int
	// Bailout is compared against |z|², not |z|.
	Bailout float64
	// PeriodLength is the number of steps between orbit snapshots used for
	// cycle detection.
	PeriodLength int
}

func DefaultParams() Params {
	return Params{
		MaxIterations: DefaultMaxIterations,
		Bailout:       DefaultBailout,
		PeriodLength:  DefaultPeriodLength,
	}
}

// Escape is the result of iterating one point.
//
// Iterations is the zero-based index of the step whose result left the
// bailout disc, or MaxIterations for every bounded outcome. Steps counts the
// iterations actually executed; closed-form shortcuts execute none.
type Escape struct {
	Outcome    Outcome
	Iterations int
	Steps      int
	Z          complex128
}

func (e Escape) Bounded() bool {
	return e.Outcome != Escaped
}

// shortcut tests the main cardioid and the period-2 bulb. It returns Escaped
// when neither contains c.
func shortcut(x, y float64) Outcome {
	y2 := y * y
	q := x - 0.25
	q = q*q + y2
	if q*(q+(x-0.25)) < 0.25*y2 {
		return Cardioid
	}
	if (x+1)*(x+1)+y2 < 0.0625 {
		return Bulb
	}
	return Escaped
}

func bounded(o Outcome, p Params, steps int, zr, zi float64) Escape {
	return Escape{Outcome: o, Iterations: p.MaxIterations, Steps: steps, Z: complex(zr, zi)}
}
