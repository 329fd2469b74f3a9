package compute

// Kernel iterates z ← z² + c for sample points.
//
// Escape is the full mode used for smooth coloring. Iterations is the silent
// mode used by the boundary scanner. EscapeBatch fills out[i] for cs[i] and
// requires len(out) >= len(cs).
type Kernel interface {
	Name() string
	Available() bool
	Escape(c complex128, p Params) Escape
	Iterations(c complex128, p Params) int
	EscapeBatch(cs []complex128, p Params, out []Escape)
}

var activeKernel Kernel

func init() {
	activeKernel = AutoSelectKernel()
}

// SetKernel replaces the kernel returned by GetKernel. It must not be called
// while a render is in flight.
func SetKernel(k Kernel) {
	if k == nil || !k.Available() {
		k = NewPortableKernel()
	}
	activeKernel = k
}

func GetKernel() Kernel {
	return activeKernel
}

func AutoSelectKernel() Kernel {
	vec := NewVectorizedKernel()
	if vec.Available() {
		return vec
	}
	return NewPortableKernel()
}

// Lookup returns the kernel registered under name ("portable", "vectorized"
// or "auto").
func Lookup(name string) (Kernel, bool) {
	switch name {
	case "portable":
		return NewPortableKernel(), true
	case "vectorized":
		return NewVectorizedKernel(), true
	case "", "auto":
		return AutoSelectKernel(), true
	}
	return nil, false
}
