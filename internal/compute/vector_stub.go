//go:build !(amd64 || arm64) || purego

package compute

type VectorizedKernel struct{}

func NewVectorizedKernel() *VectorizedKernel {
	return &VectorizedKernel{}
}

func (k *VectorizedKernel) Name() string    { return "vectorized (not available)" }
func (k *VectorizedKernel) Available() bool { return false }

func (k *VectorizedKernel) Escape(c complex128, p Params) Escape {
	return NewPortableKernel().Escape(c, p)
}

func (k *VectorizedKernel) Iterations(c complex128, p Params) int {
	return NewPortableKernel().Iterations(c, p)
}

func (k *VectorizedKernel) EscapeBatch(cs []complex128, p Params, out []Escape) {
	NewPortableKernel().EscapeBatch(cs, p, out)
}
