package compute

import "testing"

func benchmarkBatch(b *testing.B, k Kernel) {
	p := DefaultParams()
	cs := samplePoints(4096)
	out := make([]Escape, len(cs))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.EscapeBatch(cs, p, out)
	}
}

func BenchmarkPortableBatch(b *testing.B) {
	benchmarkBatch(b, NewPortableKernel())
}

func BenchmarkVectorizedBatch(b *testing.B) {
	benchmarkBatch(b, NewVectorizedKernel())
}

func BenchmarkIterations(b *testing.B) {
	k := NewPortableKernel()
	p := DefaultParams()
	c := complex(-0.7436438870, 0.1318259042)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.Iterations(c, p)
	}
}
