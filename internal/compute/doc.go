// Package compute provides the escape-time iteration kernels.
//
// Two kernels satisfy the same [Kernel] contract:
//
//   - Vectorized: four-lane lock-step batch kernel (amd64, arm64)
//   - Portable: scalar fallback available everywhere
//
// The package selects the best available kernel at startup:
//
//	k := compute.GetKernel()
//	e := k.Escape(complex(-0.75, 0.1), compute.DefaultParams())
//
// Build with the purego tag to force the portable kernel:
//
//	go build -tags purego ./...
//
// Both kernels produce bit-identical results; the vectorized kernel only
// changes the order in which the work is scheduled.
package compute
