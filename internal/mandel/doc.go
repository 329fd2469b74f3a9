// Package mandel renders the Mandelbrot set into RGBA8 pixel buffers.
//
// A [Viewport] holds the render state: the plane-space center and per-axis
// half extent, the output resolution, the kernel tuning knobs and the
// coloring selection. A [Renderer] partitions the buffer into disjoint work
// units and fills it in one fork-join pass:
//
//	v := mandel.DefaultViewport()
//	pix := make([]byte, v.Width*v.Height*4)
//	if err := mandel.Render(v, pix); err != nil {
//		return err
//	}
//
// Smooth rendering evaluates every pixel with the full kernel and colors it
// by the renormalized escape count. Fast rendering splits the image into
// horizontal bands and runs a [Scanner] over each one, which only evaluates
// pixels along iteration-count discontinuities.
//
// The viewport must not be mutated while a render is in flight. Between
// renders, front ends move it with [Viewport.ZoomAt] and [Viewport.Pan].
package mandel
