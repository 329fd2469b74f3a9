// Package viz draws renders in the terminal.
//
// The package provides:
//
//   - [HalfBlock]: truecolor preview, two pixels per character cell
//   - [Swatch]: one-line palette sample
//   - [Canvas]: Braille silhouette of the bounded set
//   - [HistogramChart]: escape-count distribution via asciigraph
//   - [Explorer]: interactive Bubble Tea viewer
//
// # Key Bindings
//
//	←↑↓→ / hjkl - Pan
//	+ / -       - Zoom in / out at the center
//	m           - Toggle smooth / fast rendering
//	c           - Toggle palette / procedural coloring
//	p           - Cycle palettes
//	i / I       - Double / halve the iteration limit
//	r           - Reset the view
//	q           - Quit
package viz
