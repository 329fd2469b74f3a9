// Package geom provides the plain value types used to map between screen
// space and the complex plane.
//
//   - [Vector]: an (x, y) pair over any integer or float type
//   - [Rectangle]: start/end vectors with signed width and height
//   - [Range]: a coordinate axis with the linear remap [Range.Scale]
//
// # Example
//
//	rect := geom.RectFromPosition(position, zoom)
//	width := geom.NewRange(0, 1280)
//	real := geom.NewRange(rect.Start.X, rect.End.X)
//	re := width.Scale(640, real)
package geom
