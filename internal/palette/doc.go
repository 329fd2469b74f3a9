// Package palette turns escape values into colors.
//
// A [Gradient] is a Catmull-Rom spline through CIE L*a*b* control points
// parsed from #RRGGBB hex strings. A [Colorizer] maps a normalized progress
// value onto either a gradient or a procedural LCh hue ramp.
package palette
