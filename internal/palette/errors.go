package palette

import "errors"

var (
	ErrInvalidHex     = errors.New("palette: invalid hex color")
	ErrTooFewStops    = errors.New("palette: gradient needs at least two stops")
	ErrUnknownPalette = errors.New("palette: unknown palette")
	ErrUnknownMode    = errors.New("palette: unknown coloring mode")
)
