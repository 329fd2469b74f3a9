package mandel

import "errors"

var (
	// ErrBufferSize indicates a pixel buffer whose length is not width*height*4.
	ErrBufferSize = errors.New("mandel: pixel buffer size does not match viewport")

	// ErrInvalidViewport indicates a viewport that cannot be rendered, such as
	// a non-positive zoom extent or resolution.
	ErrInvalidViewport = errors.New("mandel: invalid viewport")

	ErrUnknownRenderingMode = errors.New("mandel: unknown rendering mode")
	ErrUnknownPalette       = errors.New("mandel: palette not in viewport")
)
