package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/san-kum/mandelbrot/internal/mandel"
)

// Image wraps a row-major RGBA8 buffer of w x h pixels without copying.
func Image(pix []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(pix) != w*h*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", mandel.ErrBufferSize, len(pix), w, h)
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

// Downscale resamples src to w x h with a Catmull-Rom filter.
func Downscale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func WritePNG(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return bw.Flush()
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Render renders v, supersampled by factor on each axis when factor > 1,
// and returns an image at v's resolution. v is not modified.
func Render(r *mandel.Renderer, v *mandel.Viewport, factor int) (*image.RGBA, error) {
	factor = max(factor, 1)
	big := v.Clone()
	big.Width *= factor
	big.Height *= factor

	pix := make([]byte, big.Width*big.Height*4)
	if err := r.Render(big, pix); err != nil {
		return nil, err
	}
	img, err := Image(pix, big.Width, big.Height)
	if err != nil {
		return nil, err
	}
	if factor == 1 {
		return img, nil
	}
	return Downscale(img, v.Width, v.Height), nil
}
