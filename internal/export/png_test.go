package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mandelbrot/internal/mandel"
)

func testViewport() *mandel.Viewport {
	v := mandel.DefaultViewport()
	v.Width = 48
	v.Height = 32
	v.MaxIterations = 150
	return v
}

func TestImageWrapsBuffer(t *testing.T) {
	pix := make([]byte, 3*2*4)
	img, err := Image(pix, 3, 2)
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	img.SetRGBA(2, 1, color.RGBA{R: 9, A: 255})
	if pix[(1*3+2)*4] != 9 {
		t.Error("Image() copied the buffer")
	}

	if _, err := Image(pix, 4, 2); !errors.Is(err, mandel.ErrBufferSize) {
		t.Errorf("Image() error = %v, want ErrBufferSize", err)
	}
	if _, err := Image(nil, 0, 0); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestPNGRoundTrip(t *testing.T) {
	v := testViewport()
	pix := make([]byte, v.Width*v.Height*4)
	if err := mandel.Render(v, pix); err != nil {
		t.Fatal(err)
	}
	img, err := Image(pix, v.Width, v.Height)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			got := color.RGBAModel.Convert(decoded.At(x, y)).(color.RGBA)
			if want := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 4 || cfg.Height != 4 {
		t.Errorf("saved %dx%d, want 4x4", cfg.Width, cfg.Height)
	}

	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestRenderSupersampled(t *testing.T) {
	v := testViewport()
	r := &mandel.Renderer{}

	for _, factor := range []int{0, 1, 2, 3} {
		img, err := Render(r, v, factor)
		if err != nil {
			t.Fatalf("Render(%d) error = %v", factor, err)
		}
		if img.Bounds().Dx() != v.Width || img.Bounds().Dy() != v.Height {
			t.Errorf("Render(%d) size = %v", factor, img.Bounds())
		}
	}
	if v.Width != 48 || v.Height != 32 {
		t.Errorf("Render() modified the viewport: %dx%d", v.Width, v.Height)
	}
}

func TestDownscaleUniform(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = fill.R, fill.G, fill.B, fill.A
	}
	dst := Downscale(src, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := dst.RGBAAt(x, y)
			if !near(got.R, fill.R) || !near(got.G, fill.G) || !near(got.B, fill.B) || !near(got.A, fill.A) {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, fill)
			}
		}
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}
