package gui

import (
	"fmt"
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mandelbrot/internal/mandel"
	"github.com/san-kum/mandelbrot/internal/palette"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(208, 200, 168, 255)
	ColTextDim = rl.NewColor(120, 120, 120, 255)
	ColPanel   = rl.NewColor(0, 0, 0, 160)
)

const (
	wheelIn  = 0.8
	wheelOut = 1 / wheelIn
	panStep  = 8
)

// App is a raylib window showing one viewport at its native resolution.
// The viewport is only changed between frames, never during a render.
type App struct {
	View     *mandel.Viewport
	Renderer *mandel.Renderer
	ShowHUD  bool

	initial *mandel.Viewport
	pix     []byte
	colors  []color.RGBA
	tex     rl.Texture2D
	dirty   bool
	elapsed time.Duration
	err     error
}

func NewApp(r *mandel.Renderer, v *mandel.Viewport) *App {
	return &App{
		View:     v.Clone(),
		Renderer: r,
		ShowHUD:  true,
		initial:  v.Clone(),
		pix:      make([]byte, v.Width*v.Height*4),
		colors:   make([]color.RGBA, v.Width*v.Height),
		dirty:    true,
	}
}

// Run opens a window the size of v and blocks until it is closed.
func Run(r *mandel.Renderer, v *mandel.Viewport) error {
	if err := v.Validate(); err != nil {
		return err
	}

	rl.InitWindow(int32(v.Width), int32(v.Height), "mandelbrot")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(r, v)
	img := rl.GenImageColor(v.Width, v.Height, rl.Black)
	app.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(app.tex)

	app.RunLoop()
	return app.err
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

// Update applies the input of one frame and re-renders when the view
// changed.
func (a *App) Update() {
	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)

	switch {
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		a.zoom(x, y, mandel.ZoomIn)
	case rl.IsMouseButtonReleased(rl.MouseButtonRight):
		a.zoom(x, y, mandel.ZoomOut)
	}
	if wheel := rl.GetMouseWheelMove(); wheel > 0 {
		a.zoom(x, y, wheelIn)
	} else if wheel < 0 {
		a.zoom(x, y, wheelOut)
	}

	v := a.View
	keys := []struct {
		key int32
		fn  func()
	}{
		{rl.KeyLeft, func() { v.Pan(-float64(v.Width)/panStep, 0) }},
		{rl.KeyRight, func() { v.Pan(float64(v.Width)/panStep, 0) }},
		{rl.KeyUp, func() { v.Pan(0, -float64(v.Height)/panStep) }},
		{rl.KeyDown, func() { v.Pan(0, float64(v.Height)/panStep) }},
		{rl.KeyM, a.toggleRendering},
		{rl.KeyC, a.toggleColoring},
		{rl.KeyP, v.CyclePalette},
		{rl.KeyEqual, func() { v.MaxIterations *= 2 }},
		{rl.KeyMinus, func() { v.MaxIterations = max(v.MaxIterations/2, 1) }},
		{rl.KeyR, a.reset},
	}
	for _, k := range keys {
		if rl.IsKeyPressed(k.key) {
			k.fn()
			a.dirty = true
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.ShowHUD = !a.ShowHUD
	}

	if a.dirty {
		a.render()
	}
}

func (a *App) zoom(x, y, factor float64) {
	a.View.ZoomAt(x, y, factor)
	a.dirty = true
}

func (a *App) toggleRendering() {
	if a.View.Rendering == mandel.Smooth {
		a.View.Rendering = mandel.Fast
	} else {
		a.View.Rendering = mandel.Smooth
	}
}

func (a *App) toggleColoring() {
	if a.View.Coloring == palette.PaletteMode {
		a.View.Coloring = palette.ProceduralMode
	} else {
		a.View.Coloring = palette.PaletteMode
	}
}

// reset restores the starting view. A later Reset of the window's own
// viewport pointer would lose the window size, so the copy is kept.
func (a *App) reset() {
	a.View = a.initial.Clone()
}

func (a *App) render() {
	a.dirty = false
	start := time.Now()
	if err := a.Renderer.Render(a.View, a.pix); err != nil {
		a.err = err
		mandel.Logger().Error("render failed", "err", err)
		return
	}
	a.elapsed = time.Since(start)
	a.err = nil

	for i := range a.colors {
		p := a.pix[i*4 : i*4+4]
		a.colors[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	rl.UpdateTexture(a.tex, a.colors)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	rl.DrawTexture(a.tex, 0, 0, rl.White)
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	v := a.View
	name := "-"
	if g := v.Gradient(); g != nil {
		name = g.Name
	}

	rl.DrawRectangle(0, 0, int32(v.Width), 58, ColPanel)
	rl.DrawText(fmt.Sprintf("%.12g %+.12gi", v.Position.X, v.Position.Y), 12, 8, 16, ColText)
	rl.DrawText(fmt.Sprintf("zoom %.3g  iter %d  %s/%s/%s  %s",
		v.Zoom.Y, v.MaxIterations, v.Rendering, v.Coloring, name,
		a.elapsed.Round(time.Millisecond)), 12, 30, 14, ColTextDim)
	if a.err != nil {
		rl.DrawText(a.err.Error(), 12, 46, 12, rl.Red)
	}

	rl.DrawText("[LMB] IN  [RMB] OUT  [M] MODE  [C] COLOR  [P] PALETTE  [+/-] ITER  [R] RESET  [SPACE] HUD",
		12, int32(v.Height)-22, 12, ColTextDim)
	rl.DrawFPS(int32(v.Width)-90, 8)
}
