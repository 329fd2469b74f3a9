package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandelbrot/internal/mandel"
	"github.com/san-kum/mandelbrot/internal/palette"
)

const (
	// panStep divides the visible width into the distance of one key press.
	panStep = 8
	// coarseDivisor scales down the iteration limit of the first, quick
	// frame after every change.
	coarseDivisor = 8
	minCoarse     = 32
	chromeRows    = 3
)

type frameMsg struct {
	gen     int
	coarse  bool
	out     string
	elapsed time.Duration
	err     error
}

// Explorer is a Bubble Tea model that pans and zooms a viewport in the
// terminal. Each change first renders a low-iteration frame and then the
// full one.
type Explorer struct {
	view     *mandel.Viewport
	initial  *mandel.Viewport
	renderer *mandel.Renderer

	cols, rows int
	gen        int
	frame      string
	coarse     bool
	busy       bool
	elapsed    time.Duration
	err        error
}

func NewExplorer(r *mandel.Renderer, v *mandel.Viewport) *Explorer {
	return &Explorer{
		view:     v.Clone(),
		initial:  v.Clone(),
		renderer: r,
		cols:     80,
		rows:     24 - chromeRows,
	}
}

// Viewport returns a copy of the current view.
func (m *Explorer) Viewport() *mandel.Viewport {
	return m.view.Clone()
}

func (m *Explorer) Init() tea.Cmd {
	return m.refresh()
}

func (m *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-chromeRows, 1)
		return m, m.refresh()
	case frameMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.frame, m.coarse, m.elapsed, m.err = msg.out, msg.coarse, msg.elapsed, msg.err
		if msg.coarse && msg.err == nil {
			return m, m.render(false)
		}
		m.busy = false
	}
	return m, nil
}

func (m *Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.view
	w, h := float64(m.cols), float64(m.rows*2)

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		v.Pan(-float64(v.Width)/panStep, 0)
	case "right", "l":
		v.Pan(float64(v.Width)/panStep, 0)
	case "up", "k":
		v.Pan(0, -float64(v.Height)/panStep)
	case "down", "j":
		v.Pan(0, float64(v.Height)/panStep)
	case "+", "=":
		m.zoom(w/2, h/2, 0.5)
	case "-", "_":
		m.zoom(w/2, h/2, 2)
	case "m":
		if v.Rendering == mandel.Smooth {
			v.Rendering = mandel.Fast
		} else {
			v.Rendering = mandel.Smooth
		}
	case "c":
		if v.Coloring == palette.PaletteMode {
			v.Coloring = palette.ProceduralMode
		} else {
			v.Coloring = palette.PaletteMode
		}
	case "p":
		v.CyclePalette()
	case "i":
		v.MaxIterations *= 2
	case "I":
		v.MaxIterations = max(v.MaxIterations/2, 1)
	case "r":
		m.view = m.initial.Clone()
	default:
		return m, nil
	}
	return m, m.refresh()
}

// zoom applies a zoom at a point of the character grid, which samples the
// same plane extent as the full viewport.
func (m *Explorer) zoom(x, y, factor float64) {
	v := m.view
	sx := x * float64(v.Width) / float64(m.cols)
	sy := y * float64(v.Height) / float64(m.rows*2)
	v.ZoomAt(sx, sy, factor)
}

func (m *Explorer) refresh() tea.Cmd {
	m.gen++
	m.busy = true
	return m.render(true)
}

// render snapshots the viewport so the command never races with Update.
func (m *Explorer) render(coarse bool) tea.Cmd {
	v := m.view.Clone()
	if coarse {
		v.MaxIterations = max(v.MaxIterations/coarseDivisor, min(minCoarse, v.MaxIterations))
	}
	gen, cols, rows, r := m.gen, m.cols, m.rows, m.renderer
	return func() tea.Msg {
		start := time.Now()
		out, err := Preview(r, v, cols, rows)
		return frameMsg{gen: gen, coarse: coarse, out: out, elapsed: time.Since(start), err: err}
	}
}

func (m *Explorer) View() string {
	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteByte('\n')
	b.WriteString(m.status())
	b.WriteByte('\n')
	b.WriteString(Keys("hjkl", "pan", "+/-", "zoom", "m", "mode", "c", "color", "p", "palette", "i/I", "iter", "r", "reset", "q", "quit"))
	return b.String()
}

func (m *Explorer) status() string {
	v := m.view
	state := StatusReady.Render("ready")
	switch {
	case m.err != nil:
		state = StatusError.Render(m.err.Error())
	case m.busy && m.coarse:
		state = StatusBusy.Render("refining")
	case m.busy:
		state = StatusBusy.Render("rendering")
	}

	name := "-"
	if g := v.Gradient(); g != nil {
		name = g.Name
	}
	return fmt.Sprintf("%s %s %s %s %s %s",
		state,
		MetricLabel.Render("at")+MetricValue.Render(fmt.Sprintf(" %.10g%+.10gi", v.Position.X, v.Position.Y)),
		MetricLabel.Render("zoom")+MetricValue.Render(fmt.Sprintf(" %.3g", v.Zoom.Y)),
		MetricLabel.Render("iter")+MetricValue.Render(fmt.Sprintf(" %d", v.MaxIterations)),
		MetricLabel.Render(v.Rendering.String()+"/"+v.Coloring.String()+"/"+name),
		Subtle.Render(m.elapsed.Round(time.Millisecond).String()),
	)
}

func RunExplorer(r *mandel.Renderer, v *mandel.Viewport) error {
	_, err := tea.NewProgram(NewExplorer(r, v), tea.WithAltScreen()).Run()
	return err
}
