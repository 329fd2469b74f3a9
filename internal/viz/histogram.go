package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mandelbrot/internal/mandel"
)

// HistogramChart plots the escaped pixel counts of h.
func HistogramChart(h mandel.Histogram, width, height int, caption string) string {
	series := h.Series()
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// HistogramCaption names the values a histogram of a field rendered in mode
// holds.
func HistogramCaption(mode mandel.RenderingMode) string {
	if mode == mandel.Smooth {
		return "escaped pixels by smooth count"
	}
	return "escaped pixels by iteration count"
}

// Summary describes a rendered field in a few styled lines.
func Summary(f *mandel.Field, elapsed time.Duration) string {
	total := f.Width * f.Height
	bounded := f.BoundedCount()

	var minV, maxV, sum float64
	escaped := 0
	for i, v := range f.Values {
		if f.Bounded[i] {
			continue
		}
		if escaped == 0 || v < minV {
			minV = v
		}
		if escaped == 0 || v > maxV {
			maxV = v
		}
		sum += v
		escaped++
	}
	mean := 0.0
	if escaped > 0 {
		mean = sum / float64(escaped)
	}

	rows := [][2]string{
		{"resolution", fmt.Sprintf("%dx%d", f.Width, f.Height)},
		{"mode", f.Rendering.String()},
		{"bounded", fmt.Sprintf("%d (%.1f%%)", bounded, 100*float64(bounded)/float64(max(total, 1)))},
		{"escape", fmt.Sprintf("min %.2f  mean %.2f  max %.2f", minV, mean, maxV)},
		{"evaluated", fmt.Sprintf("%d (%.1f%%)", f.Evaluated, 100*float64(f.Evaluated)/float64(max(total, 1)))},
		{"elapsed", elapsed.Round(time.Microsecond).String()},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(MetricLabel.Render(fmt.Sprintf("%-11s", r[0])))
		b.WriteString(MetricValue.Render(r[1]))
		b.WriteByte('\n')
	}
	return b.String()
}
