package palette

import "fmt"

const DefaultName = "default"

var presetStops = map[string][]string{
	"default": {"#3e0000", "#6b1d09", "#9a542e", "#bf935c", "#d0c8a8"},
	"ultra":   {"#000764", "#206bcb", "#edffff", "#ffaa00", "#000200"},
	"ocean":   {"#001219", "#005f73", "#0a9396", "#94d2bd", "#e9d8a6"},
	"fire":    {"#000000", "#7f0000", "#ff4500", "#ffa500", "#ffff99"},
	"mono":    {"#000000", "#ffffff"},
	"viridis": {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
}

// presetOrder fixes the index of each preset in Presets.
var presetOrder = []string{"default", "ultra", "ocean", "fire", "mono", "viridis"}

func Preset(name string) (*Gradient, error) {
	stops, ok := presetStops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return NewNamedGradient(name, stops...)
}

func DefaultGradient() *Gradient {
	return MustGradient(DefaultName, presetStops[DefaultName]...)
}

// Presets builds every preset gradient, default first.
func Presets() []*Gradient {
	out := make([]*Gradient, 0, len(presetOrder))
	for _, name := range presetOrder {
		out = append(out, MustGradient(name, presetStops[name]...))
	}
	return out
}

func Names() []string {
	return append([]string(nil), presetOrder...)
}
