package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/mandelbrot/internal/geom"
)

// Location is a named place in the plane. Scale is the vertical half
// extent; the horizontal one follows the aspect ratio of the output.
type Location struct {
	Description   string
	Position      geom.Vector[float64]
	Scale         float64
	MaxIterations int
}

var Presets = map[string]Location{
	"full": {
		Description: "whole set",
		Position:    geom.NewVector(-0.5, 0.0), Scale: 1.125, MaxIterations: 1000,
	},
	"seahorse": {
		Description: "Seahorse Valley, dense filaments and repeating curls",
		Position:    geom.NewVector(-0.75, 0.10), Scale: 0.05, MaxIterations: 2000,
	},
	"elephant": {
		Description: "large bulb with trunk-like tendrils",
		Position:    geom.NewVector(-1.80, -0.06), Scale: 0.04, MaxIterations: 2000,
	},
	"spiral": {
		Description: "small copy of the set with tight spiral arms",
		Position:    geom.NewVector(-0.74275, 0.13175), Scale: 0.00075, MaxIterations: 3000,
	},
	"triple": {
		Description: "threefold symmetric spiral",
		Position:    geom.NewVector(-0.7465, 0.0965), Scale: 0.0015, MaxIterations: 3000,
	},
	"dragon": {
		Description: "Valley of the Dragon, deep spiral filaments",
		Position:    geom.NewVector(-0.7375, 0.1825), Scale: 0.0025, MaxIterations: 3000,
	},
	"minibrot": {
		Description: "minibrot inside a spiral arm",
		Position:    geom.NewVector(-1.73825, -0.02275), Scale: 0.00075, MaxIterations: 3000,
	},
}

func GetPreset(name string) (Location, error) {
	loc, ok := Presets[name]
	if !ok {
		return Location{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return loc, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply moves cfg to the location, keeping the output aspect ratio.
func (l Location) Apply(cfg *Config) {
	aspect := 1.0
	if cfg.Height > 0 {
		aspect = float64(cfg.Width) / float64(cfg.Height)
	}
	cfg.Position = l.Position
	cfg.Zoom = geom.NewVector(l.Scale*aspect, l.Scale)
	if l.MaxIterations > 0 {
		cfg.MaxIterations = l.MaxIterations
	}
}
