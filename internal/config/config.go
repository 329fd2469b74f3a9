package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelbrot/internal/compute"
	"github.com/san-kum/mandelbrot/internal/geom"
	"github.com/san-kum/mandelbrot/internal/mandel"
	"github.com/san-kum/mandelbrot/internal/palette"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrUnknownKernel = errors.New("config: unknown kernel")
)

const DefaultKernel = "auto"

// Config is the on-disk form of a mandel.Viewport plus front-end settings.
type Config struct {
	Width         int                  `yaml:"width"`
	Height        int                  `yaml:"height"`
	Position      geom.Vector[float64] `yaml:"position"`
	Zoom          geom.Vector[float64] `yaml:"zoom"`
	MaxIterations int                  `yaml:"max_iterations"`
	Bailout       float64              `yaml:"bailout"`
	PeriodLength  int                  `yaml:"period_length"`
	Rendering     string               `yaml:"rendering"`
	Coloring      string               `yaml:"coloring"`
	Exponent      float64              `yaml:"exponent"`
	BlockSize     int                  `yaml:"block_size"`
	Palette       string               `yaml:"palette"`
	Palettes      []PaletteConfig      `yaml:"palettes"`
	Kernel        string               `yaml:"kernel"`
	Supersample   int                  `yaml:"supersample"`
}

type PaletteConfig struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

func DefaultConfig() *Config {
	cfg := FromViewport(mandel.DefaultViewport())
	cfg.Kernel = DefaultKernel
	cfg.Supersample = 1
	return cfg
}

// FromViewport captures every field of v. Front-end settings keep their
// zero values.
func FromViewport(v *mandel.Viewport) *Config {
	cfg := &Config{
		Width:         v.Width,
		Height:        v.Height,
		Position:      v.Position,
		Zoom:          v.Zoom,
		MaxIterations: v.MaxIterations,
		Bailout:       v.Bailout,
		PeriodLength:  v.PeriodLength,
		Rendering:     v.Rendering.String(),
		Coloring:      v.Coloring.String(),
		Exponent:      v.Exponent,
		BlockSize:     v.BlockSize,
	}
	for _, g := range v.Palettes {
		if g == nil {
			continue
		}
		cfg.Palettes = append(cfg.Palettes, PaletteConfig{Name: g.Name, Colors: g.Stops()})
	}
	if g := v.Gradient(); g != nil {
		cfg.Palette = g.Name
	}
	return cfg
}

// Viewport builds the render state described by c. An empty Palette selects
// the first entry.
func (c *Config) Viewport() (*mandel.Viewport, error) {
	rendering, err := mandel.ParseRenderingMode(c.Rendering)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	coloring, err := palette.ParseMode(c.Coloring)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v := &mandel.Viewport{
		Position:      c.Position,
		Zoom:          c.Zoom,
		Width:         c.Width,
		Height:        c.Height,
		MaxIterations: c.MaxIterations,
		Bailout:       c.Bailout,
		PeriodLength:  c.PeriodLength,
		Rendering:     rendering,
		Coloring:      coloring,
		Exponent:      c.Exponent,
		BlockSize:     c.BlockSize,
	}
	for _, p := range c.Palettes {
		g, err := palette.NewNamedGradient(p.Name, p.Colors...)
		if err != nil {
			return nil, fmt.Errorf("config: palette %q: %w", p.Name, err)
		}
		v.Palettes = append(v.Palettes, g)
	}
	if c.Palette != "" {
		if err := v.SelectPalette(c.Palette); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return v, nil
}

// ComputeKernel resolves the Kernel setting.
func (c *Config) ComputeKernel() (compute.Kernel, error) {
	k, ok := compute.Lookup(c.Kernel)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, c.Kernel)
	}
	return k, nil
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
