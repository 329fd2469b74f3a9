package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/mandelbrot/internal/compute"
	"github.com/san-kum/mandelbrot/internal/config"
	"github.com/san-kum/mandelbrot/internal/export"
	"github.com/san-kum/mandelbrot/internal/geom"
	"github.com/san-kum/mandelbrot/internal/gui"
	"github.com/san-kum/mandelbrot/internal/mandel"
	"github.com/san-kum/mandelbrot/internal/palette"
	"github.com/san-kum/mandelbrot/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	width       int
	height      int
	iterations  int
	centerX     float64
	centerY     float64
	scale       float64
	rendering   string
	coloring    string
	paletteName string
	kernelName  string
	supersample int

	cols    int
	rows    int
	buckets int
	mask    bool
	runs    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mandelbrot",
		Short:         "mandelbrot set renderer and explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runExplore,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start at a named location")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	addViewFlags(rootCmd)

	renderCmd := &cobra.Command{
		Use:   "render [output.png]",
		Short: "render to a PNG file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addViewFlags(renderCmd)
	renderCmd.Flags().IntVar(&supersample, "supersample", 1, "samples per pixel on each axis")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "print a truecolor preview to the terminal",
		RunE:  runPreview,
	}
	addViewFlags(previewCmd)
	previewCmd.Flags().IntVar(&cols, "cols", 80, "preview columns")
	previewCmd.Flags().IntVar(&rows, "rows", 24, "preview rows")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive terminal explorer",
		RunE:  runExplore,
	}
	addViewFlags(exploreCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "interactive desktop viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, v, _, err := setup(cmd)
			if err != nil {
				return err
			}
			return gui.Run(r, v)
		},
	}
	addViewFlags(guiCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "escape count statistics and histogram",
		RunE:  runStats,
	}
	addViewFlags(statsCmd)
	statsCmd.Flags().IntVar(&buckets, "buckets", 64, "histogram buckets")
	statsCmd.Flags().BoolVar(&mask, "mask", false, "also print the set as braille dots")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time both rendering modes on every kernel",
		RunE:  runBench,
	}
	addViewFlags(benchCmd)
	benchCmd.Flags().IntVar(&runs, "runs", 5, "frames per mode")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCENTER\tSCALE\tITER\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				loc, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g%+gi\t%g\t%d\t%s\n",
					name, loc.Position.X, loc.Position.Y, loc.Scale, loc.MaxIterations, loc.Description)
			}
			return w.Flush()
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list built-in palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, g := range palette.Presets() {
				fmt.Printf("%-8s %s  %s\n", g.Name, viz.Swatch(g, 32), strings.Join(g.Stops(), " "))
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := "mandelbrot.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	addViewFlags(configCmd)

	rootCmd.AddCommand(renderCmd, previewCmd, exploreCmd, guiCmd, statsCmd, benchCmd, presetsCmd, palettesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	def := mandel.DefaultViewport()
	f := cmd.Flags()
	f.IntVar(&width, "width", def.Width, "width in pixels")
	f.IntVar(&height, "height", def.Height, "height in pixels")
	f.IntVar(&iterations, "iter", def.MaxIterations, "maximum iterations")
	f.Float64Var(&centerX, "x", def.Position.X, "center, real part")
	f.Float64Var(&centerY, "y", def.Position.Y, "center, imaginary part")
	f.Float64Var(&scale, "scale", def.Zoom.Y, "vertical half extent")
	f.StringVar(&rendering, "mode", def.Rendering.String(), "rendering mode (smooth, fast)")
	f.StringVar(&coloring, "coloring", def.Coloring.String(), "coloring mode (palette, procedural)")
	f.StringVar(&paletteName, "palette", "", "palette name")
	f.StringVar(&kernelName, "kernel", config.DefaultKernel, "compute kernel (auto, portable, vectorized)")
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	mandel.SetLogger(slog.New(h))
}

// loadConfig layers defaults, the config file, the preset and finally the
// flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = width
	}
	if f.Changed("height") {
		cfg.Height = height
	}
	if (f.Changed("width") || f.Changed("height")) && cfg.Height > 0 {
		cfg.Zoom.X = cfg.Zoom.Y * float64(cfg.Width) / float64(cfg.Height)
	}

	if preset != "" {
		loc, err := config.GetPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
		loc.Apply(cfg)
	}

	if f.Changed("x") {
		cfg.Position.X = centerX
	}
	if f.Changed("y") {
		cfg.Position.Y = centerY
	}
	if f.Changed("scale") {
		aspect := 1.0
		if cfg.Height > 0 {
			aspect = float64(cfg.Width) / float64(cfg.Height)
		}
		cfg.Zoom = geom.NewVector(scale*aspect, scale)
	}
	if f.Changed("iter") {
		cfg.MaxIterations = iterations
	}
	if f.Changed("mode") {
		cfg.Rendering = rendering
	}
	if f.Changed("coloring") {
		cfg.Coloring = coloring
	}
	if f.Changed("palette") {
		cfg.Palette = paletteName
	}
	if f.Changed("kernel") {
		cfg.Kernel = kernelName
	}
	if f.Changed("supersample") {
		cfg.Supersample = supersample
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*mandel.Renderer, *mandel.Viewport, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	v, err := cfg.Viewport()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, nil, nil, err
	}
	k, err := cfg.ComputeKernel()
	if err != nil {
		return nil, nil, nil, err
	}
	mandel.Logger().Debug("setup", "kernel", k.Name(), "width", v.Width, "height", v.Height, "iter", v.MaxIterations)
	return mandel.NewRenderer(k), v, cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	r, v, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	path := "mandelbrot.png"
	if len(args) > 0 {
		path = args[0]
	}

	start := time.Now()
	img, err := export.Render(r, v, cfg.Supersample)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if err := export.SavePNG(path, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, %s, %s)\n", path, v.Width, v.Height, v.Rendering, elapsed.Round(time.Millisecond))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	r, v, _, err := setup(cmd)
	if err != nil {
		return err
	}
	out, err := viz.Preview(r, v, cols, rows)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	r, v, _, err := setup(cmd)
	if err != nil {
		return err
	}
	return viz.RunExplorer(r, v)
}

func runStats(cmd *cobra.Command, args []string) error {
	r, v, _, err := setup(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	field, err := r.Field(v)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(viz.Summary(field, elapsed))
	fmt.Println()
	fmt.Println(viz.HistogramChart(field.Histogram(buckets), 70, 12, viz.HistogramCaption(field.Rendering)))
	if mask {
		fmt.Println()
		fmt.Println(viz.MaskCanvas(field).String())
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	_, v, _, err := setup(cmd)
	if err != nil {
		return err
	}
	runs = max(runs, 1)
	pix := make([]byte, v.Width*v.Height*4)
	mpix := float64(v.Width*v.Height) / 1e6

	fmt.Printf("benchmarking %dx%d, %d iterations, %d runs\n\n", v.Width, v.Height, v.MaxIterations, runs)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KERNEL\tMODE\tAVG\tMPIX/SEC\tEVALUATED")

	kernels := []compute.Kernel{compute.NewPortableKernel(), compute.NewVectorizedKernel()}
	for _, k := range kernels {
		if !k.Available() {
			continue
		}
		r := mandel.NewRenderer(k)
		for _, mode := range []mandel.RenderingMode{mandel.Smooth, mandel.Fast} {
			view := v.Clone()
			view.Rendering = mode

			start := time.Now()
			for range runs {
				if err := r.Render(view, pix); err != nil {
					return err
				}
			}
			avg := time.Since(start) / time.Duration(runs)

			field, err := r.Field(view)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.1f%%\n",
				k.Name(), mode, avg.Round(time.Microsecond), mpix/avg.Seconds(),
				100*float64(field.Evaluated)/float64(v.Width*v.Height))
		}
	}
	return w.Flush()
}
