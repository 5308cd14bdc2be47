package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/df07/weekend-raytracer/pkg/config"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/output"
	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/df07/weekend-raytracer/pkg/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	opts, err := parseFlags(os.Args[1:], cfg, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if opts.list {
		if err := printScenes(os.Stdout, cfg.ScenesDir); err != nil {
			fmt.Fprintf(os.Stderr, "list scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := run(ctx, cfg, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	list bool
}

// parseFlags overlays command line flags onto the environment configuration
func parseFlags(args []string, cfg *config.Config, out io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "Built-in scene name or path to a .json scene file")
	fs.StringVar(&cfg.ScenesDir, "scenes-dir", cfg.ScenesDir, "Directory searched by -list for .json scene files")
	fs.StringVar(&cfg.Integrator, "integrator", cfg.Integrator, "Shading: 'path' (path tracing) or 'normals' (surface normals); empty uses the scene's choice")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels; height follows the camera aspect ratio (0 = scene default)")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Rows rendered in parallel (0 = number of CPUs)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; equal seeds give identical images")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output file (.png, .ppm, .bmp or .tiff); default output/<scene>/render_<timestamp>_<id>.png")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")

	fs.Usage = func() {
		fmt.Fprintln(out, "Weekend Raytracer")
		fmt.Fprintln(out, "Usage: raytracer [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Every option can also be set through the environment as %s_<NAME>, e.g. %s_SAMPLES=50.\n", config.Prefix, config.Prefix)
	}

	return opts, fs.Parse(args)
}

// printScenes writes one line per built-in scene and scene file
func printScenes(w io.Writer, scenesDir string) error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, s := range scenes {
		fmt.Fprintf(w, "  %-28s %s\n", s.ID, s.Description)
	}
	return nil
}

// run renders the configured scene and writes it to disk, returning the output path
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (string, error) {
	runID := uuid.New().String()[:8]
	logger = logger.With("run", runID)

	s, err := createScene(cfg)
	if err != nil {
		return "", err
	}
	integ, err := createIntegrator(cfg.Integrator)
	if err != nil {
		return "", err
	}

	rt := s.Raytracer(integ)
	sampling := rt.Config()
	logger.Info("starting render",
		"scene", cfg.Scene,
		"integrator", fmt.Sprintf("%T", rt.Integrator()),
		"width", sampling.Width,
		"height", sampling.Height,
		"spp", sampling.SamplesPerPixel,
		"depth", sampling.MaxDepth,
		"workers", cfg.Workers,
		"seed", cfg.Seed,
	)

	frame, err := renderer.RenderFrame(ctx, rt, renderer.FrameOptions{
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		OnRow:   progressReporter(logger, sampling.Height),
	})
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	stats := frame.Stats
	logger.Info("render completed",
		"elapsed", stats.Elapsed.Round(time.Millisecond),
		"samples", stats.TotalSamples,
		"samples_per_sec", int64(stats.SamplesPerSecond()),
		"workers", stats.Workers,
	)

	path := outputPath(cfg, runID, time.Now())
	if err := output.WriteFile(path, frame); err != nil {
		return "", err
	}
	logger.Info("render saved", "path", path)
	return path, nil
}

// createScene loads the configured scene and applies the image overrides
func createScene(cfg *config.Config) (*scene.Scene, error) {
	if cfg.Scene == "" {
		return nil, fmt.Errorf("no scene given")
	}
	s, err := scene.Load(cfg.Scene, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return s.WithSampling(renderer.SamplingConfig{
		Width:           cfg.Width,
		SamplesPerPixel: cfg.Samples,
		MaxDepth:        cfg.Depth,
	}), nil
}

// createIntegrator returns nil for an empty name so the scene chooses
func createIntegrator(name string) (integrator.Integrator, error) {
	if name == "" {
		return nil, nil
	}
	return integrator.New(name)
}

// outputPath returns the configured output file or a timestamped default
// under output/<scene>/
func outputPath(cfg *config.Config, runID string, now time.Time) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	name := strings.TrimSuffix(filepath.Base(cfg.Scene), filepath.Ext(cfg.Scene))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s_%s.png", timestamp, runID))
}

// progressReporter logs the remaining scanlines each time another tenth of
// the image is finished
func progressReporter(logger *slog.Logger, height int) func(done int) {
	step := max(1, height/10)
	return func(done int) {
		if done%step != 0 && done != height {
			return
		}
		logger.Info("progress", "scanlines_remaining", height-done, "percent", 100*done/max(1, height))
	}
}
