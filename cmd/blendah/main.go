// Command blendah composites image layers with a blend mode.
//
// Usage:
//
//	blendah [flags] top.png [middle.png ...] bottom.png
//
// Layers are listed top to bottom. The first two are blended (the first as
// foreground) and each following layer is blended as the foreground over the
// running result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/layerblend"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("blendah failed", slog.Any("err", err))
		}
		os.Exit(1)
	}
}

// errProbeOutside is returned when -probe names a pixel outside the output.
var errProbeOutside = errors.New("probe point outside the output")

// point is a pixel coordinate given on the command line.
type point struct {
	x, y int
}

type config struct {
	mode    layerblend.Mode
	output  string
	workers int
	fit     bool
	fill    string
	probe   *point
	verbose bool
	layers  []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("blendah", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.TextVar(&cfg.mode, "mode", layerblend.ModeAlpha,
		"blend mode: additive, multiply, screen, difference or alpha")
	fs.StringVar(&cfg.output, "o", "blended.png", "output file (.png, .jpg, .bmp, .tif)")
	fs.IntVar(&cfg.workers, "workers", 1, "split each blend pass across this many goroutines")
	fs.BoolVar(&cfg.fit, "fit", false, "resample every layer to the size of the bottom layer")
	fs.StringVar(&cfg.fill, "fill", "", "add a solid bottom layer of this color (#rrggbb or #rrggbbaa)")
	fs.Func("probe", "log the output color at x,y", func(s string) error {
		x, y, err := parsePoint(s)
		if err != nil {
			return err
		}
		cfg.probe = &point{x: x, y: y}
		return nil
	})
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: blendah [flags] top [more layers...] bottom\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.layers = fs.Args()
	return cfg, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	layerblend.SetLogger(log)

	layers, err := loadLayers(cfg)
	if err != nil {
		return err
	}

	c := layerblend.NewCompositor(layerblend.WithWorkers(cfg.workers), layerblend.WithBufferPool(2))
	defer c.Close()

	out, err := c.BlendLayers(cfg.mode, layers...)
	if err != nil {
		return err
	}
	if p := cfg.probe; p != nil && out.PixelOffset(p.x, p.y) < 0 {
		return fmt.Errorf("%w: %d,%d not in %dx%d", errProbeOutside, p.x, p.y, out.Width(), out.Height())
	}
	if err := out.Save(cfg.output); err != nil {
		return err
	}

	log.Info("blended",
		slog.String("mode", cfg.mode.String()),
		slog.Int("layers", len(layers)),
		slog.String("output", cfg.output),
		slog.Int("width", out.Width()),
		slog.Int("height", out.Height()))

	if p := cfg.probe; p != nil {
		log.Info("probe", slog.Int("x", p.x), slog.Int("y", p.y),
			slog.String("color", layerblend.PixelColor(out, p.x, p.y).Hex()))
	}
	return nil
}

func loadLayers(cfg *config) ([]*layerblend.Raster, error) {
	layers := make([]*layerblend.Raster, 0, len(cfg.layers)+1)
	for _, path := range cfg.layers {
		l, err := layerblend.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		layers = append(layers, l)
	}

	if cfg.fill != "" {
		c, err := layerblend.ParseColor(cfg.fill)
		if err != nil {
			return nil, fmt.Errorf("-fill: %w", err)
		}
		if len(layers) == 0 {
			return nil, fmt.Errorf("-fill needs at least one image layer: %w", layerblend.ErrInsufficientLayers)
		}
		bottom := layers[len(layers)-1]
		solid, err := layerblend.Solid(bottom.Width(), bottom.Height(), c)
		if err != nil {
			return nil, err
		}
		layers = append(layers, solid)
	}

	if cfg.fit && len(layers) > 0 {
		bottom := layers[len(layers)-1]
		for i, l := range layers[:len(layers)-1] {
			fitted, err := layerblend.Resize(l, bottom.Width(), bottom.Height())
			if err != nil {
				return nil, fmt.Errorf("fit layer %d: %w", i, err)
			}
			layers[i] = fitted
		}
	}
	return layers, nil
}

func parsePoint(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("y: %w", err)
	}
	return x, y, nil
}
