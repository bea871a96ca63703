package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/layerblend"
)

func writeSolid(t *testing.T, dir, name string, w, h int, hex string) string {
	t.Helper()
	c, err := layerblend.ParseColor(hex)
	if err != nil {
		t.Fatal(err)
	}
	r, err := layerblend.Solid(w, h, c)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := r.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunMultiply(t *testing.T) {
	t.Cleanup(func() { layerblend.SetLogger(nil) })

	dir := t.TempDir()
	top := writeSolid(t, dir, "top.png", 4, 3, "#ffffff")
	bottom := writeSolid(t, dir, "bottom.png", 4, 3, "#6496c8")
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	err := run([]string{"-mode", "multiply", "-workers", "2", "-probe", "1,1", "-o", out, top, bottom}, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v\n%s", err, stderr.String())
	}

	got, err := layerblend.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if hex := layerblend.PixelColor(got, 3, 2).Hex(); hex != "#6496c8ff" {
		t.Errorf("output pixel = %s, want #6496c8ff", hex)
	}
	if !strings.Contains(stderr.String(), "color=#6496c8ff") {
		t.Errorf("probe not logged:\n%s", stderr.String())
	}
}

func TestRunFillAndFit(t *testing.T) {
	t.Cleanup(func() { layerblend.SetLogger(nil) })

	dir := t.TempDir()
	small := writeSolid(t, dir, "small.png", 2, 2, "#000000")
	big := writeSolid(t, dir, "big.png", 8, 6, "#00000000")
	out := filepath.Join(dir, "out.bmp")

	var stderr bytes.Buffer
	err := run([]string{"-mode", "screen", "-fit", "-fill", "#204060", "-v", "-o", out, small, big}, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v\n%s", err, stderr.String())
	}

	got, err := layerblend.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 8 || got.Height() != 6 {
		t.Errorf("output size = %v, want 8x6", got)
	}
	if !strings.Contains(stderr.String(), "fold step") {
		t.Errorf("-v should enable debug logging:\n%s", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(func() { layerblend.SetLogger(nil) })

	dir := t.TempDir()
	one := writeSolid(t, dir, "one.png", 1, 1, "#123456")

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"single layer", []string{one}, layerblend.ErrInsufficientLayers},
		{"no layers", nil, layerblend.ErrInsufficientLayers},
		{"fill without layers", []string{"-fill", "#fff"}, layerblend.ErrInsufficientLayers},
		{"bad output", []string{"-o", filepath.Join(dir, "x.xyz"), one, one}, layerblend.ErrUnsupportedFormat},
		{"missing file", []string{one, filepath.Join(dir, "missing.png")}, nil},
		{"bad mode", []string{"-mode", "overlay", one, one}, nil},
		{"bad fill", []string{"-fill", "teal", one}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			err := run(tt.args, &stderr)
			if err == nil {
				t.Fatal("run() succeeded, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestRunInvalidProbeWritesNothing(t *testing.T) {
	t.Cleanup(func() { layerblend.SetLogger(nil) })

	dir := t.TempDir()
	layer := writeSolid(t, dir, "layer.png", 3, 2, "#123456")

	tests := []struct {
		name  string
		probe string
		is    error
	}{
		{"malformed", "3", nil},
		{"not a number", "x,1", nil},
		{"outside width", "3,0", errProbeOutside},
		{"outside height", "0,2", errProbeOutside},
		{"negative", "-1,0", errProbeOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, "out-"+strings.ReplaceAll(tt.name, " ", "-")+".png")

			var stderr bytes.Buffer
			err := run([]string{"-probe", tt.probe, "-o", out, layer, layer}, &stderr)
			if err == nil {
				t.Fatal("run() succeeded, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
			if _, statErr := os.Stat(out); !errors.Is(statErr, fs.ErrNotExist) {
				t.Errorf("output %s was written (stat err = %v)", out, statErr)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint(" 3, 4")
	if err != nil || x != 3 || y != 4 {
		t.Errorf("parsePoint = %d, %d, %v", x, y, err)
	}
	if _, _, err := parsePoint("a,1"); err == nil {
		t.Error("parsePoint(a,1) should fail")
	}
	if _, _, err := parsePoint("1,b"); err == nil {
		t.Error("parsePoint(1,b) should fail")
	}
}
