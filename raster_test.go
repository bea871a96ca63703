package layerblend

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewRasterFromRGBA(t *testing.T) {
	if _, err := NewRasterFromRGBA(make([]byte, 7), 1, 2); !errors.Is(err, ErrInvalidImageBuffer) {
		t.Errorf("short buffer err = %v, want ErrInvalidImageBuffer", err)
	}
	if _, err := NewRasterFromRGBA(nil, 0, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero size err = %v, want ErrInvalidDimensions", err)
	}
	r, err := NewRasterFromRGBA([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 2, 1)
	if err != nil {
		t.Fatalf("NewRasterFromRGBA() error = %v", err)
	}
	if got := pixel(r, 1, 0); got != [4]byte{5, 6, 7, 8} {
		t.Errorf("pixel = %v", got)
	}
}

func TestSolidAndColors(t *testing.T) {
	c, err := ParseColor("#336699")
	if err != nil {
		t.Fatalf("ParseColor() error = %v", err)
	}
	r, err := Solid(3, 2, c)
	if err != nil {
		t.Fatalf("Solid() error = %v", err)
	}
	if got := pixel(r, 2, 1); got != [4]byte{0x33, 0x66, 0x99, 0xff} {
		t.Errorf("pixel = %v", got)
	}
	if got := PixelColor(r, 0, 0).Hex(); got != "#336699ff" {
		t.Errorf("PixelColor().Hex() = %q", got)
	}
	if got := RGBA(255, 0, 0, 255).Hex(); got != "#ff0000ff" {
		t.Errorf("RGBA(bytes).Hex() = %q", got)
	}
	if got := RGBA(0, 1, 0, 1).Hex(); got != "#00ff00ff" {
		t.Errorf("RGBA(unit).Hex() = %q", got)
	}
	if _, err := Solid(0, 1, c); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Solid(0, 1) err = %v", err)
	}
	if _, err := ParseColor("blue"); err == nil {
		t.Error("ParseColor(blue) should fail")
	}
}

func TestSaveLoadBlend(t *testing.T) {
	dir := t.TempDir()
	top := solidRaster(t, 4, 4, 255, 255, 255, 255)
	bottom := gradient(t, 4, 4, 3)
	for i := 3; i < bottom.Len(); i += 4 {
		bottom.Data()[i] = 255
	}

	topPath := filepath.Join(dir, "top.png")
	bottomPath := filepath.Join(dir, "bottom.tiff")
	if err := top.Save(topPath); err != nil {
		t.Fatal(err)
	}
	if err := bottom.Save(bottomPath); err != nil {
		t.Fatal(err)
	}

	l0, err := Load(topPath)
	if err != nil {
		t.Fatal(err)
	}
	l1, err := Load(bottomPath)
	if err != nil {
		t.Fatal(err)
	}

	out, err := BlendLayers(ModeMultiply, l0, l1)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range out.Data() {
		if b != bottom.Data()[i] {
			t.Fatalf("byte %d = %d, want %d (white multiply is identity)", i, b, bottom.Data()[i])
		}
	}

	if err := out.Save(filepath.Join(dir, "out.xyz")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestResizeBeforeBlend(t *testing.T) {
	small := solidRaster(t, 2, 2, 0, 0, 0, 255)
	big := solidRaster(t, 6, 4, 120, 130, 140, 255)

	fitted, err := Resize(small, big.Width(), big.Height())
	if err != nil {
		t.Fatal(err)
	}
	out := Screen(fitted, big)
	if got := pixel(out, 5, 3); got != [4]byte{120, 130, 140, 255} {
		t.Errorf("last pixel = %v, want background (black screen is identity)", got)
	}
}
