package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Format is an encoded image file format.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota
	// FormatJPEG is baseline JPEG. Alpha is discarded.
	FormatJPEG
	// FormatBMP is Windows bitmap.
	FormatBMP
	// FormatTIFF is uncompressed TIFF.
	FormatTIFF
)

// DefaultJPEGQuality is used by Encode for FormatJPEG.
const DefaultJPEGQuality = 90

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks an output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load decodes the image file at path, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Load(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an image from a byte slice, auto-detecting the format.
func LoadBytes(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format, and converts it
// to non-premultiplied RGBA8.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage converts a standard library image to an RGBA8 raster.
// The result does not share memory with img.
func FromStdImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	out, err := NewRaster(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path: same channel layout, copy rows.
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowLen := out.width * BytesPerPixel
		for y := range out.height {
			src := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.data[y*rowLen:(y+1)*rowLen], nrgba.Pix[src:src+rowLen])
		}
		return out, nil
	}

	// Generic path: let the color model undo premultiplication.
	for y := range out.height {
		for x := range out.width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			off := (y*out.width + x) * BytesPerPixel
			out.data[off] = c.R
			out.data[off+1] = c.G
			out.data[off+2] = c.B
			out.data[off+3] = c.A
		}
	}
	return out, nil
}

// ToStdImage returns a copy of r as a non-premultiplied *image.NRGBA.
func (r *Raster) ToStdImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.data)
	return img
}

// Encode writes r to w in the given format.
func (r *Raster) Encode(w io.Writer, format Format) error {
	img := r.ToStdImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", format, err)
	}
	return nil
}

// Save writes r to path, choosing the format from the file extension.
func (r *Raster) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := r.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodeToBytes encodes r in the given format and returns the bytes.
func (r *Raster) EncodeToBytes(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
