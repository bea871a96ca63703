package layerblend

import (
	"errors"

	"github.com/gogpu/layerblend/internal/blend"
	"github.com/gogpu/layerblend/internal/image"
	"github.com/gogpu/layerblend/internal/vec"
)

// Errors returned by layerblend. Test with errors.Is; returned errors wrap
// these with context.
var (
	// ErrInsufficientLayers is returned when fewer than two layers are blended.
	ErrInsufficientLayers = blend.ErrInsufficientLayers

	// ErrNilLayer is returned when a layer queue holds a nil raster.
	ErrNilLayer = blend.ErrNilLayer

	// ErrDimensionMismatch is returned by Vector operations on unequal lengths.
	ErrDimensionMismatch = vec.ErrDimensionMismatch

	// ErrInvalidImageBuffer is returned when a pixel buffer's length is not
	// width*height*4.
	ErrInvalidImageBuffer = image.ErrInvalidBuffer

	// ErrInvalidDimensions is returned for non-positive raster sizes.
	ErrInvalidDimensions = image.ErrInvalidDimensions

	// ErrUnsupportedFormat is returned when saving to an unknown file extension.
	ErrUnsupportedFormat = image.ErrUnsupportedFormat

	// ErrUnknownMode is returned by ParseMode and for out-of-range Mode values.
	ErrUnknownMode = errors.New("layerblend: invalid blend mode")
)
