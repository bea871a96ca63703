package image

import "math"

// ToByte converts a channel value produced by blend math to a stored byte.
//
// NaN maps to 0, values are saturated to [0, 255] and the rest are rounded
// half to even. This is the storage rule of a clamped 8-bit canvas buffer.
func ToByte(v float64) byte {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return byte(math.RoundToEven(v))
	}
}

// PutFloats writes vals into dst starting at offset using ToByte.
// Values past the end of dst are dropped.
func PutFloats(dst []byte, offset int, vals ...float64) {
	for i, v := range vals {
		j := offset + i
		if j >= len(dst) {
			return
		}
		dst[j] = ToByte(v)
	}
}
