package blend

import (
	"github.com/gogpu/layerblend/internal/image"
	"github.com/gogpu/layerblend/internal/vec"
)

// additive sums all four channels, alpha included.
func additive(fg, bg, out []byte, i int) {
	f := vec.FromBytes(fg[i : i+4])
	b := vec.FromBytes(bg[i : i+4])
	store(out, i, must(f.Add(b)))
}

// multiply: (f*b)/255 mixed over b by the foreground alpha.
func multiply(fg, bg, out []byte, i int) {
	f := vec.FromBytes(fg[i : i+3])
	b := vec.FromBytes(bg[i : i+3])
	af := float64(fg[i+3]) / 255
	ab := float64(bg[i+3]) / 255

	m := must(f.Mul(b)).ScalarMul(1.0 / 255)

	store(out, i, over(m, b, af))
	out[i+3] = image.ToByte(overAlpha(af, ab) * 255)
}

// screen: 1 - (1-f)(1-b) in unit range, mixed over b by the foreground alpha.
func screen(fg, bg, out []byte, i int) {
	f := vec.FromBytes(fg[i : i+3]).ScalarMul(1.0 / 255)
	b := vec.FromBytes(bg[i : i+3]).ScalarMul(1.0 / 255)
	af := float64(fg[i+3]) / 255
	ab := float64(bg[i+3]) / 255

	ones := vec.Fill(3, 1)
	fInv := must(vec.Difference(ones, f))
	bInv := must(vec.Difference(ones, b))
	s := must(vec.Difference(ones, must(fInv.Mul(bInv))))

	store(out, i, over(s, b, af).ScalarMul(255))
	out[i+3] = image.ToByte(overAlpha(af, ab) * 255)
}

// difference: |f-b| on raw bytes, mixed over b by the foreground alpha.
func difference(fg, bg, out []byte, i int) {
	f := vec.FromBytes(fg[i : i+3])
	b := vec.FromBytes(bg[i : i+3])
	af := float64(fg[i+3]) / 255
	ab := float64(bg[i+3]) / 255

	d := must(f.Sub(b)).Abs()

	store(out, i, over(d, b, af))
	out[i+3] = image.ToByte(overAlpha(af, ab) * 255)
}

// alphaOver is the "over" operator evaluated on raw 0-255 alphas.
//
// The alphas are not normalized, unlike the other modes: any
// foreground alpha above 1 drives the combined alpha negative, which the byte
// conversion then stores as 0. A combined alpha of exactly 0 passes the
// background pixel through.
func alphaOver(fg, bg, out []byte, i int) {
	af := float64(fg[i+3])
	ab := float64(bg[i+3])
	a := overAlpha(af, ab)
	if a == 0 {
		copy(out[i:i+4], bg[i:i+4])
		return
	}

	f := vec.FromBytes(fg[i : i+3])
	b := vec.FromBytes(bg[i : i+3])
	num := must(f.ScalarMul(af).Add(b.ScalarMul((1 - af) * ab)))

	store(out, i, must(num.Div(vec.Fill(3, a))))
	out[i+3] = image.ToByte(a)
}
