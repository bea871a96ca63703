package layerblend_test

import (
	"fmt"

	"github.com/gogpu/layerblend"
)

func ExampleBlendLayers() {
	top, _ := layerblend.NewRasterFromRGBA([]byte{10, 20, 30, 40}, 1, 1)
	bottom, _ := layerblend.NewRasterFromRGBA([]byte{5, 5, 5, 5}, 1, 1)

	out, err := layerblend.BlendLayers(layerblend.ModeAdditive, top, bottom)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Data())
	// Output: [15 25 35 45]
}

func ExampleParseMode() {
	m, err := layerblend.ParseMode("Screen")
	fmt.Println(m, err)

	_, err = layerblend.ParseMode("overlay")
	fmt.Println(err)
	// Output:
	// screen <nil>
	// layerblend: invalid blend mode: "overlay"
}

func ExampleBlend() {
	white, _ := layerblend.NewRasterFromRGBA([]byte{255, 255, 255, 255}, 1, 1)
	gray, _ := layerblend.NewRasterFromRGBA([]byte{100, 150, 200, 255}, 1, 1)
	q := layerblend.NewLayerQueue(white, gray)

	out, _ := layerblend.Blend(layerblend.ModeMultiply, q)
	fmt.Println(out.Data(), q.Len())
	// Output: [100 150 200 255] 0
}
