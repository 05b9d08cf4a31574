package parallax

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/sandbox/pkg/texture"
)

// Image samples the first channel of a decoded image as a height field using
// nearest-texel lookup and repeat wrapping, matching how the depth map
// texture is configured on the GPU.
type Image struct {
	img *texture.Image
}

// NewImage wraps a decoded depth map.
func NewImage(img *texture.Image) *Image {
	return &Image{img: img}
}

// Depth implements HeightField.
func (h *Image) Depth(uv mgl32.Vec2) float32 {
	if h.img == nil || h.img.Width == 0 || h.img.Height == 0 {
		return 0
	}
	// Images are uploaded unflipped, so row 0 is sampled at v=0.
	x := wrap(uv.X(), h.img.Width)
	y := wrap(uv.Y(), h.img.Height)
	return float32(h.img.At(x, y)[0]) / 255
}

func wrap(c float32, size int) int {
	c -= math32.Floor(c)
	i := int(c * float32(size))
	if i >= size {
		i = size - 1
	}
	return i
}
