// Package texture decodes image files into tightly packed 8-bit pixel data
// ready to be uploaded as GL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupported is returned when an image decodes to zero size.
var ErrUnsupported = errors.New("unsupported image")

// Image is decoded pixel data, row-major from the top-left texel, with
// Channels bytes per texel.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int // 1 (red), 3 (rgb) or 4 (rgba)
}

// At returns the channel values of the texel at (x, y). Missing channels are
// zero.
func (img *Image) At(x, y int) [4]byte {
	var out [4]byte
	i := (y*img.Width + x) * img.Channels
	copy(out[:], img.Pix[i:i+img.Channels])
	return out
}

// Decode opens and decodes the image at path.
func Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img, err := FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FromImage converts a decoded image into packed pixel data. Grayscale images
// keep a single channel, opaque images are reduced to RGB and everything else
// is stored as non-premultiplied RGBA.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrUnsupported
	}

	channels := channelCount(src)

	if channels == 1 {
		gray := image.NewGray(image.Rect(0, 0, width, height))
		draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)
		return &Image{Pix: compact(gray.Pix, gray.Stride, width, height, 1), Width: width, Height: height, Channels: 1}, nil
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	if channels == 4 {
		return &Image{Pix: compact(rgba.Pix, rgba.Stride, width, height, 4), Width: width, Height: height, Channels: 4}, nil
	}

	pix := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		for x := 0; x < width; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return &Image{Pix: pix, Width: width, Height: height, Channels: 3}, nil
}

type opaquer interface {
	Opaque() bool
}

func channelCount(src image.Image) int {
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := src.(opaquer); ok && o.Opaque() {
		return 3
	}
	return 4
}

// compact drops any row padding so rows are exactly width*channels bytes.
func compact(pix []byte, stride, width, height, channels int) []byte {
	rowLen := width * channels
	if stride == rowLen {
		return pix[:rowLen*height]
	}
	out := make([]byte, 0, rowLen*height)
	for y := 0; y < height; y++ {
		out = append(out, pix[y*stride:y*stride+rowLen]...)
	}
	return out
}
