package texture

import (
	"errors"
	"fmt"
	"image"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Face indexes a cubemap face in GL order (+X, -X, +Y, -Y, +Z, -Z).
type Face int

const (
	Right Face = iota
	Left
	Top
	Bottom
	Front
	Back
)

// FaceCount is the number of faces in a cubemap.
const FaceCount = 6

func (f Face) String() string {
	switch f {
	case Right:
		return "right"
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Cubemap holds six square RGB faces of equal size. A face that failed to
// load is nil.
type Cubemap struct {
	Faces [FaceCount]*Image
	Size  int
}

// Loaded returns the number of faces that decoded successfully.
func (c *Cubemap) Loaded() int {
	n := 0
	for _, f := range c.Faces {
		if f != nil {
			n++
		}
	}
	return n
}

// LoadCubemap decodes the six face images. Faces that fail to load are left
// nil and reported in the returned error; the remaining faces are still
// usable. All loaded faces are resampled to the width of the first loaded
// face so the GL cubemap is complete.
func LoadCubemap(paths [FaceCount]string) (*Cubemap, error) {
	var decoded [FaceCount]image.Image
	var errs []error

	for i, path := range paths {
		img, err := decodeRaw(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s face: %w", Face(i), err))
			continue
		}
		decoded[i] = img
	}

	return BuildCubemap(decoded), errors.Join(errs...)
}

// BuildCubemap converts already decoded faces, skipping nil entries.
func BuildCubemap(faces [FaceCount]image.Image) *Cubemap {
	cube := &Cubemap{}
	for _, f := range faces {
		if f != nil {
			cube.Size = f.Bounds().Dx()
			break
		}
	}

	for i, f := range faces {
		if f == nil || cube.Size == 0 {
			continue
		}
		cube.Faces[i] = squareRGB(f, cube.Size)
	}
	return cube
}

func decodeRaw(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	return img, nil
}

// squareRGB resamples src to size x size and packs it as RGB.
func squareRGB(src image.Image, size int) *Image {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if b := src.Bounds(); b.Dx() == size && b.Dy() == size {
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	} else {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	}

	pix := make([]byte, 0, size*size*3)
	for i := 0; i < len(dst.Pix); i += 4 {
		pix = append(pix, dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
	}
	return &Image{Pix: pix, Width: size, Height: size, Channels: 3}
}
