package texture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadCubemapPartialFailure(t *testing.T) {
	dir := t.TempDir()

	var paths [FaceCount]string
	for i := range paths {
		paths[i] = writePNG(t, dir, Face(i).String()+".png", solid(4, 4, color.NRGBA{R: uint8(i * 40), A: 255}))
	}
	paths[Top] = filepath.Join(dir, "missing.png")

	cube, err := LoadCubemap(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top face")

	require.NotNil(t, cube)
	assert.Equal(t, 5, cube.Loaded())
	assert.Nil(t, cube.Faces[Top])
	assert.Equal(t, 4, cube.Size)
	assert.Equal(t, byte(Back*40), cube.Faces[Back].At(0, 0)[0])
}

func TestBuildCubemapResamplesFaces(t *testing.T) {
	var faces [FaceCount]image.Image
	faces[Right] = solid(8, 8, color.NRGBA{R: 255, A: 255})
	faces[Left] = solid(16, 4, color.NRGBA{G: 255, A: 255})

	cube := BuildCubemap(faces)

	assert.Equal(t, 8, cube.Size)
	assert.Equal(t, 2, cube.Loaded())
	for _, f := range []Face{Right, Left} {
		img := cube.Faces[f]
		require.NotNil(t, img)
		assert.Equal(t, 8, img.Width)
		assert.Equal(t, 8, img.Height)
		assert.Equal(t, 3, img.Channels)
	}
	assert.Equal(t, [4]byte{0, 255, 0, 0}, cube.Faces[Left].At(3, 3))
}

func TestBuildCubemapEmpty(t *testing.T) {
	cube := BuildCubemap([FaceCount]image.Image{})
	assert.Equal(t, 0, cube.Loaded())
	assert.Equal(t, 0, cube.Size)
}

func TestFaceString(t *testing.T) {
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "back", Back.String())
	assert.Equal(t, "Face(9)", Face(9).String())
}
