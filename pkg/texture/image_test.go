package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestDecodeChannels(t *testing.T) {
	dir := t.TempDir()

	gray := image.NewGray(image.Rect(0, 0, 4, 2))
	gray.SetGray(1, 0, color.Gray{Y: 200})

	opaque := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range opaque.Pix {
		opaque.Pix[i] = 255
	}
	opaque.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	translucent := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	translucent.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 128})

	tests := []struct {
		name     string
		img      image.Image
		channels int
		width    int
		height   int
	}{
		{"gray.png", gray, 1, 4, 2},
		{"opaque.png", opaque, 3, 3, 3},
		{"translucent.png", translucent, 4, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(writePNG(t, dir, tt.name, tt.img))
			require.NoError(t, err)
			assert.Equal(t, tt.channels, img.Channels)
			assert.Equal(t, tt.width, img.Width)
			assert.Equal(t, tt.height, img.Height)
			assert.Len(t, img.Pix, tt.width*tt.height*tt.channels)
		})
	}

	img, err := Decode(filepath.Join(dir, "gray.png"))
	require.NoError(t, err)
	assert.Equal(t, byte(200), img.At(1, 0)[0])

	img, err = Decode(filepath.Join(dir, "opaque.png"))
	require.NoError(t, err)
	assert.Equal(t, [4]byte{10, 20, 30, 0}, img.At(2, 1))
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Decode(path)
	assert.Error(t, err)
}

func TestFromImageSubImage(t *testing.T) {
	base := image.NewGray(image.Rect(0, 0, 8, 8))
	base.SetGray(5, 5, color.Gray{Y: 77})

	sub := base.SubImage(image.Rect(4, 4, 7, 7))
	img, err := FromImage(sub)
	require.NoError(t, err)

	assert.Equal(t, 3, img.Width)
	assert.Len(t, img.Pix, 9)
	assert.Equal(t, byte(77), img.At(1, 1)[0])
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrUnsupported)
}
