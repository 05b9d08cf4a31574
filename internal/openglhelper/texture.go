package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/sandbox/pkg/texture"
)

// Texture is a GL texture object bound to a fixed target.
type Texture struct {
	ID     uint32
	Target uint32 // GL_TEXTURE_2D or GL_TEXTURE_CUBE_MAP
}

func newTexture(target uint32) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(target, id)
	return &Texture{ID: id, Target: target}
}

// pixelFormats maps a channel count to the internal and client formats.
// Gamma-corrected color textures are stored as sRGB.
func pixelFormats(channels int, gammaCorrection bool) (internal int32, format uint32) {
	switch channels {
	case 1:
		return gl.RED, gl.RED
	case 4:
		if gammaCorrection {
			return gl.SRGB_ALPHA, gl.RGBA
		}
		return gl.RGBA, gl.RGBA
	default:
		if gammaCorrection {
			return gl.SRGB, gl.RGB
		}
		return gl.RGB, gl.RGB
	}
}

// NewTexture2D uploads img with mipmaps and repeat wrapping. A nil img yields
// a texture object with no storage, which samples as black.
func NewTexture2D(img *texture.Image, gammaCorrection bool) *Texture {
	t := newTexture(gl.TEXTURE_2D)

	if img != nil {
		internal, format := pixelFormats(img.Channels, gammaCorrection)

		// Rows are tightly packed, which breaks the default 4-byte alignment for RGB and red images
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Width), int32(img.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
		gl.GenerateMipmap(gl.TEXTURE_2D)

		slogger().Debug("texture uploaded", "id", t.ID, "width", img.Width, "height", img.Height, "channels", img.Channels)
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return t
}

// NewCubemap uploads the loaded faces of c. Faces that failed to load are
// left without storage.
func NewCubemap(c *texture.Cubemap) *Texture {
	t := newTexture(gl.TEXTURE_CUBE_MAP)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, face := range c.Faces {
		if face == nil {
			continue
		}
		target := gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(i)
		gl.TexImage2D(target, 0, gl.RGB, int32(face.Width), int32(face.Height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	slogger().Debug("cubemap uploaded", "id", t.ID, "size", c.Size, "faces", c.Loaded())
	return t
}

// Bind activates texture unit unit and binds the texture to it.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Delete releases the texture object.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
