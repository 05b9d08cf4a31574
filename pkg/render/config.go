package render

import (
	"fmt"
	"path/filepath"

	"github.com/leterax/sandbox/pkg/texture"
)

// Config holds everything resolved once at startup.
type Config struct {
	Width  int
	Height int
	Title  string

	// AssetRoot is the directory holding shaders/, textures/ and skyboxes/.
	AssetRoot string

	VSync   bool
	Samples int // MSAA samples, 0 disables multisampling

	HeightScale float32 // Initial parallax depth
}

// DefaultConfig returns the configuration the sandbox runs with when no flags
// are given.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Title:       DefaultTitle,
		AssetRoot:   "assets",
		VSync:       true,
		Samples:     DefaultSamples,
		HeightScale: DefaultHeightScale,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Samples < 0 {
		return fmt.Errorf("invalid sample count %d", c.Samples)
	}
	if c.HeightScale < MinHeightScale || c.HeightScale > MaxHeightScale {
		return fmt.Errorf("height scale %v outside [%v, %v]", c.HeightScale, MinHeightScale, MaxHeightScale)
	}
	if c.AssetRoot == "" {
		return fmt.Errorf("asset root is empty")
	}
	return nil
}

// ShaderPath resolves a shader source file name.
func (c Config) ShaderPath(name string) string {
	return filepath.Join(c.AssetRoot, "shaders", name)
}

// TexturePath resolves a file under textures/.
func (c Config) TexturePath(elem ...string) string {
	return filepath.Join(append([]string{c.AssetRoot, "textures"}, elem...)...)
}

// SkyboxFaces returns the six skybox images in cubemap face order.
func (c Config) SkyboxFaces() [texture.FaceCount]string {
	var faces [texture.FaceCount]string
	for i := range faces {
		faces[i] = filepath.Join(c.AssetRoot, "skyboxes", "skybox", texture.Face(i).String()+".jpg")
	}
	return faces
}
