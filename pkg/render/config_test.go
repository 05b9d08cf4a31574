package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "Sandbox", cfg.Title)
	assert.Equal(t, float32(0.1), cfg.HeightScale)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative samples", func(c *Config) { c.Samples = -4 }},
		{"height scale too large", func(c *Config) { c.HeightScale = 1.5 }},
		{"negative height scale", func(c *Config) { c.HeightScale = -0.1 }},
		{"empty asset root", func(c *Config) { c.AssetRoot = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AssetRoot = filepath.Join("opt", "sandbox")

	assert.Equal(t, filepath.Join("opt", "sandbox", "shaders", "skybox.vs"), cfg.ShaderPath("skybox.vs"))
	assert.Equal(t, filepath.Join("opt", "sandbox", "textures", "toybox", "wood.png"), cfg.TexturePath("toybox", "wood.png"))

	faces := cfg.SkyboxFaces()
	assert.Equal(t, filepath.Join("opt", "sandbox", "skyboxes", "skybox", "right.jpg"), faces[0])
	assert.Equal(t, filepath.Join("opt", "sandbox", "skyboxes", "skybox", "top.jpg"), faces[2])
	assert.Equal(t, filepath.Join("opt", "sandbox", "skyboxes", "skybox", "back.jpg"), faces[5])
}
