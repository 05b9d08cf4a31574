package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/sandbox/internal/openglhelper"
	"github.com/leterax/sandbox/pkg/geometry"
	"github.com/leterax/sandbox/pkg/texture"
)

// Texture units used by the parallax program.
const (
	diffuseUnit = 0
	normalUnit  = 1
	depthUnit   = 2
	skyboxUnit  = 0
)

// FlagColor is the solid color of the flag quad.
var FlagColor = mgl32.Vec4{1, 0, 0, 1}

// Scene owns every GPU resource of the sandbox and draws them in a fixed order.
type Scene struct {
	objectShader   *openglhelper.Shader
	skyboxShader   *openglhelper.Shader
	reflectShader  *openglhelper.Shader
	flagShader     *openglhelper.Shader
	parallaxShader *openglhelper.Shader

	pyramid *openglhelper.Mesh
	flag    *openglhelper.Mesh
	skybox  *openglhelper.Mesh
	quad    *openglhelper.Mesh

	cubemap *openglhelper.Texture
	diffuse *openglhelper.Texture
	normal  *openglhelper.Texture
	depth   *openglhelper.Texture
}

// NewScene compiles the shaders, uploads the meshes and loads the textures.
// It needs a current GL context. Shader failures are fatal; texture failures
// are logged and leave an empty texture in place.
func NewScene(cfg Config) (*Scene, error) {
	s := &Scene{}

	programs := []struct {
		dst  **openglhelper.Shader
		name string
	}{
		{&s.objectShader, "shader"},
		{&s.skyboxShader, "skybox"},
		{&s.reflectShader, "reflect"},
		{&s.flagShader, "flagr"},
		{&s.parallaxShader, "parallax_mapping"},
	}
	for _, p := range programs {
		shader, err := openglhelper.LoadShaderFromFiles(cfg.ShaderPath(p.name+".vs"), cfg.ShaderPath(p.name+".fs"))
		if err != nil {
			s.Delete()
			return nil, fmt.Errorf("%w: failed to load %s shader: %w", ErrInit, p.name, err)
		}
		*p.dst = shader
	}

	s.pyramid = openglhelper.NewMesh(geometry.Pyramid())
	s.flag = openglhelper.NewMesh(geometry.Flag())
	s.skybox = openglhelper.NewMesh(geometry.Skybox())
	s.quad = openglhelper.NewMesh(geometry.TangentQuad())

	s.cubemap = loadCubemap(cfg.SkyboxFaces())
	s.diffuse = loadTexture(cfg.TexturePath("toybox", "wood.png"))
	s.normal = loadTexture(cfg.TexturePath("toybox", "toy_box_normal.png"))
	s.depth = loadTexture(cfg.TexturePath("toybox", "toy_box_disp.png"))

	s.skyboxShader.Use()
	s.skyboxShader.SetInt("skybox", skyboxUnit)

	s.reflectShader.Use()
	s.reflectShader.SetInt("skybox", skyboxUnit)

	s.parallaxShader.Use()
	s.parallaxShader.SetInt("diffuseMap", diffuseUnit)
	s.parallaxShader.SetInt("normalMap", normalUnit)
	s.parallaxShader.SetInt("depthMap", depthUnit)

	return s, nil
}

func loadTexture(path string) *openglhelper.Texture {
	img, err := texture.Decode(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrResourceLoad, err)
		Logger().Warn("texture failed to load", "path", path, "err", err)
		return openglhelper.NewTexture2D(nil, false)
	}
	return openglhelper.NewTexture2D(img, false)
}

func loadCubemap(faces [texture.FaceCount]string) *openglhelper.Texture {
	cube, err := texture.LoadCubemap(faces)
	if err != nil {
		// errors.Join keeps one line per failed face
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, faceErr := range joined.Unwrap() {
				Logger().Warn("cubemap face failed to load", "err", fmt.Errorf("%w: %w", ErrResourceLoad, faceErr))
			}
		} else {
			Logger().Warn("cubemap failed to load", "err", fmt.Errorf("%w: %w", ErrResourceLoad, err))
		}
	}
	return openglhelper.NewCubemap(cube)
}

// Draw issues the draw calls for one frame. The caller clears the target.
func (s *Scene) Draw(f Frame) {
	// Flat-shaded double pyramid
	s.objectShader.Use()
	s.objectShader.SetMat4("projection", f.Projection)
	s.objectShader.SetMat4("view", f.View)
	s.objectShader.SetMat4("model", PyramidModel(f.Time))
	s.pyramid.Draw()
	s.objectShader.SetMat4("model", MirroredPyramidModel(f.Time))
	s.pyramid.Draw()

	// Double pyramid reflecting the skybox
	s.reflectShader.Use()
	s.reflectShader.SetMat4("projection", f.Projection)
	s.reflectShader.SetMat4("view", f.View)
	s.reflectShader.SetVec3("cameraPos", f.CameraPos)
	s.reflectShader.SetMat4("model", ReflectPyramidModel(f.Time))
	s.cubemap.Bind(skyboxUnit)
	s.pyramid.Draw()
	s.reflectShader.SetMat4("model", MirroredReflectPyramidModel(f.Time))
	s.pyramid.Draw()

	// Flag
	s.flagShader.Use()
	s.flagShader.SetMat4("projection", f.Projection)
	s.flagShader.SetMat4("view", f.View)
	s.flagShader.SetMat4("model", FlagModel())
	s.flagShader.SetVec4("color", FlagColor)
	s.flag.Draw()

	// Parallax-mapped quad
	s.parallaxShader.Use()
	s.parallaxShader.SetMat4("projection", f.Projection)
	s.parallaxShader.SetMat4("view", f.View)
	s.parallaxShader.SetMat4("model", ParallaxQuadModel(f.Time))
	s.parallaxShader.SetVec3("viewPos", f.CameraPos)
	s.parallaxShader.SetVec3("lightPos", LightPos)
	s.parallaxShader.SetFloat("heightScale", f.HeightScale)
	s.diffuse.Bind(diffuseUnit)
	s.normal.Bind(normalUnit)
	s.depth.Bind(depthUnit)
	s.quad.Draw()

	// Skybox last: depth is 1.0 everywhere, so it only fills uncovered pixels
	gl.DepthFunc(gl.LEQUAL)
	s.skyboxShader.Use()
	s.skyboxShader.SetMat4("view", SkyboxView(f.View))
	s.skyboxShader.SetMat4("projection", f.Projection)
	s.cubemap.Bind(skyboxUnit)
	s.skybox.Draw()
	gl.DepthFunc(gl.LESS)
}

// Delete releases every resource created so far.
func (s *Scene) Delete() {
	for _, sh := range []*openglhelper.Shader{s.objectShader, s.skyboxShader, s.reflectShader, s.flagShader, s.parallaxShader} {
		if sh != nil {
			sh.Delete()
		}
	}
	for _, m := range []*openglhelper.Mesh{s.pyramid, s.flag, s.skybox, s.quad} {
		if m != nil {
			m.Delete()
		}
	}
	for _, t := range []*openglhelper.Texture{s.cubemap, s.diffuse, s.normal, s.depth} {
		if t != nil {
			t.Delete()
		}
	}
}
