// Package parallax implements steep parallax mapping with a linear
// interpolation refinement step. The fragment shader in
// assets/shaders/parallax_mapping.fs runs the same routine per pixel; this is
// the host-side reference used to reason about and test the displacement.
package parallax

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// NumLayers is the number of depth slices the view ray is marched through.
	NumLayers = 10

	// MinViewZ bounds the tangent-space view z before it divides the xy
	// shift. Rays closer to grazing than this are treated as this grazing.
	MinViewZ = 0.05
)

// HeightField returns the depth, in [0,1], to push the surface inward at a
// texture coordinate.
type HeightField interface {
	Depth(uv mgl32.Vec2) float32
}

// Constant is a height field with the same depth everywhere.
type Constant float32

// Depth implements HeightField.
func (c Constant) Depth(mgl32.Vec2) float32 { return float32(c) }

// Func adapts a plain function to a HeightField.
type Func func(uv mgl32.Vec2) float32

// Depth implements HeightField.
func (f Func) Depth(uv mgl32.Vec2) float32 { return f(uv) }

// Result is the outcome of marching one view ray.
type Result struct {
	TexCoords mgl32.Vec2 // Refined texture coordinate
	Steps     int        // Layers the ray advanced before hitting the surface
	Discard   bool       // Refined coordinate left [0,1]^2
}

// ShiftPerLayer returns the texture-coordinate shift applied per layer for a
// tangent-space view direction.
func ShiftPerLayer(viewDir mgl32.Vec3, heightScale float32) mgl32.Vec2 {
	z := math32.Max(viewDir.Z(), MinViewZ)
	p := mgl32.Vec2{viewDir.X(), viewDir.Y()}.Mul(1 / z * heightScale)
	return p.Mul(1.0 / NumLayers)
}

// Offset marches the view ray through the height field and returns the
// corrected texture coordinate. viewDir is the unit direction from the
// surface point toward the viewer in tangent space.
func Offset(texCoords mgl32.Vec2, viewDir mgl32.Vec3, hf HeightField, heightScale float32) Result {
	const layerDepth = float32(1.0) / NumLayers

	deltaTexCoords := ShiftPerLayer(viewDir, heightScale)

	currentTexCoords := texCoords
	currentDepthMapValue := hf.Depth(currentTexCoords)
	currentLayerDepth := float32(0)

	steps := 0
	for steps < NumLayers && currentLayerDepth < currentDepthMapValue {
		currentTexCoords = currentTexCoords.Sub(deltaTexCoords)
		currentDepthMapValue = hf.Depth(currentTexCoords)
		steps++
		currentLayerDepth = float32(steps) * layerDepth
	}

	prevTexCoords := currentTexCoords.Add(deltaTexCoords)

	afterDepth := currentDepthMapValue - currentLayerDepth
	beforeDepth := hf.Depth(prevTexCoords) - currentLayerDepth + layerDepth

	weight := float32(0)
	if denom := afterDepth - beforeDepth; denom != 0 {
		weight = afterDepth / denom
	}
	// mix(current, prev, weight), written so equal endpoints stay exact.
	final := currentTexCoords.Add(prevTexCoords.Sub(currentTexCoords).Mul(weight))

	return Result{
		TexCoords: final,
		Steps:     steps,
		Discard:   OutOfRange(final),
	}
}

// OutOfRange reports whether either component of uv lies outside [0,1].
func OutOfRange(uv mgl32.Vec2) bool {
	return uv.X() < 0 || uv.X() > 1 || uv.Y() < 0 || uv.Y() > 1
}
