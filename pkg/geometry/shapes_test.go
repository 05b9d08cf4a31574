package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPyramid(t *testing.T) {
	p := Pyramid()

	assert.Equal(t, 5, p.VertexCount())
	assert.Equal(t, 18, p.DrawCount())
	assert.True(t, p.Indexed())
	for _, idx := range p.Indices {
		assert.Less(t, int(idx), p.VertexCount())
	}

	apex := mgl32.Vec3{p.Vertices[24], p.Vertices[25], p.Vertices[26]}
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, apex)
}

func TestFlagAndSkybox(t *testing.T) {
	flag := Flag()
	assert.Equal(t, 6, flag.DrawCount())
	assert.False(t, flag.Indexed())

	sky := Skybox()
	assert.Equal(t, 36, sky.DrawCount())
	for _, v := range sky.Vertices {
		assert.True(t, v == 1 || v == -1, "skybox coordinate %v not on the unit cube", v)
	}
}

func TestTangentBasis(t *testing.T) {
	tangent, bitangent := TangentBasis(
		mgl32.Vec3{0, -2, 0}, mgl32.Vec3{2, -2, 0},
		mgl32.Vec2{0, -1}, mgl32.Vec2{1, -1},
	)

	assertVec3(t, mgl32.Vec3{2, 0, 0}, tangent)
	assertVec3(t, mgl32.Vec3{0, 2, 0}, bitangent)
}

func TestTangentQuad(t *testing.T) {
	q := TangentQuad()

	require.Equal(t, 6, q.VertexCount())
	assert.Equal(t, TriangleStrip, q.Primitive)
	assert.Equal(t, int32(56), q.Layout.StrideBytes())

	for v := 0; v < q.VertexCount(); v++ {
		base := v * q.Layout.Stride
		normal := mgl32.Vec3{q.Vertices[base+3], q.Vertices[base+4], q.Vertices[base+5]}
		uv := mgl32.Vec2{q.Vertices[base+6], q.Vertices[base+7]}
		tangent := mgl32.Vec3{q.Vertices[base+8], q.Vertices[base+9], q.Vertices[base+10]}.Normalize()
		bitangent := mgl32.Vec3{q.Vertices[base+11], q.Vertices[base+12], q.Vertices[base+13]}.Normalize()

		assert.True(t, uv.X() >= 0 && uv.X() <= 1 && uv.Y() >= 0 && uv.Y() <= 1, "uv %v out of range", uv)
		assert.InDelta(t, 0, tangent.Dot(normal), 1e-6)
		assert.InDelta(t, 0, bitangent.Dot(normal), 1e-6)
		// T, B, N must form a right-handed frame for the normal map to unpack correctly.
		assertVec3(t, normal, tangent.Cross(bitangent))
	}
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "component %d of %v", i, got)
	}
}
