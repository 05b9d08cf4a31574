package geometry

import "github.com/go-gl/mathgl/mgl32"

// Pyramid returns a square-based pyramid with its base on y=0 and the apex at
// y=1. Format: x, y, z, nx, ny, nz.
func Pyramid() MeshData {
	vertices := []float32{
		// Base corners
		-0.5, 0.0, -0.5, 0.0, -1.0, 0.0,
		0.5, 0.0, -0.5, 0.0, -1.0, 0.0,
		0.5, 0.0, 0.5, 0.0, -1.0, 0.0,
		-0.5, 0.0, 0.5, 0.0, -1.0, 0.0,

		// Apex
		0.0, 1.0, 0.0, 0.0, 1.0, 0.0,
	}

	indices := []uint32{
		// Base
		0, 1, 2,
		0, 2, 3,

		// Sides
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}

	return MeshData{
		Vertices:  vertices,
		Indices:   indices,
		Layout:    PositionNormalLayout,
		Primitive: Triangles,
	}
}

// Flag returns a unit rectangle in the XY plane made of two triangles.
func Flag() MeshData {
	vertices := []float32{
		// First triangle
		0.5, 0.5, 0.0, // top-right
		0.5, -0.5, 0.0, // bottom-right
		-0.5, 0.5, 0.0, // top-left

		// Second triangle
		0.5, -0.5, 0.0, // bottom-right
		-0.5, -0.5, 0.0, // bottom-left
		-0.5, 0.5, 0.0, // top-left
	}

	return MeshData{
		Vertices:  vertices,
		Layout:    PositionLayout,
		Primitive: Triangles,
	}
}

// Skybox returns the 36 positions of a cube spanning [-1,1] on every axis,
// wound to be seen from the inside.
func Skybox() MeshData {
	vertices := []float32{
		-1.0, 1.0, -1.0,
		-1.0, -1.0, -1.0,
		1.0, -1.0, -1.0,
		1.0, -1.0, -1.0,
		1.0, 1.0, -1.0,
		-1.0, 1.0, -1.0,

		-1.0, -1.0, 1.0,
		-1.0, -1.0, -1.0,
		-1.0, 1.0, -1.0,
		-1.0, 1.0, -1.0,
		-1.0, 1.0, 1.0,
		-1.0, -1.0, 1.0,

		1.0, -1.0, -1.0,
		1.0, -1.0, 1.0,
		1.0, 1.0, 1.0,
		1.0, 1.0, 1.0,
		1.0, 1.0, -1.0,
		1.0, -1.0, -1.0,

		-1.0, -1.0, 1.0,
		-1.0, 1.0, 1.0,
		1.0, 1.0, 1.0,
		1.0, 1.0, 1.0,
		1.0, -1.0, 1.0,
		-1.0, -1.0, 1.0,

		-1.0, 1.0, -1.0,
		1.0, 1.0, -1.0,
		1.0, 1.0, 1.0,
		1.0, 1.0, 1.0,
		-1.0, 1.0, 1.0,
		-1.0, 1.0, -1.0,

		-1.0, -1.0, -1.0,
		-1.0, -1.0, 1.0,
		1.0, -1.0, -1.0,
		1.0, -1.0, -1.0,
		-1.0, -1.0, 1.0,
		1.0, -1.0, 1.0,
	}

	return MeshData{
		Vertices:  vertices,
		Layout:    PositionLayout,
		Primitive: Triangles,
	}
}

// TangentBasis computes the tangent and bitangent of a triangle from two of
// its edges and the matching texture-coordinate deltas.
func TangentBasis(edge1, edge2 mgl32.Vec3, deltaUV1, deltaUV2 mgl32.Vec2) (tangent, bitangent mgl32.Vec3) {
	f := 1.0 / (deltaUV1.X()*deltaUV2.Y() - deltaUV2.X()*deltaUV1.Y())

	tangent = mgl32.Vec3{
		f * (deltaUV2.Y()*edge1.X() - deltaUV1.Y()*edge2.X()),
		f * (deltaUV2.Y()*edge1.Y() - deltaUV1.Y()*edge2.Y()),
		f * (deltaUV2.Y()*edge1.Z() - deltaUV1.Y()*edge2.Z()),
	}
	bitangent = mgl32.Vec3{
		f * (-deltaUV2.X()*edge1.X() + deltaUV1.X()*edge2.X()),
		f * (-deltaUV2.X()*edge1.Y() + deltaUV1.X()*edge2.Y()),
		f * (-deltaUV2.X()*edge1.Z() + deltaUV1.X()*edge2.Z()),
	}
	return tangent, bitangent
}

// TangentQuad returns a 2x2 quad in the XY plane facing +Z with per-triangle
// tangent and bitangent vectors, ready for tangent-space shading.
func TangentQuad() MeshData {
	pos1 := mgl32.Vec3{-1.0, 1.0, 0.0}
	pos2 := mgl32.Vec3{-1.0, -1.0, 0.0}
	pos3 := mgl32.Vec3{1.0, -1.0, 0.0}
	pos4 := mgl32.Vec3{1.0, 1.0, 0.0}

	uv1 := mgl32.Vec2{0.0, 1.0}
	uv2 := mgl32.Vec2{0.0, 0.0}
	uv3 := mgl32.Vec2{1.0, 0.0}
	uv4 := mgl32.Vec2{1.0, 1.0}

	nm := mgl32.Vec3{0.0, 0.0, 1.0}

	tangent1, bitangent1 := TangentBasis(pos2.Sub(pos1), pos3.Sub(pos1), uv2.Sub(uv1), uv3.Sub(uv1))
	tangent2, bitangent2 := TangentBasis(pos3.Sub(pos1), pos4.Sub(pos1), uv3.Sub(uv1), uv4.Sub(uv1))

	vertices := make([]float32, 0, 6*TangentLayout.Stride)
	appendVertex := func(p mgl32.Vec3, uv mgl32.Vec2, t, b mgl32.Vec3) {
		vertices = append(vertices,
			p[0], p[1], p[2],
			nm[0], nm[1], nm[2],
			uv[0], uv[1],
			t[0], t[1], t[2],
			b[0], b[1], b[2],
		)
	}

	appendVertex(pos1, uv1, tangent1, bitangent1)
	appendVertex(pos2, uv2, tangent1, bitangent1)
	appendVertex(pos3, uv3, tangent1, bitangent1)

	appendVertex(pos1, uv1, tangent2, bitangent2)
	appendVertex(pos3, uv3, tangent2, bitangent2)
	appendVertex(pos4, uv4, tangent2, bitangent2)

	// Drawn as a 6-vertex strip; the two extra vertices only produce
	// degenerate or coplanar triangles over the same quad.
	return MeshData{
		Vertices:  vertices,
		Layout:    TangentLayout,
		Primitive: TriangleStrip,
	}
}
