// Package geometry holds the static vertex data drawn by the sandbox scene.
// Everything here is plain Go data so it can be built and checked without a
// GL context; internal/openglhelper turns it into buffers.
package geometry

// Attribute describes one float vertex attribute inside an interleaved buffer.
type Attribute struct {
	Index  uint32 // Shader location
	Size   int32  // Number of float components
	Offset int    // Offset in floats from the start of the vertex
}

// Layout describes how an interleaved float buffer is split into attributes.
type Layout struct {
	Stride     int // Floats per vertex
	Attributes []Attribute
}

// StrideBytes returns the vertex stride in bytes.
func (l Layout) StrideBytes() int32 {
	return int32(l.Stride * 4)
}

// Primitive selects how the vertex stream is assembled.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
)

// MeshData is an interleaved vertex buffer with an optional index buffer.
type MeshData struct {
	Vertices  []float32
	Indices   []uint32
	Layout    Layout
	Primitive Primitive
}

// VertexCount returns the number of vertices in the buffer.
func (m MeshData) VertexCount() int {
	if m.Layout.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Layout.Stride
}

// DrawCount returns the element count passed to the draw call: the index
// count for indexed meshes, otherwise the vertex count.
func (m MeshData) DrawCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Indexed reports whether the mesh is drawn with an element buffer.
func (m MeshData) Indexed() bool {
	return len(m.Indices) > 0
}

// PositionLayout is a tightly packed vec3 position stream.
var PositionLayout = Layout{
	Stride: 3,
	Attributes: []Attribute{
		{Index: 0, Size: 3, Offset: 0},
	},
}

// PositionNormalLayout interleaves vec3 position and vec3 normal.
var PositionNormalLayout = Layout{
	Stride: 6,
	Attributes: []Attribute{
		{Index: 0, Size: 3, Offset: 0},
		{Index: 1, Size: 3, Offset: 3},
	},
}

// TangentLayout interleaves position, normal, uv, tangent and bitangent.
var TangentLayout = Layout{
	Stride: 14,
	Attributes: []Attribute{
		{Index: 0, Size: 3, Offset: 0},  // position
		{Index: 1, Size: 3, Offset: 3},  // normal
		{Index: 2, Size: 2, Offset: 6},  // texcoords
		{Index: 3, Size: 3, Offset: 8},  // tangent
		{Index: 4, Size: 3, Offset: 11}, // bitangent
	},
}
