package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/sandbox/pkg/geometry"
)

// Mesh is vertex data uploaded to the GPU together with its attribute layout
type Mesh struct {
	vao   *VertexArrayObject
	vbo   *BufferObject
	ebo   *BufferObject
	mode  uint32
	count int32
}

// NewMesh uploads mesh data and configures its vertex attributes
func NewMesh(data geometry.MeshData) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(data.Vertices, StaticDraw)

	var ebo *BufferObject
	if data.Indexed() {
		ebo = NewEBO(data.Indices, StaticDraw)
	}

	stride := data.Layout.StrideBytes()
	for _, attr := range data.Layout.Attributes {
		vao.SetVertexAttribPointer(attr.Index, attr.Size, gl.FLOAT, false, stride, attr.Offset*4)
	}

	// Unbind VAO before the buffers so the element binding stays recorded
	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:   vao,
		vbo:   vbo,
		ebo:   ebo,
		mode:  primitiveMode(data.Primitive),
		count: int32(data.DrawCount()),
	}
}

func primitiveMode(p geometry.Primitive) uint32 {
	switch p {
	case geometry.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// Draw renders the mesh with whatever program is currently in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	if m.ebo != nil {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	if m.ebo != nil {
		m.ebo.Delete()
	}
}
