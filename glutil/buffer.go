package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const bytesFloat32 = 4 // a float32 is 4 bytes

// Attrib describes one float vertex attribute inside an interleaved buffer.
type Attrib struct {
	Location uint32
	Size     int32 // components, e.g. 3 for x,y,z
	Offset   int   // in floats from the start of the vertex
}

// Mesh is a vertex array object over one static vertex buffer.
type Mesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// NewStaticMesh uploads interleaved float data once and records the
// attribute layout in a vertex array object. stride is in floats.
func NewStaticMesh(data []float32, stride int, attribs ...Attrib) (*Mesh, error) {
	if stride <= 0 || len(data)%stride != 0 {
		return nil, fmt.Errorf("mesh data of %d floats is not a multiple of stride %d", len(data), stride)
	}

	m := &Mesh{VertexCount: int32(len(data) / stride)}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	// copy vertex data to VBO
	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*bytesFloat32, gl.Ptr(data), gl.STATIC_DRAW)

	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, int32(stride*bytesFloat32), gl.PtrOffset(a.Offset*bytesFloat32))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, CheckError()
}

// Draw renders the mesh as a triangle list.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount)
	gl.BindVertexArray(0)
}

// Delete frees the GPU objects.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteVertexArrays(1, &m.VAO)
}
