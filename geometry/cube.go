// Package geometry holds the colour cube mesh and the scene layouts of the
// demo programs.
package geometry

import "github.com/go-gl/mathgl/mgl32"

const (
	VertexPositionSize = 3 // x,y,z
	VertexColorSize    = 3 // r,g,b
	VertexSize         = 6 // VertexPositionSize + VertexColorSize
	CubeVertexCount    = 36
)

var (
	red   = mgl32.Vec3{1, 0, 0}
	green = mgl32.Vec3{0, 1, 0}
	blue  = mgl32.Vec3{0, 0, 1}
)

// cube spanning -1..1
//
//    v6----- v5
//   /|      /|
//  v1------v0|
//  | |     | |
//  | v7----|-v4
//  |/      |/
//  v2------v3
//
var corners = [8]mgl32.Vec3{
	{1, 1, 1},    // v0
	{-1, 1, 1},   // v1
	{-1, -1, 1},  // v2
	{1, -1, 1},   // v3
	{1, -1, -1},  // v4
	{1, 1, -1},   // v5
	{-1, 1, -1},  // v6
	{-1, -1, -1}, // v7
}

// each face is two counter-clockwise triangles seen from outside;
// opposite faces share a colour
var faces = [6]struct {
	quad  [4]int
	color mgl32.Vec3
}{
	{[4]int{5, 4, 7, 6}, red},   // back
	{[4]int{6, 7, 2, 1}, green}, // left
	{[4]int{6, 1, 0, 5}, blue},  // top
	{[4]int{1, 2, 3, 0}, red},   // front
	{[4]int{0, 3, 4, 5}, green}, // right
	{[4]int{2, 7, 4, 3}, blue},  // bottom
}

// CubeVertices returns the 36 cube vertex positions as x,y,z triples.
func CubeVertices() []float32 {
	out := make([]float32, 0, CubeVertexCount*VertexPositionSize)
	for _, f := range faces {
		for _, i := range triangulate(f.quad) {
			c := corners[i]
			out = append(out, c[0], c[1], c[2])
		}
	}
	return out
}

// CubeColors returns one r,g,b triple per cube vertex.
func CubeColors() []float32 {
	out := make([]float32, 0, CubeVertexCount*VertexColorSize)
	for _, f := range faces {
		for range 6 {
			out = append(out, f.color[0], f.color[1], f.color[2])
		}
	}
	return out
}

// Interleaved returns position and colour packed per vertex, VertexSize
// floats each, for a single static buffer.
func Interleaved() []float32 {
	pos, col := CubeVertices(), CubeColors()
	out := make([]float32, 0, CubeVertexCount*VertexSize)
	for v := 0; v < CubeVertexCount; v++ {
		out = append(out, pos[v*VertexPositionSize:(v+1)*VertexPositionSize]...)
		out = append(out, col[v*VertexColorSize:(v+1)*VertexColorSize]...)
	}
	return out
}

func triangulate(q [4]int) [6]int {
	return [6]int{
		q[0], q[1], q[2], // first triangle
		q[0], q[2], q[3], // second triangle
	}
}
