package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertex(data []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{data[i*3], data[i*3+1], data[i*3+2]}
}

func TestCubeSizes(t *testing.T) {
	assert.Len(t, CubeVertices(), CubeVertexCount*VertexPositionSize)
	assert.Len(t, CubeColors(), CubeVertexCount*VertexColorSize)
	assert.Len(t, Interleaved(), CubeVertexCount*VertexSize)
}

func TestCubeTrianglesFaceOutward(t *testing.T) {
	pos := CubeVertices()
	for tri := 0; tri < CubeVertexCount/3; tri++ {
		a, b, c := vertex(pos, tri*3), vertex(pos, tri*3+1), vertex(pos, tri*3+2)
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, normal.Dot(centroid), float32(0), "triangle %d winds inward", tri)
		for _, v := range []mgl32.Vec3{a, b, c} {
			for _, x := range v {
				assert.Contains(t, []float32{-1, 1}, x)
			}
		}
	}
}

func TestCubeColorsPerFace(t *testing.T) {
	col := CubeColors()
	want := []mgl32.Vec3{red, green, blue, red, green, blue}
	for face, c := range want {
		for v := 0; v < 6; v++ {
			assert.Equal(t, c, vertex(col, face*6+v), "face %d vertex %d", face, v)
		}
	}
}

func TestInterleaved(t *testing.T) {
	pos, col, packed := CubeVertices(), CubeColors(), Interleaved()
	for v := 0; v < CubeVertexCount; v++ {
		base := v * VertexSize
		assert.Equal(t, pos[v*3:v*3+3], packed[base:base+3])
		assert.Equal(t, col[v*3:v*3+3], packed[base+3:base+6])
	}
}

func TestLayouts(t *testing.T) {
	single := SingleCube()
	require.Len(t, single.Models, 1)
	assert.Equal(t, mgl32.Ident4(), single.Models[0])

	two := TwoCubes()
	require.Len(t, two.Models, 2)
	center := two.Models[1].Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, center.X(), 1e-5)
	assert.InDelta(t, -4, center.Z(), 1e-5)

	corner := two.Models[1].Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.InDelta(t, 0.5, corner.Y(), 1e-5, "second cube is half size")
}
