package geometry

import "github.com/go-gl/mathgl/mgl32"

// Layout is a named set of model matrices, one per cube instance.
type Layout struct {
	Name   string
	Models []mgl32.Mat4
}

// SingleCube is one cube at the origin.
func SingleCube() Layout {
	return Layout{Name: "cube", Models: []mgl32.Mat4{mgl32.Ident4()}}
}

// TwoCubes places a full-size cube at the origin and a half-size cube
// beside it on the -Z side, turned 45 degrees about Y.
func TwoCubes() Layout {
	second := mgl32.Translate3D(0, 0, -4).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
	return Layout{Name: "two cubes", Models: []mgl32.Mat4{mgl32.Ident4(), second}}
}
