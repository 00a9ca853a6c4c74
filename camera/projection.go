package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection describes a perspective frustum. FovY is in degrees.
type Projection struct {
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

// Matrix returns the perspective matrix mapping eye to clip coordinates.
func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FovY), p.Aspect, p.Near, p.Far)
}
