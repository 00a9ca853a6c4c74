// Package camera implements a free-flying camera whose orientation is
// driven by incremental yaw and pitch rotations of its forward vector.
package camera

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// baseline bookkeeping angles, never fed back into the orientation math
	initialYaw   = -90.0
	initialPitch = 0.0

	// below this length a vector is treated as zero and not normalized
	epsilon = 1e-6

	// clamped pitch deltas smaller than this many degrees are dropped, so
	// pushing against the limit leaves the basis untouched
	minPitchStep = 1e-3
)

// Camera holds a position and an orthonormal basis (forward, right, up).
//
// The right basis vector is cross(up, forward). In the right-handed
// OpenGL eye space that points to the viewer's left, so a positive
// MoveRight strafes left on screen.
//
// Camera is not safe for concurrent use; it belongs to the frame loop.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3
	forward  mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	clampPitch bool
	minPitch   float32
	maxPitch   float32

	planar bool
}

// New creates a camera at position looking at target.
func New(position, target mgl32.Vec3, opts ...Option) *Camera {
	return NewWithDirection(position, target.Sub(position), opts...)
}

// NewWithDirection creates a camera at position looking along direction.
// A zero direction falls back to looking down -Z.
func NewWithDirection(position, direction mgl32.Vec3, opts ...Option) *Camera {
	c := &Camera{
		position: position,
		worldUp:  mgl32.Vec3{0, 1, 0},
		yaw:      initialYaw,
		pitch:    initialPitch,
		minPitch: -89,
		maxPitch: 89,
		planar:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.worldUp = normalizeOr(c.worldUp, mgl32.Vec3{0, 1, 0})
	c.up = c.worldUp
	c.forward = normalizeOr(direction, mgl32.Vec3{0, 0, -1})
	c.right = perpendicular(c.forward)
	c.orthogonalize()
	c.target = c.position.Add(c.forward)
	return c
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Target returns position + forward.
func (c *Camera) Target() mgl32.Vec3 { return c.target }

func (c *Camera) Up() mgl32.Vec3      { return c.up }
func (c *Camera) Forward() mgl32.Vec3 { return c.forward }
func (c *Camera) Right() mgl32.Vec3   { return c.right }
func (c *Camera) WorldUp() mgl32.Vec3 { return c.worldUp }

// Yaw returns the accumulated yaw in degrees. It is bookkeeping only.
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the accumulated pitch in degrees. It is bookkeeping only,
// except that it bounds rotation when the pitch clamp is enabled.
func (c *Camera) Pitch() float32 { return c.pitch }

// PitchClamp reports whether pitch clamping is enabled and its range.
func (c *Camera) PitchClamp() (enabled bool, min, max float32) {
	return c.clampPitch, c.minPitch, c.maxPitch
}

// PlanarMovement reports whether MoveForward is confined to the plane
// perpendicular to the world-up reference.
func (c *Camera) PlanarMovement() bool { return c.planar }

// ViewMatrix returns the look-at transform for the current position,
// target and up vector.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection(p Projection) mgl32.Mat4 {
	return p.Matrix().Mul4(c.ViewMatrix())
}

// MoveRight translates the camera along the right basis vector.
func (c *Camera) MoveRight(distance float32) {
	c.translate(c.right.Mul(distance))
}

// MoveForward translates the camera along forward. With planar movement
// enabled the component along world-up is removed first, so looking up
// or down does not make the camera climb or dive. Looking straight along
// world-up leaves no horizontal direction and the call is a no-op.
func (c *Camera) MoveForward(distance float32) {
	dir := c.forward
	if c.planar {
		dir = dir.Sub(c.worldUp.Mul(dir.Dot(c.worldUp)))
		if dir.Len() < epsilon {
			return
		}
	}
	c.translate(dir.Normalize().Mul(distance))
}

// MoveUp translates the camera along the up basis vector.
func (c *Camera) MoveUp(distance float32) {
	c.translate(c.up.Mul(distance))
}

// RotateYaw turns the camera about the world-up axis. Positive degrees
// turn toward screen right. Elevation above the horizontal plane is
// unchanged and the right axis stays horizontal.
func (c *Camera) RotateYaw(degrees float32) {
	c.yaw += degrees
	c.rotate(degrees, c.worldUp)
}

// RotatePitch tilts the camera about its right axis. Positive degrees
// look up. With the pitch clamp enabled the delta is cut so the actual
// elevation of forward above the horizontal plane stays inside the clamp
// range; the range is limited to [-90, 90].
func (c *Camera) RotatePitch(degrees float32) {
	if c.clampPitch {
		current := c.elevation()
		lo := max(c.minPitch, -90)
		hi := min(c.maxPitch, 90)
		degrees = mgl32.Clamp(current+degrees, lo, hi) - current
		if mgl32.Abs(degrees) < minPitchStep {
			return
		}
	}
	c.pitch += degrees
	c.rotate(degrees, c.right)
}

// SetPosition moves the eye to p. Orientation is unchanged and the target
// follows.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.target = c.position.Add(c.forward)
}

// LookAt turns the camera toward point t. The stored target becomes
// position + forward, not t itself. Up is re-derived from the world-up
// reference, so LookAt also levels a rolled or flipped camera. Looking at
// the eye position is a no-op.
func (c *Camera) LookAt(t mgl32.Vec3) {
	dir := t.Sub(c.position)
	if dir.Len() < epsilon {
		return
	}
	c.forward = dir
	c.up = c.worldUp
	c.orthogonalize()
	c.target = c.position.Add(c.forward)
}

// LogValue implements slog.LogValuer.
func (c *Camera) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("position", c.position),
		slog.Any("forward", c.forward),
		slog.Float64("yaw", float64(c.yaw)),
		slog.Float64("pitch", float64(c.pitch)),
	)
}

func (c *Camera) translate(offset mgl32.Vec3) {
	c.position = c.position.Add(offset)
	c.target = c.position.Add(c.forward)
}

// rotate applies the inverse of the rotation by degrees about axis to
// forward and to the up reference, then rebuilds the basis from them. The
// delta is wrapped to one turn first; the stored yaw and pitch keep the
// full value.
func (c *Camera) rotate(degrees float32, axis mgl32.Vec3) {
	wrapped := float32(math.Mod(float64(degrees), 360))
	q := mgl32.QuatRotate(mgl32.DegToRad(wrapped), axis).Conjugate()
	c.forward = q.Rotate(c.forward)
	c.up = q.Rotate(c.up)
	c.orthogonalize()
	c.target = c.position.Add(c.forward)
}

// elevation returns the angle of forward above the horizontal plane in
// degrees.
func (c *Camera) elevation() float32 {
	f, up := c.forward, c.worldUp
	d := f.Dot(up)
	flat := f.Sub(up.Mul(d)).Len()
	return mgl32.RadToDeg(float32(math.Atan2(float64(d), float64(flat))))
}

// orthogonalize normalizes forward, then derives right from up and
// forward, then up from forward and right, in that order.
func (c *Camera) orthogonalize() {
	c.forward = normalizeOr(c.forward, mgl32.Vec3{0, 0, -1})

	right := c.up.Cross(c.forward)
	if right.Len() < epsilon {
		// forward is parallel to up: fall back to the world reference, then
		// to whatever horizontal axis we had
		right = c.worldUp.Cross(c.forward)
		if right.Len() < epsilon {
			right = c.right.Sub(c.forward.Mul(c.right.Dot(c.forward)))
			if right.Len() < epsilon {
				right = perpendicular(c.forward)
			}
		}
	}
	c.right = right.Normalize()
	c.up = c.forward.Cross(c.right).Normalize()
}

func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < epsilon {
		return fallback.Normalize()
	}
	return v.Normalize()
}

// perpendicular returns some unit vector perpendicular to unit vector v.
func perpendicular(v mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{1, 0, 0}
	if mgl32.Abs(v.X()) > 0.9 {
		axis = mgl32.Vec3{0, 0, 1}
	}
	return axis.Cross(v).Normalize()
}
