package camera

// Option configures a Camera at construction.
type Option func(*Camera)

// WithWorldUp sets the world-up reference. It seeds the initial up vector
// and defines the horizontal plane for planar movement. Defaults to +Y.
func WithWorldUp(x, y, z float32) Option {
	return func(c *Camera) {
		c.worldUp = [3]float32{x, y, z}
	}
}

// WithPitchClamp bounds the elevation of the view direction to [min, max]
// degrees, measured from the horizontal plane. Bounds past ±90 act as ±90.
// Without it the camera may pitch past vertical and flip over.
func WithPitchClamp(min, max float32) Option {
	return func(c *Camera) {
		if min > max {
			min, max = max, min
		}
		c.clampPitch = true
		c.minPitch = min
		c.maxPitch = max
	}
}

// WithPlanarMovement selects whether MoveForward is confined to the
// horizontal plane (the default) or follows the full forward vector.
func WithPlanarMovement(enabled bool) Option {
	return func(c *Camera) {
		c.planar = enabled
	}
}
