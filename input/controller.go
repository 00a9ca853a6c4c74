package input

import (
	"log/slog"

	"github.com/paperboard/flycam/camera"
)

// KeyPoller reports which actions have their key held this frame.
type KeyPoller interface {
	Pressed(Action) bool
}

// EventKind distinguishes discrete input events.
type EventKind int

const (
	// MouseMotion carries a relative cursor delta in DX, DY.
	MouseMotion EventKind = iota
	// ToggleCapture flips relative mouse mode.
	ToggleCapture
	// Quit asks the frame loop to stop.
	Quit
)

// Event is one discrete input event drained from the window.
type Event struct {
	Kind   EventKind
	DX, DY float32
}

// Settings are the per-frame speeds. Speeds are per frame, not per second,
// since the demos sleep a fixed frame delay.
type Settings struct {
	MoveSpeed        float32
	RotateSpeed      float32
	MouseSensitivity float32
}

// DefaultSettings returns the stock demo speeds.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        0.2,
		RotateSpeed:      1.2,
		MouseSensitivity: 0.1,
	}
}

// State is the application state carried across frames.
type State struct {
	MouseCaptured bool
	Quit          bool
	Frame         uint64
	// TurnTrace accumulates key-driven yaw in degrees, positive to the
	// right. It is only logged.
	TurnTrace float32
}

// Controller applies input to a camera once per frame.
type Controller struct {
	settings Settings
	logger   *slog.Logger
}

// NewController creates a controller. A nil logger discards output.
func NewController(settings Settings, logger *slog.Logger) *Controller {
	return &Controller{settings: settings, logger: OrDiscard(logger)}
}

// OrDiscard returns logger, or a logger that drops every record when
// logger is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// Settings returns the controller speeds.
func (c *Controller) Settings() Settings { return c.settings }

// Update applies held keys, then drains events in order. Everything
// happens before the caller reads the view matrix for this frame.
func (c *Controller) Update(state *State, cam *camera.Camera, keys KeyPoller, events []Event) {
	state.Frame++
	c.applyKeys(state, cam, keys)
	for _, ev := range events {
		c.applyEvent(state, cam, ev)
	}
}

func (c *Controller) applyKeys(state *State, cam *camera.Camera, keys KeyPoller) {
	speed, rotate := c.settings.MoveSpeed, c.settings.RotateSpeed

	// the right basis points to the viewer's left
	if keys.Pressed(StrafeLeft) {
		cam.MoveRight(speed)
	}
	if keys.Pressed(StrafeRight) {
		cam.MoveRight(-speed)
	}
	if keys.Pressed(MoveForward) {
		cam.MoveForward(speed)
	}
	if keys.Pressed(MoveBackward) {
		cam.MoveForward(-speed)
	}
	if keys.Pressed(TurnLeft) {
		cam.RotateYaw(-rotate)
		state.TurnTrace -= rotate
		c.logger.Debug("turn", "trace", state.TurnTrace)
	}
	if keys.Pressed(TurnRight) {
		cam.RotateYaw(rotate)
		state.TurnTrace += rotate
		c.logger.Debug("turn", "trace", state.TurnTrace)
	}
	if keys.Pressed(PitchUp) {
		cam.RotatePitch(rotate)
	}
	if keys.Pressed(PitchDown) {
		cam.RotatePitch(-rotate)
	}
	if keys.Pressed(MoveUp) {
		cam.MoveUp(speed)
	}
	if keys.Pressed(MoveDown) {
		cam.MoveUp(-speed)
	}
}

func (c *Controller) applyEvent(state *State, cam *camera.Camera, ev Event) {
	switch ev.Kind {
	case Quit:
		state.Quit = true
	case ToggleCapture:
		state.MouseCaptured = !state.MouseCaptured
		c.logger.Info("mouse capture", "enabled", state.MouseCaptured)
	case MouseMotion:
		if !state.MouseCaptured {
			return
		}
		// screen y grows downward; moving the mouse up looks up
		cam.RotateYaw(ev.DX * c.settings.MouseSensitivity)
		cam.RotatePitch(-ev.DY * c.settings.MouseSensitivity)
	}
}
