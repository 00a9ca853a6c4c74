// Package window opens a glfw window with an OpenGL 3.3 core context and
// adapts its keyboard and cursor to the input package.
//
// glfw must be driven from the main thread; callers lock it with
// runtime.LockOSThread in an init function.
package window

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/flycam/config"
	"github.com/paperboard/flycam/input"
)

// Window owns the glfw window and collects input between frames.
type Window struct {
	win    *glfw.Window
	keys   keyMap
	logger *slog.Logger

	events   []input.Event
	lastX    float64
	lastY    float64
	hasLast  bool
	captured bool
}

var _ input.KeyPoller = (*Window)(nil)

// Open initializes glfw and gl and creates the window. Close must be
// called to terminate glfw. A nil logger discards output.
func Open(cfg config.Window, bindings input.Bindings, logger *slog.Logger) (*Window, error) {
	logger = input.OrDiscard(logger)

	keys, err := newKeyMap(bindings)
	if err != nil {
		return nil, err
	}

	// initalize glfw
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	// use OpenGL v3.3 core
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// create window handle
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize gl: %w", err)
	}
	logger.Info("opened window", "gl_version", gl.GoStr(gl.GetString(gl.VERSION)), "width", cfg.Width, "height", cfg.Height)

	w := &Window{win: win, keys: keys, logger: logger}
	win.SetKeyCallback(w.onKey)
	win.SetCursorPosCallback(w.onCursor)
	win.SetCloseCallback(func(*glfw.Window) {
		w.events = append(w.events, input.Event{Kind: input.Quit})
	})
	if glfw.RawMouseMotionSupported() {
		win.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	return w, nil
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	return w.win.GetFramebufferSize()
}

// Pressed implements input.KeyPoller.
func (w *Window) Pressed(a input.Action) bool {
	k, ok := w.keys[a]
	return ok && w.win.GetKey(k) == glfw.Press
}

// Poll processes pending glfw events and returns the input events
// collected since the previous call.
func (w *Window) Poll() []input.Event {
	glfw.PollEvents()
	events := w.events
	w.events = nil
	return events
}

// SetMouseCaptured hides the cursor and switches to relative motion, or
// restores the normal cursor.
func (w *Window) SetMouseCaptured(captured bool) {
	if captured == w.captured {
		return
	}
	w.captured = captured
	mode := glfw.CursorNormal
	if captured {
		mode = glfw.CursorDisabled
	}
	w.win.SetInputMode(glfw.CursorMode, mode)
	// the cursor jumps when the mode changes
	w.hasLast = false
	w.logger.Debug("cursor mode", "captured", captured)
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.events = append(w.events, input.Event{Kind: input.ToggleCapture})
	}
}

func (w *Window) onCursor(_ *glfw.Window, x, y float64) {
	if !w.hasLast {
		w.lastX, w.lastY, w.hasLast = x, y, true
		return
	}
	dx, dy := x-w.lastX, y-w.lastY
	w.lastX, w.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	w.events = append(w.events, input.Event{Kind: input.MouseMotion, DX: float32(dx), DY: float32(dy)})
}
