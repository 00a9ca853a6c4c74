// Package demo runs the shared frame loop of the cube programs.
package demo

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/paperboard/flycam/config"
	"github.com/paperboard/flycam/geometry"
	"github.com/paperboard/flycam/input"
	"github.com/paperboard/flycam/window"
)

// Options select what a demo program draws and how keys are mapped.
type Options struct {
	Layout   geometry.Layout
	Bindings input.Bindings
}

// Run opens the window and renders until the window closes. It must be
// called from the main thread.
func Run(cfg config.Config, opts Options, logger *slog.Logger) error {

	bindings, err := cfg.Bindings(opts.Bindings)
	if err != nil {
		return err
	}

	win, err := window.Open(cfg.Window, bindings, logger)
	if err != nil {
		return err
	}
	defer win.Close()

	r, err := newRenderer(opts.Layout)
	if err != nil {
		return err
	}
	defer r.delete()

	cam := cfg.NewCamera()
	ctrl := input.NewController(cfg.Settings(), logger)
	state := &input.State{MouseCaptured: cfg.Controls.CaptureMouse}
	win.SetMouseCaptured(state.MouseCaptured)

	width, height := win.Size()
	gl.Viewport(0, 0, int32(width), int32(height))
	projection := cfg.ProjectionFor(width, height)

	logger.Info("running", "layout", opts.Layout.Name, "camera", cam)

	// run gameloop
	for !win.ShouldClose() && !state.Quit {

		// input is fully applied before the view matrix is read
		ctrl.Update(state, cam, win, win.Poll())
		win.SetMouseCaptured(state.MouseCaptured)

		if err := r.draw(cam.ViewProjection(projection)); err != nil {
			return fmt.Errorf("frame %d: %w", state.Frame, err)
		}

		// render buffer to screen
		win.SwapBuffers()

		if cfg.Window.FrameDelay > 0 {
			time.Sleep(cfg.Window.FrameDelay)
		}

	}

	logger.Info("stopped", "frames", state.Frame, "camera", cam)
	return nil

}
