package config

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/flycam/input"
)

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10*time.Millisecond, cfg.Window.FrameDelay)
	assert.Equal(t, input.DefaultSettings(), cfg.Settings())
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  width: 1024
  height: 512
  frame_delay: 16ms
camera:
  position: [0, 2, 5]
  planar_movement: false
  pitch_clamp:
    enabled: true
    min: -60
    max: 60
controls:
  move_speed: 0.5
  bindings:
    move_up: R
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "flycam", cfg.Window.Title, "unset fields keep their defaults")
	assert.Equal(t, 16*time.Millisecond, cfg.Window.FrameDelay)
	assert.Equal(t, mgl32.Vec3{0, 2, 5}, cfg.Camera.Position)
	assert.Equal(t, float32(0.5), cfg.Settings().MoveSpeed)
	assert.Equal(t, float32(1.2), cfg.Settings().RotateSpeed)

	b, err := cfg.Bindings(input.DefaultBindings())
	require.NoError(t, err)
	assert.Equal(t, "R", b[input.MoveUp])
	assert.Equal(t, "W", b[input.MoveForward])

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	cam := cfg.NewCamera()
	assert.False(t, cam.PlanarMovement())
	enabled, min, max := cam.PitchClamp()
	assert.True(t, enabled)
	assert.Equal(t, float32(-60), min)
	assert.Equal(t, float32(60), max)
	assert.Equal(t, mgl32.Vec3{0, 2, 5}, cam.Position())

	p := cfg.ProjectionFor(cfg.Window.Width, cfg.Window.Height)
	assert.Equal(t, float32(2), p.Aspect)
	assert.Equal(t, float32(45), p.FovY)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "window: {width: 0}"},
		{"negative delay", "window: {frame_delay: -1s}"},
		{"target at eye", "camera: {position: [1, 1, 1], target: [1, 1, 1]}"},
		{"zero world up", "camera: {world_up: [0, 0, 0]}"},
		{"inverted clamp", "camera: {pitch_clamp: {enabled: true, min: 10, max: -10}}"},
		{"fov", "projection: {fov_degrees: 180}"},
		{"clip planes", "projection: {near: 1, far: 1}"},
		{"negative speed", "controls: {move_speed: -1}"},
		{"unknown action", "controls: {bindings: {jump: J}}"},
		{"empty key", "controls: {bindings: {move_up: \"  \"}}"},
		{"log level", "log: {level: chatty}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestBindingsCheckedAgainstBase(t *testing.T) {
	// Q turns left in the alternate set, so this override only clashes
	// with the default set
	cfg, err := Parse([]byte("controls: {bindings: {turn_left: Q}}"))
	require.NoError(t, err)

	b, err := cfg.Bindings(input.AlternateBindings())
	require.NoError(t, err)
	assert.Equal(t, "Q", b[input.TurnLeft])
	assert.Equal(t, "E", b[input.TurnRight])

	_, err = cfg.Bindings(input.DefaultBindings())
	assert.ErrorIs(t, err, ErrInvalid)

	cfg, err = Parse([]byte("controls: {bindings: {move_up: W}}"))
	require.NoError(t, err)
	_, err = cfg.Bindings(input.DefaultBindings())
	assert.ErrorIs(t, err, ErrInvalid, "W already moves forward")
}

func TestFromArgs(t *testing.T) {
	var stderr bytes.Buffer
	cfg, logger, err := FromArgs("flycam", nil, &stderr)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "flycam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {title: args}\nlog: {level: debug}\n"), 0o644))
	cfg, logger, err = FromArgs("flycam", []string{"-config", path}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "args", cfg.Window.Title)
	logger.Debug("loaded")
	assert.Contains(t, stderr.String(), "msg=loaded")
}

func TestFromArgsErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("window: {width: 0}\n"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-fullscreen"}},
		{"missing value", []string{"-config"}},
		{"positional", []string{"cube.yaml"}},
		{"missing file", []string{"-config", filepath.Join(dir, "missing.yaml")}},
		{"invalid file", []string{"-config", invalid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, logger, err := FromArgs("flycam", tt.args, &stderr)
			require.Error(t, err)
			require.NotNil(t, logger, "a logger is always returned for reporting")
			logger.Error("failed", "err", err)
			assert.Contains(t, stderr.String(), "msg=failed")
		})
	}

	_, _, err := FromArgs("flycam", []string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("window: {unknown_field: 1}"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("camera: {position: [1, 2]}"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flycam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {title: two cubes}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "two cubes", cfg.Window.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger(t *testing.T) {
	cfg := Default()
	var buf bytes.Buffer
	logger := cfg.Logger(&buf)
	logger.Debug("hidden")
	logger.Info("shown", "frame", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown frame=1")
}

func TestExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "flycam.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"move_up": "Space", "move_down": "LeftShift"}, cfg.Controls.Bindings)

	// the example spells out the defaults
	cfg.Controls.Bindings = nil
	assert.Equal(t, Default(), cfg)
}
