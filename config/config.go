// Package config loads demo settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/paperboard/flycam/camera"
	"github.com/paperboard/flycam/input"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Controls   Controls   `yaml:"controls"`
	Log        Log        `yaml:"log"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// FrameDelay is slept after every swap.
	FrameDelay time.Duration `yaml:"frame_delay"`
}

type Camera struct {
	Position       mgl32.Vec3 `yaml:"position"`
	Target         mgl32.Vec3 `yaml:"target"`
	WorldUp        mgl32.Vec3 `yaml:"world_up"`
	PlanarMovement bool       `yaml:"planar_movement"`
	PitchClamp     PitchClamp `yaml:"pitch_clamp"`
}

type PitchClamp struct {
	Enabled bool    `yaml:"enabled"`
	Min     float32 `yaml:"min"`
	Max     float32 `yaml:"max"`
}

type Projection struct {
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

type Controls struct {
	MoveSpeed        float32           `yaml:"move_speed"`
	RotateSpeed      float32           `yaml:"rotate_speed"`
	MouseSensitivity float32           `yaml:"mouse_sensitivity"`
	CaptureMouse     bool              `yaml:"capture_mouse"`
	Bindings         map[string]string `yaml:"bindings"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Default returns the single-cube demo settings.
func Default() Config {
	s := input.DefaultSettings()
	return Config{
		Window: Window{
			Width:      800,
			Height:     800,
			Title:      "flycam",
			FrameDelay: 10 * time.Millisecond,
		},
		Camera: Camera{
			Position:       mgl32.Vec3{4, 0, 0},
			Target:         mgl32.Vec3{0, 0, 0},
			WorldUp:        mgl32.Vec3{0, 1, 0},
			PlanarMovement: true,
			PitchClamp:     PitchClamp{Min: -89, Max: 89},
		},
		Projection: Projection{FovDegrees: 45, Near: 0.1, Far: 100},
		Controls: Controls{
			MoveSpeed:        s.MoveSpeed,
			RotateSpeed:      s.RotateSpeed,
			MouseSensitivity: s.MouseSensitivity,
			CaptureMouse:     true,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes YAML from r over the defaults.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML bytes over the defaults.
func Parse(data []byte) (Config, error) {
	return Read(bytes.NewReader(data))
}

// Validate checks ranges and binding overrides. Overrides are only checked
// on their own here; key clashes depend on the base set they are merged
// onto and are reported by Bindings.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FrameDelay < 0:
		return fmt.Errorf("%w: negative frame delay %v", ErrInvalid, c.Window.FrameDelay)
	case c.Camera.WorldUp.Len() == 0:
		return fmt.Errorf("%w: zero world_up", ErrInvalid)
	case c.Camera.Position == c.Camera.Target:
		return fmt.Errorf("%w: camera target equals position", ErrInvalid)
	case c.Camera.PitchClamp.Enabled && c.Camera.PitchClamp.Min > c.Camera.PitchClamp.Max:
		return fmt.Errorf("%w: pitch clamp min %v above max %v", ErrInvalid, c.Camera.PitchClamp.Min, c.Camera.PitchClamp.Max)
	case c.Projection.FovDegrees <= 0 || c.Projection.FovDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %v outside (0, 180)", ErrInvalid, c.Projection.FovDegrees)
	case c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Projection.Near, c.Projection.Far)
	case c.Controls.MoveSpeed < 0 || c.Controls.RotateSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalid)
	}
	if _, err := c.overrides(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Bindings applies the configured key overrides on top of base.
func (c Config) Bindings(base input.Bindings) (input.Bindings, error) {
	override, err := c.overrides()
	if err != nil {
		return nil, err
	}
	b := base.Merge(override)
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: bindings: %v", ErrInvalid, err)
	}
	return b, nil
}

func (c Config) overrides() (input.Bindings, error) {
	override := make(input.Bindings, len(c.Controls.Bindings))
	for name, key := range c.Controls.Bindings {
		a, err := input.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("%w: bindings: %v", ErrInvalid, err)
		}
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: bindings: empty key for %v", ErrInvalid, a)
		}
		override[a] = key
	}
	return override, nil
}

// Settings returns the controller speeds.
func (c Config) Settings() input.Settings {
	return input.Settings{
		MoveSpeed:        c.Controls.MoveSpeed,
		RotateSpeed:      c.Controls.RotateSpeed,
		MouseSensitivity: c.Controls.MouseSensitivity,
	}
}

// NewCamera builds the configured camera.
func (c Config) NewCamera() *camera.Camera {
	up := c.Camera.WorldUp
	opts := []camera.Option{
		camera.WithWorldUp(up[0], up[1], up[2]),
		camera.WithPlanarMovement(c.Camera.PlanarMovement),
	}
	if c.Camera.PitchClamp.Enabled {
		opts = append(opts, camera.WithPitchClamp(c.Camera.PitchClamp.Min, c.Camera.PitchClamp.Max))
	}
	return camera.New(c.Camera.Position, c.Camera.Target, opts...)
}

// ProjectionFor returns the configured frustum for the window aspect ratio.
func (c Config) ProjectionFor(width, height int) camera.Projection {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return camera.Projection{
		FovY:   c.Projection.FovDegrees,
		Aspect: aspect,
		Near:   c.Projection.Near,
		Far:    c.Projection.Far,
	}
}

// LogLevel parses the configured level name.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
