package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
)

// FromArgs parses the command line shared by the demo programs and loads
// the settings it names. The logger writes to stderr at the configured
// level; when loading fails it is a default logger for reporting the error.
func FromArgs(name string, args []string, stderr io.Writer) (Config, *slog.Logger, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "YAML settings file (defaults apply when empty)")

	fallback := Default().Logger(stderr)
	if err := fs.Parse(args); err != nil {
		return Config{}, fallback, err
	}
	if fs.NArg() > 0 {
		return Config{}, fallback, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	cfg, err := Load(*path)
	if err != nil {
		return Config{}, fallback, err
	}
	return cfg, cfg.Logger(stderr), nil
}
