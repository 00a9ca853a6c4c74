// Command flycam-cube flies a camera around a single colour cube.
package main

import (
	"errors"
	"flag"
	"os"
	"runtime"

	"github.com/paperboard/flycam/config"
	"github.com/paperboard/flycam/demo"
	"github.com/paperboard/flycam/geometry"
	"github.com/paperboard/flycam/input"
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	cfg, logger, err := config.FromArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	err = demo.Run(cfg, demo.Options{
		Layout:   geometry.SingleCube(),
		Bindings: input.DefaultBindings(),
	}, logger)
	if err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}

}
