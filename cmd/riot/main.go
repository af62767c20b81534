package main

import (
	"os"
	"runtime"

	"github.com/andewx/riot/internal/cli"
	"github.com/andewx/riot/internal/logging"
)

// The window and the GL context are bound to the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
