// Package window owns the application's native display: a glfw window whose
// handle is handed to the graphics device as its surface.
//
// glfw must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before Open.
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/andewx/riot/device"
)

// Options describes the display to open.
type Options struct {
	Title    string
	Width    int
	Height   int
	Windowed bool
}

// Display wraps a glfw window.
type Display struct {
	window *glfw.Window
}

type hint struct {
	target glfw.Hint
	value  int
}

// hints returns the window hints for opts. The client API is disabled since
// the graphics device creates its own context on the native handle.
func hints(opts Options) []hint {
	h := []hint{
		{glfw.ClientAPI, glfw.NoAPI},
		{glfw.Visible, glfw.True},
		{glfw.Focused, glfw.True},
	}
	if opts.Windowed {
		h = append(h, hint{glfw.Resizable, glfw.True}, hint{glfw.Decorated, glfw.True})
	} else {
		h = append(h, hint{glfw.Resizable, glfw.False}, hint{glfw.Decorated, glfw.False})
	}
	return h
}

// Open initializes glfw and creates the display. In fullscreen mode the
// window covers the primary monitor at its current video mode.
func Open(opts Options) (*Display, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}
	glfw.DefaultWindowHints()
	for _, h := range hints(opts) {
		glfw.WindowHint(h.target, h.value)
	}

	width, height := opts.Width, opts.Height
	var monitor *glfw.Monitor
	if !opts.Windowed {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			if mode := monitor.GetVideoMode(); mode != nil {
				width, height = mode.Width, mode.Height
			}
		}
	}

	w, err := glfw.CreateWindow(width, height, opts.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create: %w", err)
	}
	return &Display{window: w}, nil
}

// Surface returns the native window handle for the graphics device. It is
// device.NullSurface on platforms without a native backend.
func (d *Display) Surface() device.Surface {
	return nativeHandle(d.window)
}

// GetSize returns the window size in screen coordinates.
func (d *Display) GetSize() (int, int) {
	return d.window.GetSize()
}

func (d *Display) ShouldClose() bool {
	return d.window.ShouldClose()
}

func (d *Display) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates glfw.
func (d *Display) Close() {
	if d.window != nil {
		d.window.Destroy()
		d.window = nil
	}
	glfw.Terminate()
}
