//go:build !windows

package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/andewx/riot/device"
)

func nativeHandle(*glfw.Window) device.Surface { return device.NullSurface }
