// Package driver registers the native OpenGL backend with the device
// registry. Import it for its side effect:
//
//	import _ "github.com/andewx/riot/device/opengl/driver"
package driver

import (
	"github.com/andewx/riot/device"
	"github.com/andewx/riot/device/opengl"
	"github.com/andewx/riot/device/opengl/glcore"
	"github.com/andewx/riot/device/opengl/wgl"
)

func init() {
	device.Register(device.TypeOpenGL, New)
}

// New returns an OpenGL device backed by WGL and the go-gl function table.
func New() device.Device {
	return opengl.New(wgl.New(), glcore.New())
}
