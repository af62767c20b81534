//go:build windows

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/andewx/riot/device"
)

func nativeHandle(w *glfw.Window) device.Surface {
	return device.Surface(uintptr(unsafe.Pointer(w.GetWin32Window())))
}
