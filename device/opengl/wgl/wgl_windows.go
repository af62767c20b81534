//go:build windows

package wgl

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/andewx/riot/device"
	"github.com/andewx/riot/device/opengl"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	_GetDC     = user32.NewProc("GetDC")
	_ReleaseDC = user32.NewProc("ReleaseDC")

	gdi32 = windows.NewLazySystemDLL("gdi32.dll")

	_ChoosePixelFormat = gdi32.NewProc("ChoosePixelFormat")
	_SetPixelFormat    = gdi32.NewProc("SetPixelFormat")
	_SwapBuffers       = gdi32.NewProc("SwapBuffers")

	opengl32 = windows.NewLazySystemDLL("opengl32.dll")

	_wglCreateContext  = opengl32.NewProc("wglCreateContext")
	_wglMakeCurrent    = opengl32.NewProc("wglMakeCurrent")
	_wglDeleteContext  = opengl32.NewProc("wglDeleteContext")
	_wglGetProcAddress = opengl32.NewProc("wglGetProcAddress")
)

// Platform drives WGL for a window handle (HWND) surface.
type Platform struct {
	// ARB entry points, resolved by LoadExtensions.
	getExtensionsString  uintptr
	createContextAttribs uintptr
}

// New returns a WGL platform. Extension entry points are resolved lazily by
// LoadExtensions once a context is current.
func New() *Platform { return &Platform{} }

func (p *Platform) Drawable(surface device.Surface) (opengl.Drawable, error) {
	if surface == device.NullSurface {
		return 0, fmt.Errorf("wgl: GetDC: null window handle")
	}
	hdc, _, err := _GetDC.Call(uintptr(surface))
	if hdc == 0 {
		return 0, fmt.Errorf("wgl: GetDC: %w", err)
	}
	return opengl.Drawable(hdc), nil
}

func (p *Platform) ReleaseDrawable(surface device.Surface, d opengl.Drawable) error {
	r, _, _ := _ReleaseDC.Call(uintptr(surface), uintptr(d))
	if r == 0 {
		return fmt.Errorf("wgl: ReleaseDC failed")
	}
	return nil
}

func (p *Platform) ChoosePixelFormat(d opengl.Drawable, pf opengl.PixelFormat) (int, error) {
	pfd := newPixelFormatDescriptor(pf)
	r, _, err := _ChoosePixelFormat.Call(uintptr(d), uintptr(unsafe.Pointer(&pfd)))
	if r == 0 {
		return 0, fmt.Errorf("wgl: ChoosePixelFormat: %w", err)
	}
	return int(r), nil
}

func (p *Platform) SetPixelFormat(d opengl.Drawable, format int, pf opengl.PixelFormat) error {
	pfd := newPixelFormatDescriptor(pf)
	r, _, err := _SetPixelFormat.Call(uintptr(d), uintptr(format), uintptr(unsafe.Pointer(&pfd)))
	if r == 0 {
		return fmt.Errorf("wgl: SetPixelFormat: %w", err)
	}
	return nil
}

func (p *Platform) CreateContext(d opengl.Drawable) (opengl.Context, error) {
	r, _, err := _wglCreateContext.Call(uintptr(d))
	if r == 0 {
		return opengl.NoContext, fmt.Errorf("wgl: wglCreateContext: %w", err)
	}
	return opengl.Context(r), nil
}

func (p *Platform) MakeCurrent(d opengl.Drawable, c opengl.Context) error {
	r, _, err := _wglMakeCurrent.Call(uintptr(d), uintptr(c))
	if r == 0 {
		return fmt.Errorf("wgl: wglMakeCurrent: %w", err)
	}
	return nil
}

func (p *Platform) DeleteContext(c opengl.Context) error {
	r, _, err := _wglDeleteContext.Call(uintptr(c))
	if r == 0 {
		return fmt.Errorf("wgl: wglDeleteContext: %w", err)
	}
	return nil
}

// LoadExtensions resolves the WGL ARB entry points of the current context.
func (p *Platform) LoadExtensions(d opengl.Drawable) error {
	var err error
	if p.getExtensionsString, err = procAddress("wglGetExtensionsStringARB"); err != nil {
		return err
	}
	// wglCreateContextAttribsARB is optional here; its absence is reported
	// by the capability check through the extension string.
	p.createContextAttribs, _ = procAddress("wglCreateContextAttribsARB")
	return nil
}

func (p *Platform) Extensions(d opengl.Drawable) ([]string, error) {
	if p.getExtensionsString == 0 {
		return nil, fmt.Errorf("wgl: extensions not loaded")
	}
	r, _, _ := syscall.SyscallN(p.getExtensionsString, uintptr(d))
	if r == 0 {
		return nil, fmt.Errorf("wgl: wglGetExtensionsStringARB returned no extensions")
	}
	return opengl.ParseExtensions(windows.BytePtrToString((*byte)(unsafe.Pointer(r)))), nil
}

func (p *Platform) CreateContextAttribs(d opengl.Drawable, share opengl.Context, attribs []int32) (opengl.Context, error) {
	if p.createContextAttribs == 0 {
		return opengl.NoContext, fmt.Errorf("wgl: wglCreateContextAttribsARB not loaded")
	}
	if len(attribs) == 0 || attribs[len(attribs)-1] != 0 {
		return opengl.NoContext, fmt.Errorf("wgl: attribute list must be zero terminated")
	}
	r, _, err := syscall.SyscallN(p.createContextAttribs, uintptr(d), uintptr(share), uintptr(unsafe.Pointer(&attribs[0])))
	if r == 0 {
		return opengl.NoContext, fmt.Errorf("wgl: wglCreateContextAttribsARB: %w", err)
	}
	return opengl.Context(r), nil
}

func (p *Platform) SwapBuffers(d opengl.Drawable) error {
	r, _, err := _SwapBuffers.Call(uintptr(d))
	if r == 0 {
		return fmt.Errorf("wgl: SwapBuffers: %w", err)
	}
	return nil
}

// procAddress looks up an extension function. wglGetProcAddress signals
// failure with 0 and, on some drivers, with the values 1, 2, 3 or -1.
func procAddress(name string) (uintptr, error) {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0, err
	}
	r, _, _ := _wglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	switch r {
	case 0, 1, 2, 3, ^uintptr(0):
		return 0, fmt.Errorf("wgl: %s not available", name)
	}
	return r, nil
}
