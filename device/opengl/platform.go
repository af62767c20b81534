package opengl

import "github.com/andewx/riot/device"

// Drawable is the native drawing surface of a window (a device context on
// Windows).
type Drawable uintptr

// Context is a native rendering context handle.
type Context uintptr

// NoContext unbinds the current context when passed to MakeCurrent.
const NoContext Context = 0

// PixelFormat describes the framebuffer requested on the native surface.
type PixelFormat struct {
	DoubleBuffer bool
	RGBA         bool
	ColorBits    uint8
	DepthBits    uint8
}

// DefaultPixelFormat is the format probed on every surface.
var DefaultPixelFormat = PixelFormat{
	DoubleBuffer: true,
	RGBA:         true,
	ColorBits:    32,
	DepthBits:    32,
}

// Platform is the native context-creation API the OpenGL device drives.
// Implementations must not reorder or combine calls: the device relies on a
// legacy context being current while extensions are loaded.
type Platform interface {
	// Drawable resolves the drawing surface of a native window.
	Drawable(surface device.Surface) (Drawable, error)
	ReleaseDrawable(surface device.Surface, d Drawable) error

	// ChoosePixelFormat returns the closest matching format index, or 0.
	ChoosePixelFormat(d Drawable, pf PixelFormat) (int, error)
	SetPixelFormat(d Drawable, format int, pf PixelFormat) error

	// CreateContext creates a legacy context for d.
	CreateContext(d Drawable) (Context, error)
	MakeCurrent(d Drawable, c Context) error
	DeleteContext(c Context) error

	// LoadExtensions resolves the context-creation extension entry points.
	// A context must be current.
	LoadExtensions(d Drawable) error
	// Extensions lists the context-creation extensions supported for d.
	Extensions(d Drawable) ([]string, error)
	// CreateContextAttribs creates a context from a zero-terminated
	// attribute list of name/value pairs.
	CreateContextAttribs(d Drawable, share Context, attribs []int32) (Context, error)

	// SwapBuffers presents the back buffer. It blocks until the swap is done.
	SwapBuffers(d Drawable) error
}
