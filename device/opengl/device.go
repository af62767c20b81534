// Package opengl implements the OpenGL 3.2 graphics device.
//
// The device does not call the operating system or GL directly. It drives a
// Platform (native context creation) and a GL function table, so the
// context-creation protocol can run against real drivers (see the wgl and
// glcore packages) or test doubles.
package opengl

import (
	"errors"
	"log/slog"

	"github.com/andewx/riot/device"
)

// Device is the OpenGL backend of device.Device.
type Device struct {
	platform Platform
	gl       GL
	logger   *slog.Logger

	format PixelFormat

	// Native context state, valid between Initialize and Shutdown.
	surface     device.Surface
	drawable    Drawable
	context     Context
	pixelFormat int
	vao         uint32
	version     string
	extensions  []string

	clearColor [4]float32
	clearDepth float32
	inFrame    bool

	buffers map[device.Buffer]bufferInfo
}

var _ device.Device = (*Device)(nil)
var _ device.BufferReader = (*Device)(nil)

// Option configures a Device.
type Option func(*Device)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(d *Device) {
		d.SetLogger(l)
	}
}

// WithPixelFormat overrides DefaultPixelFormat.
func WithPixelFormat(pf PixelFormat) Option {
	return func(d *Device) {
		d.format = pf
	}
}

// New creates an uninitialized OpenGL device.
func New(platform Platform, gl GL, opts ...Option) *Device {
	d := &Device{
		platform:   platform,
		gl:         gl,
		logger:     slog.New(slog.DiscardHandler),
		format:     DefaultPixelFormat,
		clearDepth: 1,
		buffers:    make(map[device.Buffer]bufferInfo),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Device) Type() device.Type { return device.TypeOpenGL }

// SetLogger replaces the device logger. Nil disables logging.
func (d *Device) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	d.logger = l.With("backend", device.TypeOpenGL.String())
}

// Version returns the GL_VERSION string of the live context.
func (d *Device) Version() string { return d.version }

// PixelFormatIndex returns the native pixel format chosen for the surface.
func (d *Device) PixelFormatIndex() int { return d.pixelFormat }

// Extensions returns the required and wanted extensions the platform
// reported for the live context.
func (d *Device) Extensions() []string { return d.extensions }

func (d *Device) live() bool { return d.context != NoContext }

// Shutdown deletes the vertex array and the rendering context and releases
// the drawable. It is a no-op on a device without a live context.
func (d *Device) Shutdown() error {
	if !d.live() && d.drawable == 0 {
		return nil
	}
	if d.vao != 0 {
		d.gl.DeleteVertexArray(d.vao)
	}
	err := d.release(NoContext)
	d.logger.Info("context destroyed")
	return err
}

// release unbinds and deletes every native object the device holds, plus the
// given bootstrap context when one is still alive.
func (d *Device) release(bootstrap Context) error {
	var errs []error
	if d.live() || bootstrap != NoContext {
		errs = append(errs, d.platform.MakeCurrent(0, NoContext))
	}
	if bootstrap != NoContext {
		errs = append(errs, d.platform.DeleteContext(bootstrap))
	}
	if d.live() {
		errs = append(errs, d.platform.DeleteContext(d.context))
	}
	if d.drawable != 0 {
		errs = append(errs, d.platform.ReleaseDrawable(d.surface, d.drawable))
	}

	d.surface = device.NullSurface
	d.drawable = 0
	d.context = NoContext
	d.pixelFormat = 0
	d.vao = 0
	d.version = ""
	d.extensions = nil
	d.inFrame = false
	d.buffers = make(map[device.Buffer]bufferInfo)
	return errors.Join(errs...)
}

func (d *Device) SetClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
	if d.live() {
		d.gl.ClearColor(r, g, b, a)
	}
}

func (d *Device) SetClearDepth(depth float32) {
	d.clearDepth = depth
	if d.live() {
		d.gl.ClearDepth(float64(depth))
	}
}

func (d *Device) BeginFrame() error {
	if !d.live() {
		return device.ErrNotInitialized
	}
	d.inFrame = true
	return nil
}

// Clear clears the color and depth buffers with the configured values.
func (d *Device) Clear() error {
	if !d.live() {
		return device.ErrNotInitialized
	}
	d.gl.Clear(COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT)
	return nil
}

// Present swaps the surface's buffers.
func (d *Device) Present() error {
	if !d.live() {
		return device.ErrNotInitialized
	}
	return d.platform.SwapBuffers(d.drawable)
}

func (d *Device) EndFrame() error {
	if !d.live() {
		return device.ErrNotInitialized
	}
	if !d.inFrame {
		return ErrFrameState
	}
	d.inFrame = false
	return nil
}
