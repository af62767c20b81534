// Package riot is the render engine facade. An Engine owns exactly one
// graphics device at a time, drives the per-frame sequence on it and keeps
// fixed-size tables of the shaders and materials created through it.
//
// The engine is single-threaded: every call must come from the goroutine
// that locked the OS thread the device's native context is current on.
package riot

import (
	"fmt"
	"log/slog"

	"github.com/andewx/riot/device"
)

// Engine is the render engine facade. The zero value is not usable; call New.
type Engine struct {
	opts     options
	logger   *slog.Logger
	status   RenderStatus
	windowed bool

	dev  device.Device
	null device.Device
	reg  *registry
}

// New creates an uninitialized engine.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o, logger: o.logger}
}

// Initialize allocates the resource registry and brings up the headless Null
// device, so the engine is usable before a surface exists. Call CreateDevice
// to switch to a native backend.
func (e *Engine) Initialize(windowed bool) error {
	if e.reg != nil {
		return ErrAlreadyInitialized
	}
	e.reg = new(registry)
	e.windowed = windowed

	if err := e.CreateDevice(device.NullSurface, device.TypeNull); err != nil {
		e.reg = nil
		e.null = nil
		e.windowed = false
		return err
	}
	e.logger.Info("engine initialized", "windowed", windowed)
	return nil
}

// Shutdown releases the active device and the registry. Calling it on an
// engine that is not initialized does nothing.
func (e *Engine) Shutdown() error {
	if e.reg == nil && e.dev == nil {
		e.status = StatusUninitialized
		return nil
	}
	var err error
	if e.dev != nil {
		err = e.dev.Shutdown()
		e.dev = nil
	}
	e.reg = nil
	e.null = nil
	e.windowed = false
	e.status = StatusUninitialized
	e.logger.Info("engine shut down")
	return err
}

// frameStep is one stage of Frame.
type frameStep struct {
	name string
	fn   func() error
}

// Frame runs one frame on the active device: BeginFrame, Clear, Present and
// EndFrame, in that order. The first failing step ends the frame and puts
// the engine into StatusError.
func (e *Engine) Frame() error {
	if e.status != StatusOK {
		return fmt.Errorf("%w: status %s", ErrNotReady, e.status)
	}
	steps := [...]frameStep{
		{"begin", e.dev.BeginFrame},
		{"clear", e.dev.Clear},
		{"present", e.dev.Present},
		{"end", e.dev.EndFrame},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			e.status = StatusError
			e.logger.Error("frame failed", "step", s.name, "error", err)
			return fmt.Errorf("riot: frame %s: %w", s.name, err)
		}
	}
	return nil
}

// Status returns the engine lifecycle state.
func (e *Engine) Status() RenderStatus { return e.status }

// Windowed reports the mode passed to Initialize.
func (e *Engine) Windowed() bool { return e.windowed }

// Device returns the active device, or nil if there is none.
func (e *Engine) Device() device.Device { return e.dev }

// DeviceType returns the type of the active device. ok is false when the
// engine has no device.
func (e *Engine) DeviceType() (t device.Type, ok bool) {
	if e.dev == nil {
		return device.TypeNull, false
	}
	return e.dev.Type(), true
}

// SetLogger replaces the engine logger and hands it to the active device.
// Nil disables logging.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	e.logger = l
	if e.dev != nil {
		propagateLogger(e.dev, l)
	}
}
