package riot

import (
	"fmt"

	"github.com/andewx/riot/device"
)

// CreateDevice replaces the active device with a new backend of type typ
// bound to surface.
//
// Direct3D and unknown types are rejected before anything else happens. For
// supported types the current device is shut down first, since only one
// native context may be live. Resources created on it are not migrated:
// their shader and material ids stay taken but no longer resolve. On failure
// the engine has no device and its status is StatusError. Initialization
// failures are returned as *device.InitError.
func (e *Engine) CreateDevice(surface device.Surface, typ device.Type) error {
	if typ != device.TypeNull && typ != device.TypeOpenGL {
		return fmt.Errorf("%w: %s", device.ErrUnsupportedBackend, typ)
	}
	if e.reg == nil {
		return fmt.Errorf("%w: engine not initialized", ErrNotReady)
	}

	if e.dev != nil {
		if err := e.dev.Shutdown(); err != nil {
			e.logger.Warn("shutting down previous device", "device", e.dev.Type(), "error", err)
		}
		e.dev = nil
		e.reg.retire()
	}

	dev, err := e.newDevice(typ)
	if err != nil {
		return e.fail(typ, err)
	}
	propagateLogger(dev, e.logger)

	if err := dev.Initialize(surface); err != nil {
		return e.fail(typ, err)
	}
	c := e.opts.clearColor
	dev.SetClearColor(c[0], c[1], c[2], c[3])
	dev.SetClearDepth(e.opts.clearDepth)

	e.dev = dev
	e.status = StatusOK
	e.logger.Info("device created", "device", typ)
	return nil
}

// newDevice builds a backend from the device registry. The Null device is
// kept for the whole session so its handles keep counting up when the
// engine switches back to it.
func (e *Engine) newDevice(typ device.Type) (device.Device, error) {
	if typ != device.TypeNull {
		return device.New(typ)
	}
	if e.null == nil {
		dev, err := device.New(device.TypeNull)
		if err != nil {
			return nil, err
		}
		e.null = dev
	}
	return e.null, nil
}

func (e *Engine) fail(typ device.Type, err error) error {
	e.status = StatusError
	e.logger.Error("device creation failed", "device", typ, "error", err)
	return err
}
