package riot

import (
	"fmt"

	"github.com/andewx/riot/device"
)

// CreateVertexShader compiles source on the active device and records the
// shader in the registry. Compile failures are returned as
// *device.ShaderCompileError.
func (e *Engine) CreateVertexShader(source string) (ShaderID, error) {
	return e.createShader(device.StageVertex, source)
}

// CreatePixelShader is the pixel stage counterpart of CreateVertexShader.
func (e *Engine) CreatePixelShader(source string) (ShaderID, error) {
	return e.createShader(device.StagePixel, source)
}

func (e *Engine) createShader(stage device.ShaderStage, source string) (ShaderID, error) {
	if err := e.ready(); err != nil {
		return -1, err
	}
	if e.reg.numShaders == MaxShaders {
		return -1, fmt.Errorf("%w: %d shaders", ErrRegistryFull, MaxShaders)
	}

	var (
		h   device.Shader
		err error
	)
	switch stage {
	case device.StageVertex:
		h, err = e.dev.CreateVertexShader(source)
	case device.StagePixel:
		h, err = e.dev.CreatePixelShader(source)
	}
	if err != nil {
		return -1, err
	}

	id := e.reg.addShader(stage, h)
	e.logger.Debug("shader created", "id", id, "stage", stage, "handle", h)
	return id, nil
}

// CreateMaterial records a material built from a vertex shader and a pixel
// shader previously created on this engine.
func (e *Engine) CreateMaterial(vs, ps ShaderID) (MaterialID, error) {
	if err := e.ready(); err != nil {
		return -1, err
	}
	if err := e.checkShader(vs, device.StageVertex); err != nil {
		return -1, err
	}
	if err := e.checkShader(ps, device.StagePixel); err != nil {
		return -1, err
	}
	if e.reg.numMaterials == MaxMaterials {
		return -1, fmt.Errorf("%w: %d materials", ErrRegistryFull, MaxMaterials)
	}
	return e.reg.addMaterial(Material{VertexShader: vs, PixelShader: ps}), nil
}

func (e *Engine) checkShader(id ShaderID, stage device.ShaderStage) error {
	s, ok := e.reg.shader(id)
	if !ok {
		return fmt.Errorf("%w: unknown or retired id %d", ErrInvalidShader, id)
	}
	if s.stage != stage {
		return fmt.Errorf("%w: shader %d is a %s shader, want %s", ErrInvalidShader, id, s.stage, stage)
	}
	return nil
}

// Shader returns the device handle of a registered shader. Shaders created
// on a device that has since been replaced are not reported.
func (e *Engine) Shader(id ShaderID) (device.Shader, bool) {
	if e.reg == nil {
		return 0, false
	}
	s, ok := e.reg.shader(id)
	return s.handle, ok
}

// Material returns a registered material of the active device.
func (e *Engine) Material(id MaterialID) (Material, bool) {
	if e.reg == nil {
		return Material{}, false
	}
	return e.reg.material(id)
}

// NumShaders returns the number of shader ids issued in this session,
// including those retired by CreateDevice.
func (e *Engine) NumShaders() int {
	if e.reg == nil {
		return 0
	}
	return e.reg.numShaders
}

// NumMaterials returns the number of material ids issued in this session.
func (e *Engine) NumMaterials() int {
	if e.reg == nil {
		return 0
	}
	return e.reg.numMaterials
}

func (e *Engine) ready() error {
	if e.status != StatusOK {
		return fmt.Errorf("%w: status %s", ErrNotReady, e.status)
	}
	return nil
}
