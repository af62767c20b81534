package device

import (
	"errors"
	"fmt"
)

// Common device errors.
var (
	// ErrUnsupportedBackend is returned for device types that have no
	// implementation (Direct3D) or are not recognized at all.
	ErrUnsupportedBackend = errors.New("device: unsupported backend")

	// ErrBackendNotAvailable is returned when a known backend has no
	// registered factory in this binary.
	ErrBackendNotAvailable = errors.New("device: backend not available")

	// ErrNotInitialized is returned when operations are called before Initialize.
	ErrNotInitialized = errors.New("device: not initialized")

	// ErrInvalidSize is returned for negative buffer sizes.
	ErrInvalidSize = errors.New("device: invalid buffer size")

	// ErrShortData is returned when data holds fewer bytes than requested.
	ErrShortData = errors.New("device: buffer data shorter than size")

	// ErrUnknownBuffer is returned when reading back a handle the device did not issue.
	ErrUnknownBuffer = errors.New("device: unknown buffer")
)

// InitStage names a step of native context creation.
type InitStage string

const (
	StageProbe           InitStage = "probe"
	StageBootstrap       InitStage = "bootstrap"
	StageExtensionLoad   InitStage = "extension-load"
	StageCapabilityCheck InitStage = "capability-check"
	StageUpgrade         InitStage = "upgrade"
	StageSurfaceSetup    InitStage = "surface-setup"
)

// InitError reports a failure while a backend establishes its native
// context. The device cannot be used after an InitError.
type InitError struct {
	Backend Type
	Stage   InitStage
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("device: %s init failed at %s: %v", e.Backend, e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ShaderCompileError carries the backend diagnostic log of a failed compile.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("device: %s shader compile failed: %s", e.Stage, e.Log)
}
