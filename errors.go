package riot

import "errors"

var (
	// ErrRegistryFull is returned when a shader or material table has no
	// free slot.
	ErrRegistryFull = errors.New("riot: registry full")

	// ErrNotReady is returned by operations that need a working device while
	// the engine status is not StatusOK.
	ErrNotReady = errors.New("riot: engine not ready")

	// ErrAlreadyInitialized is returned by Initialize on an engine that has
	// not been shut down.
	ErrAlreadyInitialized = errors.New("riot: engine already initialized")

	// ErrInvalidShader is returned by CreateMaterial for an unknown or retired
	// shader id, or a shader of the wrong stage.
	ErrInvalidShader = errors.New("riot: invalid shader")
)
