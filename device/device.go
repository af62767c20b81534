// Package device defines the backend-agnostic graphics device used by the
// render engine and the registry of backend implementations.
//
// Exactly one Device is live at a time. Backends other than Null are
// registered by importing their driver package:
//
//	import _ "github.com/andewx/riot/device/opengl/driver"
package device

import "fmt"

// Type selects the backend variant of a Device.
type Type int

const (
	// TypeNull is the headless backend, registered by this package.
	TypeNull Type = iota
	// TypeOpenGL is the OpenGL 3.2 backend, registered by the driver package.
	TypeOpenGL
	// TypeDirect3D is declared for API compatibility only. No backend exists
	// for it and requesting it always fails with ErrUnsupportedBackend.
	TypeDirect3D
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeOpenGL:
		return "opengl"
	case TypeDirect3D:
		return "direct3d"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType converts a backend name (as used in configuration) into a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "null", "Null", "":
		return TypeNull, nil
	case "opengl", "OpenGL", "gl":
		return TypeOpenGL, nil
	case "direct3d", "Direct3D", "d3d":
		return TypeDirect3D, nil
	}
	return TypeNull, fmt.Errorf("%w: %q", ErrUnsupportedBackend, name)
}

// Surface is the opaque native window handle (HWND on Windows) the device
// renders into. The device never owns the window.
type Surface uintptr

// NullSurface is used for headless devices.
const NullSurface Surface = 0

// Shader is an opaque handle to a compiled backend shader object.
type Shader uint32

// Buffer is an opaque handle to a backend buffer object. The backing memory
// belongs to the backend context.
type Buffer uint32

// ShaderStage is the pipeline stage a shader is compiled for.
type ShaderStage int

const (
	// StageVertex shaders run per vertex.
	StageVertex ShaderStage = iota
	// StagePixel shaders run per fragment.
	StagePixel
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StagePixel:
		return "pixel"
	}
	return fmt.Sprintf("ShaderStage(%d)", int(s))
}

// Device is the uniform operation set every backend implements.
//
// All calls must come from the single thread that owns the native context.
type Device interface {
	// Type reports which backend variant this is.
	Type() Type

	// Initialize establishes the native rendering context for surface.
	Initialize(surface Surface) error

	// Shutdown releases the native context. Calling it on a device that was
	// never initialized, or twice, is a no-op.
	Shutdown() error

	// SetClearColor and SetClearDepth configure the values used by Clear.
	SetClearColor(r, g, b, a float32)
	SetClearDepth(d float32)

	// Frame bracketing. Clear clears color and depth, Present publishes the
	// completed frame to the surface and blocks until the swap is done.
	BeginFrame() error
	Clear() error
	Present() error
	EndFrame() error

	// CreateVertexShader and CreatePixelShader compile source text in the
	// backend's native shading language. Compile failures are returned as
	// *ShaderCompileError.
	CreateVertexShader(source string) (Shader, error)
	CreatePixelShader(source string) (Shader, error)

	// CreateVertexBuffer and CreateIndexBuffer upload size bytes of data as
	// static draw data. A nil data slice reserves storage only.
	CreateVertexBuffer(size int, data []byte) (Buffer, error)
	CreateIndexBuffer(size int, data []byte) (Buffer, error)
}

// BufferReader is implemented by backends that can read buffer contents back
// from the native context.
type BufferReader interface {
	ReadBuffer(b Buffer) ([]byte, error)
}

// CheckBufferData validates a buffer upload request and returns exactly the
// bytes to upload. A nil result with a nil error means "reserve only".
func CheckBufferData(size int, data []byte) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if data == nil {
		return nil, nil
	}
	if len(data) < size {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrShortData, len(data), size)
	}
	return data[:size], nil
}
