package opengl

// GL is the subset of the OpenGL 3.2 core function table used by the device.
// Enum arguments use the standard GL values declared below.
type GL interface {
	// Init loads the function table for the current context.
	Init() error
	GetString(name uint32) string
	GetError() uint32

	ClearColor(r, g, b, a float32)
	ClearDepth(d float64)
	Clear(mask uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data []byte, usage uint32)
	GetBufferSubData(target uint32, offset, size int) []byte
	DeleteBuffer(buffer uint32)
}

// GL enums.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	VERSION = 0x1F02

	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	INFO_LOG_LENGTH = 0x8B84

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4
)
