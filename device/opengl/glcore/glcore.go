// Package glcore binds the opengl.GL function table to the OpenGL 3.2 core
// profile through go-gl. It requires cgo and the system GL headers.
package glcore

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/andewx/riot/device/opengl"
)

// Functions implements opengl.GL. The zero value is ready to use once a
// context is current and Init has been called.
type Functions struct{}

var _ opengl.GL = Functions{}

// New returns the go-gl function table.
func New() Functions { return Functions{} }

func (Functions) Init() error { return gl.Init() }

func (Functions) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Functions) GetError() uint32 { return gl.GetError() }

func (Functions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Functions) ClearDepth(d float64)          { gl.ClearDepth(d) }
func (Functions) Clear(mask uint32)             { gl.Clear(mask) }

func (Functions) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Functions) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Functions) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Functions) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (Functions) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Functions) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Functions) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Functions) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Functions) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Functions) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Functions) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Functions) BufferData(target uint32, size int, data []byte, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, size, nil, usage)
		return
	}
	gl.BufferData(target, size, gl.Ptr(data), usage)
}

func (Functions) GetBufferSubData(target uint32, offset, size int) []byte {
	out := make([]byte, size)
	if size > 0 {
		gl.GetBufferSubData(target, offset, size, gl.Ptr(out))
	}
	return out
}

func (Functions) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }
