package opengl

import (
	"strings"

	"github.com/andewx/riot/device"
)

func (d *Device) CreateVertexShader(source string) (device.Shader, error) {
	return d.compileShader(device.StageVertex, source)
}

// CreatePixelShader compiles a GLSL fragment shader.
func (d *Device) CreatePixelShader(source string) (device.Shader, error) {
	return d.compileShader(device.StagePixel, source)
}

func shaderType(stage device.ShaderStage) uint32 {
	if stage == device.StagePixel {
		return FRAGMENT_SHADER
	}
	return VERTEX_SHADER
}

// compileShader returns the GL shader name as the handle. Names of live
// shader objects are never handed out twice by GL and compiled shaders are
// never deleted, so handles stay unique for the context's lifetime.
func (d *Device) compileShader(stage device.ShaderStage, source string) (device.Shader, error) {
	if !d.live() {
		return 0, device.ErrNotInitialized
	}

	shader := d.gl.CreateShader(shaderType(stage))
	if shader == 0 {
		if err := newError(d.gl.GetError()); err != nil {
			return 0, err
		}
		return 0, &device.ShaderCompileError{Stage: stage, Log: "shader object not created"}
	}
	d.gl.ShaderSource(shader, source)
	d.gl.CompileShader(shader)

	if d.gl.GetShaderiv(shader, COMPILE_STATUS) == FALSE {
		log := strings.TrimRight(d.gl.GetShaderInfoLog(shader), "\x00 \r\n\t")
		d.gl.DeleteShader(shader)
		if log == "" {
			log = "compile failed without a diagnostic log"
		}
		d.logger.Warn("shader compile failed", "stage", stage, "log", log)
		return 0, &device.ShaderCompileError{Stage: stage, Log: log}
	}

	d.logger.Debug("shader compiled", "stage", stage, "shader", shader)
	return device.Shader(shader), nil
}
