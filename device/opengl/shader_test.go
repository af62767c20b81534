package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andewx/riot/device"
)

const (
	vertexSource = `#version 150
in vec3 position;
void main() { gl_Position = vec4(position, 1.0); }
`
	pixelSource = `#version 150
out vec4 color;
void main() { color = vec4(1.0); }
`
)

func TestCreateShaders(t *testing.T) {
	d, _, gl := newTestDevice()
	_, err := d.CreateVertexShader(vertexSource)
	assert.ErrorIs(t, err, device.ErrNotInitialized)

	require.NoError(t, d.Initialize(1))

	seen := map[device.Shader]bool{}
	for i := 0; i < 4; i++ {
		vs, err := d.CreateVertexShader(vertexSource)
		require.NoError(t, err)
		ps, err := d.CreatePixelShader(pixelSource)
		require.NoError(t, err)

		assert.False(t, seen[vs])
		assert.False(t, seen[ps])
		seen[vs], seen[ps] = true, true

		assert.Equal(t, uint32(VERTEX_SHADER), gl.shaders[uint32(vs)].xtype)
		assert.Equal(t, uint32(FRAGMENT_SHADER), gl.shaders[uint32(ps)].xtype)
	}
	assert.Len(t, seen, 8)
}

func TestCreateShaderCompileError(t *testing.T) {
	d, _, gl := newTestDevice()
	require.NoError(t, d.Initialize(1))

	_, err := d.CreatePixelShader("#version 150\nout vec4 color;\n")
	require.Error(t, err)

	var compileErr *device.ShaderCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, device.StagePixel, compileErr.Stage)
	assert.NotEmpty(t, compileErr.Log)
	assert.Equal(t, "0:1(1): error: syntax error, unexpected end of file", compileErr.Log)

	// the failed object is not kept around
	assert.Empty(t, gl.shaders)
}

func TestCreateShaderGLError(t *testing.T) {
	d, _, gl := newTestDevice()
	require.NoError(t, d.Initialize(1))

	d.gl = &noShaderGL{fakeGL: gl}
	gl.errors = []uint32{INVALID_ENUM}

	_, err := d.CreateVertexShader(vertexSource)
	var glErr *Error
	require.ErrorAs(t, err, &glErr)
	assert.Equal(t, uint32(INVALID_ENUM), glErr.Code)
	assert.Contains(t, err.Error(), "invalid enum")
}

type noShaderGL struct{ *fakeGL }

func (noShaderGL) CreateShader(uint32) uint32 { return 0 }
