package riot

import "github.com/andewx/riot/device"

// Registry capacities.
const (
	MaxShaders   = 16
	MaxMaterials = 16
)

// ShaderID indexes the engine's shader table.
type ShaderID int

// MaterialID indexes the engine's material table.
type MaterialID int

// Material pairs a vertex shader with a pixel shader.
type Material struct {
	VertexShader ShaderID
	PixelShader  ShaderID
}

type shaderEntry struct {
	stage      device.ShaderStage
	handle     device.Shader
	generation int
}

type materialEntry struct {
	Material
	generation int
}

// registry holds the per-session resource tables. It is allocated zeroed at
// Initialize and dropped at Shutdown. Slots are never freed in between: ids
// keep counting up across device switches, and entries created on a device
// that has since been replaced stay allocated but no longer resolve.
type registry struct {
	shaders      [MaxShaders]shaderEntry
	numShaders   int
	materials    [MaxMaterials]materialEntry
	numMaterials int

	// generation counts device replacements within the session.
	generation int
}

// retire invalidates every entry created so far.
func (r *registry) retire() { r.generation++ }

func (r *registry) addShader(stage device.ShaderStage, h device.Shader) ShaderID {
	id := ShaderID(r.numShaders)
	r.shaders[id] = shaderEntry{stage: stage, handle: h, generation: r.generation}
	r.numShaders++
	return id
}

func (r *registry) shader(id ShaderID) (shaderEntry, bool) {
	if id < 0 || int(id) >= r.numShaders {
		return shaderEntry{}, false
	}
	s := r.shaders[id]
	if s.generation != r.generation {
		return shaderEntry{}, false
	}
	return s, true
}

func (r *registry) addMaterial(m Material) MaterialID {
	id := MaterialID(r.numMaterials)
	r.materials[id] = materialEntry{Material: m, generation: r.generation}
	r.numMaterials++
	return id
}

func (r *registry) material(id MaterialID) (Material, bool) {
	if id < 0 || int(id) >= r.numMaterials {
		return Material{}, false
	}
	m := r.materials[id]
	if m.generation != r.generation {
		return Material{}, false
	}
	return m.Material, true
}
