package riot

import (
	"fmt"

	"github.com/andewx/riot/device"
)

// CreateVertexBuffer uploads size bytes of data to a new vertex buffer on
// the active device. A nil data reserves size bytes.
func (e *Engine) CreateVertexBuffer(size int, data []byte) (device.Buffer, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.dev.CreateVertexBuffer(size, data)
}

// CreateIndexBuffer is the index buffer counterpart of CreateVertexBuffer.
func (e *Engine) CreateIndexBuffer(size int, data []byte) (device.Buffer, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.dev.CreateIndexBuffer(size, data)
}

// ReadBuffer reads a buffer back from the active device, if the backend
// supports it.
func (e *Engine) ReadBuffer(b device.Buffer) ([]byte, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	r, ok := e.dev.(device.BufferReader)
	if !ok {
		return nil, fmt.Errorf("riot: %s device cannot read buffers back", e.dev.Type())
	}
	return r.ReadBuffer(b)
}
