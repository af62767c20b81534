package opengl

import (
	"fmt"

	"github.com/andewx/riot/device"
)

type bufferInfo struct {
	target uint32
	size   int
}

func (d *Device) CreateVertexBuffer(size int, data []byte) (device.Buffer, error) {
	return d.createBuffer(ARRAY_BUFFER, size, data)
}

func (d *Device) CreateIndexBuffer(size int, data []byte) (device.Buffer, error) {
	return d.createBuffer(ELEMENT_ARRAY_BUFFER, size, data)
}

// createBuffer uploads size bytes as static draw data and leaves target unbound.
func (d *Device) createBuffer(target uint32, size int, data []byte) (device.Buffer, error) {
	if !d.live() {
		return 0, device.ErrNotInitialized
	}
	upload, err := device.CheckBufferData(size, data)
	if err != nil {
		return 0, err
	}

	id := d.gl.GenBuffer()
	if id == 0 {
		if err := newError(d.gl.GetError()); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("opengl: buffer object not created")
	}
	d.gl.BindBuffer(target, id)
	d.gl.BufferData(target, size, upload, STATIC_DRAW)
	d.gl.BindBuffer(target, 0)

	if err := newError(d.gl.GetError()); err != nil {
		d.gl.DeleteBuffer(id)
		return 0, err
	}

	b := device.Buffer(id)
	d.buffers[b] = bufferInfo{target: target, size: size}
	d.logger.Debug("buffer created", "buffer", id, "target", fmt.Sprintf("0x%04x", target), "size", size)
	return b, nil
}

// ReadBuffer reads the full contents of a buffer created by this device.
func (d *Device) ReadBuffer(b device.Buffer) ([]byte, error) {
	if !d.live() {
		return nil, device.ErrNotInitialized
	}
	info, ok := d.buffers[b]
	if !ok {
		return nil, fmt.Errorf("%w: %d", device.ErrUnknownBuffer, b)
	}

	d.gl.BindBuffer(info.target, uint32(b))
	data := d.gl.GetBufferSubData(info.target, 0, info.size)
	d.gl.BindBuffer(info.target, 0)

	if err := newError(d.gl.GetError()); err != nil {
		return nil, err
	}
	return data, nil
}
