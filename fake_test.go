package riot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/andewx/riot/device"
)

var errInjected = errors.New("injected failure")

// recordingDevice is an OpenGL stand-in that logs every call.
type recordingDevice struct {
	calls []string
	fail  map[string]error

	clearColor [4]float32
	clearDepth float32
	next       uint32
}

func (r *recordingDevice) record(name string) error {
	r.calls = append(r.calls, name)
	return r.fail[name]
}

func (r *recordingDevice) Type() device.Type { return device.TypeOpenGL }

func (r *recordingDevice) Initialize(s device.Surface) error {
	return r.record(fmt.Sprintf("Initialize(%d)", s))
}

func (r *recordingDevice) Shutdown() error { return r.record("Shutdown") }

func (r *recordingDevice) SetClearColor(cr, g, b, a float32) {
	r.clearColor = [4]float32{cr, g, b, a}
	r.record("SetClearColor")
}

func (r *recordingDevice) SetClearDepth(d float32) {
	r.clearDepth = d
	r.record("SetClearDepth")
}

func (r *recordingDevice) BeginFrame() error { return r.record("BeginFrame") }
func (r *recordingDevice) Clear() error      { return r.record("Clear") }
func (r *recordingDevice) Present() error    { return r.record("Present") }
func (r *recordingDevice) EndFrame() error   { return r.record("EndFrame") }

func (r *recordingDevice) CreateVertexShader(src string) (device.Shader, error) {
	if err := r.record("CreateVertexShader"); err != nil {
		return 0, err
	}
	r.next++
	return device.Shader(r.next), nil
}

func (r *recordingDevice) CreatePixelShader(src string) (device.Shader, error) {
	if err := r.record("CreatePixelShader"); err != nil {
		return 0, err
	}
	r.next++
	return device.Shader(r.next), nil
}

func (r *recordingDevice) CreateVertexBuffer(size int, data []byte) (device.Buffer, error) {
	return 0, r.record("CreateVertexBuffer")
}

func (r *recordingDevice) CreateIndexBuffer(size int, data []byte) (device.Buffer, error) {
	return 0, r.record("CreateIndexBuffer")
}

// useRecordingDevice registers rec as the OpenGL backend for the test.
func useRecordingDevice(t *testing.T, rec *recordingDevice) {
	t.Helper()
	device.Register(device.TypeOpenGL, func() device.Device { return rec })
	t.Cleanup(func() { device.Unregister(device.TypeOpenGL) })
}
