package device

// Null is a headless backend. It performs no native graphics work but keeps
// the lifecycle and handle contracts of a real device, so the engine can run
// without a GPU.
type Null struct {
	initialized bool
	inFrame     bool
	frames      uint64

	clearColor [4]float32
	clearDepth float32

	nextShader Shader
	nextBuffer Buffer
}

// NewNull creates an uninitialized Null device.
func NewNull() *Null {
	return &Null{clearDepth: 1}
}

func (n *Null) Type() Type { return TypeNull }

// Initialize always succeeds; the surface is ignored.
func (n *Null) Initialize(Surface) error {
	n.initialized = true
	n.inFrame = false
	return nil
}

func (n *Null) Shutdown() error {
	n.initialized = false
	n.inFrame = false
	return nil
}

func (n *Null) SetClearColor(r, g, b, a float32) { n.clearColor = [4]float32{r, g, b, a} }
func (n *Null) SetClearDepth(d float32)          { n.clearDepth = d }

// ClearColor returns the configured clear color.
func (n *Null) ClearColor() [4]float32 { return n.clearColor }

// ClearDepth returns the configured clear depth.
func (n *Null) ClearDepth() float32 { return n.clearDepth }

// Frames returns the number of completed frames.
func (n *Null) Frames() uint64 { return n.frames }

func (n *Null) BeginFrame() error {
	if !n.initialized {
		return ErrNotInitialized
	}
	n.inFrame = true
	return nil
}

func (n *Null) Clear() error {
	if !n.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (n *Null) Present() error {
	if !n.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (n *Null) EndFrame() error {
	if !n.initialized {
		return ErrNotInitialized
	}
	if n.inFrame {
		n.frames++
	}
	n.inFrame = false
	return nil
}

func (n *Null) CreateVertexShader(source string) (Shader, error) { return n.newShader() }
func (n *Null) CreatePixelShader(source string) (Shader, error)  { return n.newShader() }

func (n *Null) CreateVertexBuffer(size int, data []byte) (Buffer, error) {
	return n.newBuffer(size, data)
}

func (n *Null) CreateIndexBuffer(size int, data []byte) (Buffer, error) {
	return n.newBuffer(size, data)
}

// Handles start at 1 so the zero value never names a live object.
func (n *Null) newShader() (Shader, error) {
	if !n.initialized {
		return 0, ErrNotInitialized
	}
	n.nextShader++
	return n.nextShader, nil
}

func (n *Null) newBuffer(size int, data []byte) (Buffer, error) {
	if !n.initialized {
		return 0, ErrNotInitialized
	}
	if _, err := CheckBufferData(size, data); err != nil {
		return 0, err
	}
	n.nextBuffer++
	return n.nextBuffer, nil
}
