package opengl

import (
	"fmt"
	"strings"

	"github.com/andewx/riot/device"
)

// fakePlatform records native calls and tracks context liveness.
type fakePlatform struct {
	calls []string
	fail  map[string]error

	extensions []string
	format     int

	nextContext Context
	live        map[Context]bool
	current     Context
	loaded      bool
	swaps       int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		fail:        map[string]error{},
		extensions:  []string{"WGL_ARB_extensions_string", CreateContextExtension, "WGL_EXT_swap_control"},
		format:      7,
		nextContext: 100,
		live:        map[Context]bool{},
	}
}

func (p *fakePlatform) record(call string) error {
	p.calls = append(p.calls, call)
	return p.fail[call]
}

func (p *fakePlatform) Drawable(surface device.Surface) (Drawable, error) {
	if err := p.record("Drawable"); err != nil {
		return 0, err
	}
	return Drawable(surface) + 1, nil
}

func (p *fakePlatform) ReleaseDrawable(surface device.Surface, d Drawable) error {
	return p.record("ReleaseDrawable")
}

func (p *fakePlatform) ChoosePixelFormat(d Drawable, pf PixelFormat) (int, error) {
	if err := p.record("ChoosePixelFormat"); err != nil {
		return 0, err
	}
	if pf != DefaultPixelFormat {
		return 0, nil
	}
	return p.format, nil
}

func (p *fakePlatform) SetPixelFormat(d Drawable, format int, pf PixelFormat) error {
	return p.record("SetPixelFormat")
}

func (p *fakePlatform) newContext(call string) (Context, error) {
	if err := p.record(call); err != nil {
		return NoContext, err
	}
	p.nextContext++
	p.live[p.nextContext] = true
	return p.nextContext, nil
}

func (p *fakePlatform) CreateContext(d Drawable) (Context, error) {
	return p.newContext("CreateContext")
}

func (p *fakePlatform) MakeCurrent(d Drawable, c Context) error {
	call := "MakeCurrent"
	if c == NoContext {
		call = "MakeCurrent(none)"
	}
	if err := p.record(call); err != nil {
		return err
	}
	if c != NoContext && !p.live[c] {
		return fmt.Errorf("context %d is not alive", c)
	}
	p.current = c
	return nil
}

func (p *fakePlatform) DeleteContext(c Context) error {
	if err := p.record("DeleteContext"); err != nil {
		return err
	}
	if p.current == c {
		return fmt.Errorf("context %d deleted while current", c)
	}
	delete(p.live, c)
	return nil
}

func (p *fakePlatform) LoadExtensions(d Drawable) error {
	if err := p.record("LoadExtensions"); err != nil {
		return err
	}
	if p.current == NoContext {
		return fmt.Errorf("no current context")
	}
	p.loaded = true
	return nil
}

func (p *fakePlatform) Extensions(d Drawable) ([]string, error) {
	if err := p.record("Extensions"); err != nil {
		return nil, err
	}
	return p.extensions, nil
}

func (p *fakePlatform) CreateContextAttribs(d Drawable, share Context, attribs []int32) (Context, error) {
	if !p.loaded {
		p.record("CreateContextAttribs")
		return NoContext, fmt.Errorf("extension entry point not loaded")
	}
	want := []int32{ContextMajorVersionARB, 3, ContextMinorVersionARB, 2, 0}
	if fmt.Sprint(attribs) != fmt.Sprint(want) {
		p.record("CreateContextAttribs")
		return NoContext, fmt.Errorf("unexpected attribs %v", attribs)
	}
	return p.newContext("CreateContextAttribs")
}

func (p *fakePlatform) SwapBuffers(d Drawable) error {
	if err := p.record("SwapBuffers"); err != nil {
		return err
	}
	p.swaps++
	return nil
}

type fakeShader struct {
	xtype    uint32
	source   string
	compiled bool
	ok       bool
}

// fakeGL implements GL in memory. Shaders compile when their source
// contains "void main".
type fakeGL struct {
	calls   []string
	initErr error
	errors  []uint32

	next    uint32
	shaders map[uint32]*fakeShader
	buffers map[uint32][]byte
	bound   map[uint32]uint32
	vao     uint32

	clearColor [4]float32
	clearDepth float64
	clears     []uint32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders: map[uint32]*fakeShader{},
		buffers: map[uint32][]byte{},
		bound:   map[uint32]uint32{},
	}
}

func (g *fakeGL) record(call string) { g.calls = append(g.calls, call) }

func (g *fakeGL) Init() error {
	g.record("Init")
	return g.initErr
}

func (g *fakeGL) GetString(name uint32) string {
	if name == VERSION {
		return "3.2.0 Fake"
	}
	return ""
}

func (g *fakeGL) GetError() uint32 {
	if len(g.errors) == 0 {
		return NO_ERROR
	}
	code := g.errors[0]
	g.errors = g.errors[1:]
	return code
}

func (g *fakeGL) ClearColor(r, gr, b, a float32) { g.clearColor = [4]float32{r, gr, b, a} }
func (g *fakeGL) ClearDepth(d float64)           { g.clearDepth = d }
func (g *fakeGL) Clear(mask uint32)              { g.clears = append(g.clears, mask) }

func (g *fakeGL) GenVertexArray() uint32 {
	g.record("GenVertexArray")
	g.next++
	return g.next
}

func (g *fakeGL) BindVertexArray(vao uint32) {
	g.record("BindVertexArray")
	g.vao = vao
}

func (g *fakeGL) DeleteVertexArray(vao uint32) {
	g.record("DeleteVertexArray")
	if g.vao == vao {
		g.vao = 0
	}
}

func (g *fakeGL) CreateShader(xtype uint32) uint32 {
	g.next++
	g.shaders[g.next] = &fakeShader{xtype: xtype}
	return g.next
}

func (g *fakeGL) ShaderSource(shader uint32, source string) { g.shaders[shader].source = source }

func (g *fakeGL) CompileShader(shader uint32) {
	s := g.shaders[shader]
	s.compiled = true
	s.ok = strings.Contains(s.source, "void main")
}

func (g *fakeGL) GetShaderiv(shader uint32, pname uint32) int32 {
	s := g.shaders[shader]
	if pname == COMPILE_STATUS && s.compiled && s.ok {
		return TRUE
	}
	return FALSE
}

func (g *fakeGL) GetShaderInfoLog(shader uint32) string {
	if g.shaders[shader].ok {
		return ""
	}
	return "0:1(1): error: syntax error, unexpected end of file\n\x00"
}

func (g *fakeGL) DeleteShader(shader uint32) { delete(g.shaders, shader) }

func (g *fakeGL) GenBuffer() uint32 {
	g.next++
	g.buffers[g.next] = nil
	return g.next
}

func (g *fakeGL) BindBuffer(target, buffer uint32) {
	g.record(fmt.Sprintf("BindBuffer(0x%04x,%d)", target, buffer))
	g.bound[target] = buffer
}

func (g *fakeGL) BufferData(target uint32, size int, data []byte, usage uint32) {
	g.record(fmt.Sprintf("BufferData(0x%04x,%d,0x%04x)", target, size, usage))
	buf := make([]byte, size)
	copy(buf, data)
	g.buffers[g.bound[target]] = buf
}

func (g *fakeGL) GetBufferSubData(target uint32, offset, size int) []byte {
	buf := g.buffers[g.bound[target]]
	out := make([]byte, size)
	copy(out, buf[offset:offset+size])
	return out
}

func (g *fakeGL) DeleteBuffer(buffer uint32) { delete(g.buffers, buffer) }
