package opengl

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andewx/riot/device"
)

func newTestDevice() (*Device, *fakePlatform, *fakeGL) {
	p := newFakePlatform()
	gl := newFakeGL()
	return New(p, gl), p, gl
}

func TestInitializeProtocolOrder(t *testing.T) {
	d, p, gl := newTestDevice()
	require.NoError(t, d.Initialize(device.Surface(0x1234)))

	assert.Equal(t, []string{
		"Drawable",
		"ChoosePixelFormat",
		"SetPixelFormat",
		"CreateContext",
		"MakeCurrent",
		"LoadExtensions",
		"Extensions",
		"CreateContextAttribs",
		"MakeCurrent(none)",
		"DeleteContext",
		"MakeCurrent",
	}, p.calls)
	assert.Equal(t, []string{"Init", "GenVertexArray", "BindVertexArray"}, gl.calls)

	// only the upgraded context survives and it is current
	require.Len(t, p.live, 1)
	assert.True(t, p.live[p.current])
	assert.Equal(t, d.context, p.current)

	assert.Equal(t, 7, d.PixelFormatIndex())
	assert.Equal(t, "3.2.0 Fake", d.Version())
	assert.Contains(t, d.Extensions(), CreateContextExtension)
	assert.NotZero(t, gl.vao)
	assert.Equal(t, float64(1), gl.clearDepth)
}

func TestInitializeTwice(t *testing.T) {
	d, _, _ := newTestDevice()
	require.NoError(t, d.Initialize(1))
	assert.ErrorIs(t, d.Initialize(1), ErrAlreadyInitialized)
}

func TestInitializeFailures(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name  string
		setup func(p *fakePlatform, gl *fakeGL)
		stage device.InitStage
		is    error
	}{
		{"no drawable", func(p *fakePlatform, _ *fakeGL) { p.fail["Drawable"] = boom }, device.StageProbe, boom},
		{"no pixel format", func(p *fakePlatform, _ *fakeGL) { p.format = 0 }, device.StageProbe, ErrNoPixelFormat},
		{"set pixel format", func(p *fakePlatform, _ *fakeGL) { p.fail["SetPixelFormat"] = boom }, device.StageProbe, boom},
		{"legacy context", func(p *fakePlatform, _ *fakeGL) { p.fail["CreateContext"] = boom }, device.StageBootstrap, boom},
		{"make current", func(p *fakePlatform, _ *fakeGL) { p.fail["MakeCurrent"] = boom }, device.StageBootstrap, boom},
		{"gl loader", func(_ *fakePlatform, gl *fakeGL) { gl.initErr = boom }, device.StageExtensionLoad, boom},
		{"wgl loader", func(p *fakePlatform, _ *fakeGL) { p.fail["LoadExtensions"] = boom }, device.StageExtensionLoad, boom},
		{"extension query", func(p *fakePlatform, _ *fakeGL) { p.fail["Extensions"] = boom }, device.StageCapabilityCheck, boom},
		{"missing create_context", func(p *fakePlatform, _ *fakeGL) {
			p.extensions = []string{"WGL_ARB_extensions_string"}
		}, device.StageCapabilityCheck, ErrMissingExtension},
		{"upgrade", func(p *fakePlatform, _ *fakeGL) { p.fail["CreateContextAttribs"] = boom }, device.StageUpgrade, boom},
		{"delete bootstrap", func(p *fakePlatform, _ *fakeGL) { p.fail["DeleteContext"] = boom }, device.StageUpgrade, boom},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, p, gl := newTestDevice()
			tc.setup(p, gl)

			err := d.Initialize(device.Surface(1))
			require.Error(t, err)

			var initErr *device.InitError
			require.ErrorAs(t, err, &initErr)
			assert.Equal(t, tc.stage, initErr.Stage)
			assert.Equal(t, device.TypeOpenGL, initErr.Backend)
			assert.ErrorIs(t, err, tc.is)

			assert.False(t, d.live())
			assert.Zero(t, d.drawable)
			if tc.name != "delete bootstrap" {
				assert.Empty(t, p.live, "native contexts leaked")
			}
			if len(p.calls) > 0 && p.calls[0] == "Drawable" && tc.name != "no drawable" {
				assert.Equal(t, "ReleaseDrawable", p.calls[len(p.calls)-1])
			}
			assert.NoError(t, d.Shutdown())
		})
	}
}

func TestMissingExtensionNamesExtension(t *testing.T) {
	d, p, _ := newTestDevice()
	p.extensions = nil

	err := d.Initialize(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), CreateContextExtension)
	// the upgraded context is never requested without the capability
	assert.NotContains(t, p.calls, "CreateContextAttribs")
}

func TestShutdown(t *testing.T) {
	d, p, gl := newTestDevice()
	require.NoError(t, d.Initialize(1))
	p.calls = nil

	require.NoError(t, d.Shutdown())
	assert.Equal(t, []string{"MakeCurrent(none)", "DeleteContext", "ReleaseDrawable"}, p.calls)
	assert.Contains(t, gl.calls, "DeleteVertexArray")
	assert.Empty(t, p.live)
	assert.Equal(t, NoContext, p.current)

	p.calls = nil
	require.NoError(t, d.Shutdown())
	assert.Empty(t, p.calls)

	// the device can be brought up again after shutdown
	require.NoError(t, d.Initialize(1))
	assert.True(t, d.live())
}

func TestFrame(t *testing.T) {
	d, p, gl := newTestDevice()
	assert.ErrorIs(t, d.BeginFrame(), device.ErrNotInitialized)
	assert.ErrorIs(t, d.Present(), device.ErrNotInitialized)

	require.NoError(t, d.Initialize(1))
	d.SetClearColor(0, 0.3, 0.4, 1)
	d.SetClearDepth(0.25)
	assert.Equal(t, [4]float32{0, 0.3, 0.4, 1}, gl.clearColor)
	assert.Equal(t, 0.25, gl.clearDepth)

	assert.ErrorIs(t, d.EndFrame(), ErrFrameState)
	for i := 0; i < 3; i++ {
		require.NoError(t, d.BeginFrame())
		require.NoError(t, d.Clear())
		require.NoError(t, d.Present())
		require.NoError(t, d.EndFrame())
	}
	assert.Equal(t, 3, p.swaps)
	require.Len(t, gl.clears, 3)
	assert.Equal(t, uint32(COLOR_BUFFER_BIT|DEPTH_BUFFER_BIT), gl.clears[0])
}

func TestClearValuesAppliedAtInitialize(t *testing.T) {
	d, _, gl := newTestDevice()
	d.SetClearColor(1, 0, 0, 1)
	d.SetClearDepth(0.5)
	assert.Zero(t, gl.clearColor)

	require.NoError(t, d.Initialize(1))
	assert.Equal(t, [4]float32{1, 0, 0, 1}, gl.clearColor)
	assert.Equal(t, 0.5, gl.clearDepth)
}

func TestPresentError(t *testing.T) {
	d, p, _ := newTestDevice()
	require.NoError(t, d.Initialize(1))

	boom := errors.New("swap failed")
	p.fail["SwapBuffers"] = boom
	assert.ErrorIs(t, d.Present(), boom)
}

func TestInitializeWantedExtensions(t *testing.T) {
	d, _, _ := newTestDevice()
	require.NoError(t, d.Initialize(1))
	assert.Equal(t, []string{CreateContextExtension, "WGL_EXT_swap_control"}, d.Extensions())
	require.NoError(t, d.Shutdown())

	var logs bytes.Buffer
	d, p, _ := newTestDevice()
	d.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	p.extensions = []string{CreateContextExtension}

	require.NoError(t, d.Initialize(1))
	assert.Equal(t, []string{CreateContextExtension}, d.Extensions())
	assert.Contains(t, logs.String(), "optional extensions missing")
	assert.Contains(t, logs.String(), "WGL_EXT_swap_control")
}
