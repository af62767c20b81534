//go:build !windows

package wgl

import (
	"github.com/andewx/riot/device"
	"github.com/andewx/riot/device/opengl"
)

// Platform reports ErrUnsupportedPlatform for every native call.
type Platform struct{}

func New() *Platform { return &Platform{} }

func (p *Platform) Drawable(device.Surface) (opengl.Drawable, error) {
	return 0, ErrUnsupportedPlatform
}

func (p *Platform) ReleaseDrawable(device.Surface, opengl.Drawable) error {
	return ErrUnsupportedPlatform
}

func (p *Platform) ChoosePixelFormat(opengl.Drawable, opengl.PixelFormat) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (p *Platform) SetPixelFormat(opengl.Drawable, int, opengl.PixelFormat) error {
	return ErrUnsupportedPlatform
}

func (p *Platform) CreateContext(opengl.Drawable) (opengl.Context, error) {
	return opengl.NoContext, ErrUnsupportedPlatform
}

func (p *Platform) MakeCurrent(opengl.Drawable, opengl.Context) error {
	return ErrUnsupportedPlatform
}

func (p *Platform) DeleteContext(opengl.Context) error { return ErrUnsupportedPlatform }

func (p *Platform) LoadExtensions(opengl.Drawable) error { return ErrUnsupportedPlatform }

func (p *Platform) Extensions(opengl.Drawable) ([]string, error) {
	return nil, ErrUnsupportedPlatform
}

func (p *Platform) CreateContextAttribs(opengl.Drawable, opengl.Context, []int32) (opengl.Context, error) {
	return opengl.NoContext, ErrUnsupportedPlatform
}

func (p *Platform) SwapBuffers(opengl.Drawable) error { return ErrUnsupportedPlatform }
