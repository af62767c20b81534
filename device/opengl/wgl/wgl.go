// Package wgl implements opengl.Platform on top of the Windows WGL API.
//
// On other operating systems every operation fails with
// ErrUnsupportedPlatform; the OpenGL backend is only available for native
// Windows surfaces.
package wgl

import (
	"errors"

	"github.com/andewx/riot/device/opengl"
)

var ErrUnsupportedPlatform = errors.New("wgl: native OpenGL context creation is only supported on windows")

var _ opengl.Platform = (*Platform)(nil)

// Pixel format descriptor flags and types.
const (
	pfdDoubleBuffer   = 0x00000001
	pfdDrawToWindow   = 0x00000004
	pfdSupportOpenGL  = 0x00000020
	pfdTypeRGBA       = 0
	pfdTypeColorIndex = 1
	pfdMainPlane      = 0
)

// pixelFormatDescriptor mirrors PIXELFORMATDESCRIPTOR.
type pixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      uint8
	ColorBits      uint8
	RedBits        uint8
	RedShift       uint8
	GreenBits      uint8
	GreenShift     uint8
	BlueBits       uint8
	BlueShift      uint8
	AlphaBits      uint8
	AlphaShift     uint8
	AccumBits      uint8
	AccumRedBits   uint8
	AccumGreenBits uint8
	AccumBlueBits  uint8
	AccumAlphaBits uint8
	DepthBits      uint8
	StencilBits    uint8
	AuxBuffers     uint8
	LayerType      uint8
	Reserved       uint8
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

func newPixelFormatDescriptor(pf opengl.PixelFormat) pixelFormatDescriptor {
	pfd := pixelFormatDescriptor{
		Version:   1,
		Flags:     pfdSupportOpenGL | pfdDrawToWindow,
		PixelType: pfdTypeColorIndex,
		ColorBits: pf.ColorBits,
		DepthBits: pf.DepthBits,
		LayerType: pfdMainPlane,
	}
	pfd.Size = uint16(pixelFormatDescriptorSize)
	if pf.DoubleBuffer {
		pfd.Flags |= pfdDoubleBuffer
	}
	if pf.RGBA {
		pfd.PixelType = pfdTypeRGBA
	}
	return pfd
}

// pixelFormatDescriptorSize is sizeof(PIXELFORMATDESCRIPTOR).
const pixelFormatDescriptorSize = 40
