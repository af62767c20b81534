package opengl

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrAlreadyInitialized is returned by Initialize on a live device.
	ErrAlreadyInitialized = errors.New("opengl: device already initialized")
	// ErrNoPixelFormat means the platform found no format close to the
	// requested PixelFormat.
	ErrNoPixelFormat = errors.New("opengl: no matching pixel format")
	// ErrNoContext means the platform returned a null context handle.
	ErrNoContext = errors.New("opengl: native context not created")
	// ErrMissingExtension fails the capability check. The message lists the
	// missing names.
	ErrMissingExtension = errors.New("opengl: missing required extension")
	// ErrFrameState is returned by EndFrame without a matching BeginFrame.
	ErrFrameState = errors.New("opengl: frame not begun")
)

// Error is a GL error code reported by glGetError.
type Error struct {
	Code uint32
	// Func is the device function that observed the error.
	Func string
}

func (e *Error) Error() string {
	if e.Func == "" {
		return fmt.Sprintf("opengl error: %s (0x%04x)", errorName(e.Code), e.Code)
	}
	return fmt.Sprintf("opengl error: %s (0x%04x) on %s", errorName(e.Code), e.Code, e.Func)
}

func isError(code uint32) bool {
	return code != NO_ERROR
}

// newError converts a glGetError result into an error annotated with the
// calling function, or nil for NO_ERROR.
func newError(code uint32) error {
	if !isError(code) {
		return nil
	}
	err := &Error{Code: code}
	pcs := make([]uintptr, 1)
	if n := runtime.Callers(2, pcs); n > 0 {
		frame, _ := runtime.CallersFrames(pcs[:n]).Next()
		err.Func = frame.Function
	}
	return err
}

func errorName(code uint32) string {
	switch code {
	case INVALID_ENUM:
		return "invalid enum"
	case INVALID_VALUE:
		return "invalid value"
	case INVALID_OPERATION:
		return "invalid operation"
	case OUT_OF_MEMORY:
		return "out of memory"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	}
	return "unknown error"
}
