package probe

import (
	"errors"
	"fmt"
	"runtime"

	vk "github.com/vulkan-go/vulkan"
)

// ErrVulkanUnavailable is returned when no Vulkan loader can be found.
var ErrVulkanUnavailable = errors.New("probe: vulkan loader not available")

func isError(ret vk.Result) bool {
	return ret != vk.Success
}

// newError converts a Vulkan result into an error naming the calling
// function. Success maps to nil.
func newError(ret vk.Result) error {
	if !isError(ret) {
		return nil
	}
	pcs := make([]uintptr, 1)
	if runtime.Callers(2, pcs) == 0 {
		return fmt.Errorf("vulkan error: %s (%d)", vk.Error(ret).Error(), ret)
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	return fmt.Errorf("vulkan error: %s (%d) on %s", vk.Error(ret).Error(), ret, frame.Function)
}

func orPanic(err error) {
	if err != nil {
		panic(err)
	}
}

// checkErr turns a panic raised by orPanic into the function's error.
func checkErr(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%+v", v)
	}
}
