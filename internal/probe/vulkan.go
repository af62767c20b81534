package probe

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// WantedLayers are the validation layers a debug build would enable.
var WantedLayers = []string{
	"VK_LAYER_KHRONOS_validation",
	"VK_LAYER_KHRONOS_synchronization2",
}

// VulkanReport lists what the Vulkan loader offers.
type VulkanReport struct {
	InstanceExtensions []string `yaml:"instanceExtensions"`
	ValidationLayers   []string `yaml:"validationLayers"`
	MissingLayers      []string `yaml:"missingLayers,omitempty"`
}

// initVulkan binds the Vulkan loader found by glfw. glfw.Init must have
// been called.
func initVulkan() error {
	if !glfw.VulkanSupported() {
		return ErrVulkanUnavailable
	}
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return fmt.Errorf("probe: vulkan init: %w", err)
	}
	return nil
}

// probeVulkan initializes glfw and queries the Vulkan loader.
func probeVulkan() (*VulkanReport, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("probe: glfw init: %w", err)
	}
	defer glfw.Terminate()

	if err := initVulkan(); err != nil {
		return nil, err
	}
	exts, err := InstanceExtensions()
	if err != nil {
		return nil, err
	}
	layers, err := ValidationLayers()
	if err != nil {
		return nil, err
	}
	return &VulkanReport{
		InstanceExtensions: exts,
		ValidationLayers:   layers,
		MissingLayers:      missing(WantedLayers, layers),
	}, nil
}

// InstanceExtensions lists the instance extensions available on the platform.
func InstanceExtensions() ([]string, error) {
	return enumerate(func(count *uint32, list []vk.ExtensionProperties) vk.Result {
		return vk.EnumerateInstanceExtensionProperties("", count, list)
	}, func(ext *vk.ExtensionProperties) string {
		ext.Deref()
		return vk.ToString(ext.ExtensionName[:])
	})
}

// ValidationLayers lists the validation layers available on the platform.
func ValidationLayers() ([]string, error) {
	return enumerate(vk.EnumerateInstanceLayerProperties, func(layer *vk.LayerProperties) string {
		layer.Deref()
		return vk.ToString(layer.LayerName[:])
	})
}

// enumerate runs the two-call Vulkan enumeration pattern: query the count,
// then fill a list of that size, and maps every entry to its name.
func enumerate[T any](query func(count *uint32, list []T) vk.Result, name func(*T) string) (names []string, err error) {
	defer checkErr(&err)

	var count uint32
	orPanic(newError(query(&count, nil)))
	list := make([]T, count)
	orPanic(newError(query(&count, list)))
	for i := range list[:count] {
		names = append(names, name(&list[i]))
	}
	return names, nil
}

// missing returns the entries of wanted absent from actual.
func missing(wanted, actual []string) []string {
	have := make(map[string]struct{}, len(actual))
	for _, a := range actual {
		have[a] = struct{}{}
	}
	var out []string
	for _, w := range wanted {
		if _, ok := have[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}
