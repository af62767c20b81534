// Package probe reports the graphics capabilities of the host: the device
// backends compiled into the binary and, when a loader is installed, the
// Vulkan instance extensions and validation layers.
package probe

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andewx/riot/device"
)

// Report is the result of Run.
type Report struct {
	Backends []string      `yaml:"backends"`
	Vulkan   *VulkanReport `yaml:"vulkan,omitempty"`
	// VulkanError explains a missing Vulkan section.
	VulkanError string `yaml:"vulkanError,omitempty"`
}

// vulkanProber is replaced in tests.
var vulkanProber = probeVulkan

// Run builds a Report. A missing Vulkan loader is recorded in the report,
// not returned.
func Run(logger *slog.Logger) *Report {
	r := &Report{}
	for _, t := range device.Available() {
		r.Backends = append(r.Backends, t.String())
	}

	vr, err := vulkanProber()
	if err != nil {
		logger.Warn("vulkan probe failed", "error", err)
		r.VulkanError = err.Error()
	} else {
		r.Vulkan = vr
	}
	return r
}

// Encode writes the report as "text" or "yaml".
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return r.writeText(w)
	}
	return fmt.Errorf("probe: unknown format %q", format)
}

func (r *Report) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "backends: %s\n", strings.Join(r.Backends, ", "))
	if r.Vulkan == nil {
		fmt.Fprintf(&b, "vulkan: unavailable (%s)\n", r.VulkanError)
	} else {
		fmt.Fprintf(&b, "vulkan instance extensions (%d):\n", len(r.Vulkan.InstanceExtensions))
		for _, e := range r.Vulkan.InstanceExtensions {
			fmt.Fprintf(&b, "  %s\n", e)
		}
		fmt.Fprintf(&b, "vulkan validation layers (%d):\n", len(r.Vulkan.ValidationLayers))
		for _, l := range r.Vulkan.ValidationLayers {
			fmt.Fprintf(&b, "  %s\n", l)
		}
		if len(r.Vulkan.MissingLayers) > 0 {
			fmt.Fprintf(&b, "missing layers: %s\n", strings.Join(r.Vulkan.MissingLayers, ", "))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
