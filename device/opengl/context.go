package opengl

import (
	"fmt"
	"strings"

	"github.com/andewx/riot/device"
)

// Target context version.
const (
	ContextMajorVersion = 3
	ContextMinorVersion = 2
)

// CreateContextExtension is required to request a specific context version.
const CreateContextExtension = "WGL_ARB_create_context"

// WantedExtensions are used when present and logged when missing.
var WantedExtensions = []string{"WGL_EXT_swap_control", "WGL_ARB_pixel_format"}

// WGL_ARB_create_context attribute names.
const (
	ContextMajorVersionARB = 0x2091
	ContextMinorVersionARB = 0x2092
)

// Initialize creates the rendering context for surface.
//
// Some drivers can only hand out a versioned context through an extension,
// and extensions can only be queried with a context current. So a legacy
// context is created first, used to load and check extensions, and then
// replaced by the 3.2 context. The bootstrap context stays current until the
// upgraded one exists.
//
// Every failure is returned as a *device.InitError naming the stage; native
// objects created before the failure are released.
func (d *Device) Initialize(surface device.Surface) (err error) {
	if d.live() {
		return ErrAlreadyInitialized
	}

	stage := device.StageProbe
	bootstrap := NoContext
	defer func() {
		if err == nil {
			return
		}
		if rerr := d.release(bootstrap); rerr != nil {
			d.logger.Warn("releasing partial context", "error", rerr)
		}
		err = &device.InitError{Backend: device.TypeOpenGL, Stage: stage, Err: err}
		d.logger.Error("context creation failed", "stage", stage, "error", err)
	}()

	// Probe: apply a basic pixel format to the surface.
	drawable, err := d.platform.Drawable(surface)
	if err != nil {
		return err
	}
	d.surface = surface
	d.drawable = drawable

	format, err := d.platform.ChoosePixelFormat(drawable, d.format)
	if err != nil {
		return err
	}
	if format == 0 {
		return ErrNoPixelFormat
	}
	if err = d.platform.SetPixelFormat(drawable, format, d.format); err != nil {
		return err
	}
	d.pixelFormat = format

	// Bootstrap: throwaway legacy context, needed for extension loading only.
	stage = device.StageBootstrap
	bootstrap, err = d.platform.CreateContext(drawable)
	if err != nil {
		return err
	}
	if bootstrap == NoContext {
		return ErrNoContext
	}
	if err = d.platform.MakeCurrent(drawable, bootstrap); err != nil {
		return err
	}

	stage = device.StageExtensionLoad
	if err = d.gl.Init(); err != nil {
		return err
	}
	if err = d.platform.LoadExtensions(drawable); err != nil {
		return err
	}

	stage = device.StageCapabilityCheck
	actual, err := d.platform.Extensions(drawable)
	if err != nil {
		return err
	}
	exts := newExtensionSet(WantedExtensions, []string{CreateContextExtension}, actual)
	if ok, missing := exts.HasRequired(); !ok {
		return fmt.Errorf("%w: %s", ErrMissingExtension, strings.Join(missing, ", "))
	}
	if ok, missing := exts.HasWanted(); !ok {
		d.logger.Debug("optional extensions missing", "extensions", missing)
	}
	d.extensions = exts.Enabled()

	// Upgrade: the versioned context takes over from the bootstrap one.
	stage = device.StageUpgrade
	upgraded, err := d.platform.CreateContextAttribs(drawable, NoContext, []int32{
		ContextMajorVersionARB, ContextMajorVersion,
		ContextMinorVersionARB, ContextMinorVersion,
		0,
	})
	if err != nil {
		return err
	}
	if upgraded == NoContext {
		return ErrNoContext
	}
	d.context = upgraded

	if err = d.platform.MakeCurrent(0, NoContext); err != nil {
		return err
	}
	if err = d.platform.DeleteContext(bootstrap); err != nil {
		return err
	}
	bootstrap = NoContext
	if err = d.platform.MakeCurrent(drawable, upgraded); err != nil {
		return err
	}
	d.version = d.gl.GetString(VERSION)

	stage = device.StageSurfaceSetup
	vao := d.gl.GenVertexArray()
	if vao == 0 {
		if err = newError(d.gl.GetError()); err == nil {
			err = fmt.Errorf("opengl: vertex array not created")
		}
		return err
	}
	d.vao = vao
	d.gl.BindVertexArray(vao)

	d.gl.ClearColor(d.clearColor[0], d.clearColor[1], d.clearColor[2], d.clearColor[3])
	d.gl.ClearDepth(float64(d.clearDepth))

	d.logger.Info("context created",
		"version", d.version,
		"pixel_format", d.pixelFormat,
		"extensions", len(d.extensions))
	return nil
}
