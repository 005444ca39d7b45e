package camera

import (
	"sync"
)

type cameraImpl struct {
	mu *sync.Mutex

	name string

	fov    float32
	aspect float32
	near   float32
	far    float32

	// customRenderingSettings enables the per-camera frame settings override path.
	// While false the renderer ignores customFrameSettings and overrideMask.
	customRenderingSettings bool
	customFrameSettings     FrameSettings
	overrideMask            OverrideMask

	upscalingEnabled bool
	upscalingQuality UpscalingQuality
}

// Camera defines the interface for the camera system.
// Besides perspective settings the camera carries per-camera render configuration:
// custom frame settings with an override mask, and the deep-learning upscaler controls.
// The renderer reads the effective configuration once per frame.
// All methods are safe for concurrent use.
type Camera interface {
	// Name returns the camera's identifier.
	Name() string

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// SetAspect sets the aspect ratio, typically from a window resize.
	//
	// Parameters:
	//   - aspect: the new aspect ratio
	SetAspect(aspect float32)

	// CustomRenderingSettings reports whether the custom frame settings path is active.
	CustomRenderingSettings() bool

	// SetCustomRenderingSettings enables or disables the custom frame settings path.
	//
	// Parameters:
	//   - enabled: true to let overridden fields take effect
	SetCustomRenderingSettings(enabled bool)

	// CustomFrameSettings returns a copy of the camera's custom frame settings.
	//
	// Returns:
	//   - FrameSettings: the custom frame settings
	CustomFrameSettings() FrameSettings

	// SetCustomFrameSettings replaces the camera's custom frame settings.
	//
	// Parameters:
	//   - fs: the new custom frame settings
	SetCustomFrameSettings(fs FrameSettings)

	// OverrideMask returns the set of fields the custom frame settings override.
	OverrideMask() OverrideMask

	// SetOverrideEnabled marks a field as overridden (or not) by the custom frame settings.
	//
	// Parameters:
	//   - field: the frame settings field
	//   - enabled: true to override the renderer default for this field
	SetOverrideEnabled(field FrameSettingsField, enabled bool)

	// SetGlobalRayTracingEnabled sets the RayTracing field on the custom frame settings.
	//
	// Parameters:
	//   - enabled: the new ray tracing state
	SetGlobalRayTracingEnabled(enabled bool)

	// EffectiveFrameSettings resolves the settings the renderer should use this frame.
	// When custom rendering settings are disabled the defaults are returned unchanged.
	//
	// Parameters:
	//   - defaults: the renderer default frame settings
	//
	// Returns:
	//   - FrameSettings: the merged settings
	EffectiveFrameSettings(defaults FrameSettings) FrameSettings

	// UpscalingEnabled reports whether the deep-learning upscaler is allowed for this camera.
	UpscalingEnabled() bool

	// SetUpscalingEnabled allows or disallows the deep-learning upscaler.
	//
	// Parameters:
	//   - enabled: the new upscaler state
	SetUpscalingEnabled(enabled bool)

	// UpscalingQuality returns the current upscaler preset.
	UpscalingQuality() UpscalingQuality

	// SetUpscalingQuality sets the upscaler preset. Unknown presets are ignored.
	//
	// Parameters:
	//   - quality: the preset to use
	SetUpscalingQuality(quality UpscalingQuality)

	// RenderScale returns the internal resolution scale implied by the upscaler state:
	// 1 when upscaling is off, otherwise the preset's scale.
	//
	// Returns:
	//   - float32: the render scale in (0, 1]
	RenderScale() float32
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the provided options.
// Defaults to a 45 degree field of view, 16:9 aspect, default frame settings
// and no overridden fields.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                  &sync.Mutex{},
		name:                "Main Camera",
		fov:                 0.785398,
		aspect:              16.0 / 9.0,
		near:                0.1,
		far:                 1000,
		customFrameSettings: DefaultFrameSettings(),
		upscalingQuality:    UpscalingMaxPerformance,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *cameraImpl) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) CustomRenderingSettings() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customRenderingSettings
}

func (c *cameraImpl) SetCustomRenderingSettings(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customRenderingSettings = enabled
}

func (c *cameraImpl) CustomFrameSettings() FrameSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customFrameSettings
}

func (c *cameraImpl) SetCustomFrameSettings(fs FrameSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customFrameSettings = fs
}

func (c *cameraImpl) OverrideMask() OverrideMask {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overrideMask
}

func (c *cameraImpl) SetOverrideEnabled(field FrameSettingsField, enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrideMask.Set(field, enabled)
}

func (c *cameraImpl) SetGlobalRayTracingEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customFrameSettings.SetEnabled(FieldRayTracing, enabled)
}

func (c *cameraImpl) EffectiveFrameSettings(defaults FrameSettings) FrameSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.customRenderingSettings {
		return defaults
	}
	return c.overrideMask.Apply(defaults, c.customFrameSettings)
}

func (c *cameraImpl) UpscalingEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upscalingEnabled
}

func (c *cameraImpl) SetUpscalingEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upscalingEnabled = enabled
}

func (c *cameraImpl) UpscalingQuality() UpscalingQuality {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upscalingQuality
}

func (c *cameraImpl) SetUpscalingQuality(quality UpscalingQuality) {
	if !quality.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upscalingQuality = quality
}

func (c *cameraImpl) RenderScale() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.upscalingEnabled {
		return 1
	}
	return c.upscalingQuality.RenderScale()
}
