package raytracing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/lucasb-eyer/go-colorful"
)

// RenderingBackend is the per-camera render configuration the coordinator drives.
// camera.Camera satisfies it.
type RenderingBackend interface {
	CustomFrameSettings() camera.FrameSettings
	SetCustomFrameSettings(fs camera.FrameSettings)
	SetOverrideEnabled(field camera.FrameSettingsField, enabled bool)
	SetGlobalRayTracingEnabled(enabled bool)
	SetUpscalingEnabled(enabled bool)
	SetUpscalingQuality(quality camera.UpscalingQuality)
}

// customRenderingBackend is implemented by backends that gate frame settings overrides behind a switch.
type customRenderingBackend interface {
	SetCustomRenderingSettings(enabled bool)
}

// LightRegistry enumerates the scene's lights and applies the shadow technique to them.
// scene.Scene satisfies it.
type LightRegistry interface {
	EnumerateLights() []light.Light
	SetRayTracedShadows(lights []light.Light, rayTraced bool)
}

// InputSource reports edge triggered actions. Each press is reported once.
type InputSource interface {
	Pressed(action input.Action) bool
}

// Coordinator keeps global ray tracing, its four sub features and the upscaler
// in sync between the rendering backend, the scene and the status indicators.
// All methods are safe for concurrent use; a global transition is applied as one unit.
type Coordinator interface {
	// Tick runs once per frame. It reasserts the cached frame settings on the backend,
	// dispatches button presses to the toggles and processes the upscaling keys.
	Tick()

	// ToggleGlobal flips global ray tracing, forcing every sub feature to the same state.
	//
	// Returns:
	//   - error: ErrEmptyLightRegistry or ErrMissingEffectOverride for parts that could not be applied
	ToggleGlobal() error

	// ToggleShadows flips ray traced shadows on every light in the snapshot.
	//
	// Returns:
	//   - error: ErrRejectedToggle while global ray tracing is off, ErrEmptyLightRegistry with no lights
	ToggleShadows() error

	// ToggleReflections flips reflections between ray tracing and ray marching.
	//
	// Returns:
	//   - error: ErrRejectedToggle while global ray tracing is off, ErrMissingEffectOverride without the override
	ToggleReflections() error

	// ToggleGlobalIllumination flips global illumination between ray tracing and ray marching.
	//
	// Returns:
	//   - error: ErrRejectedToggle while global ray tracing is off, ErrMissingEffectOverride without the override
	ToggleGlobalIllumination() error

	// ToggleAmbientOcclusion flips ray traced ambient occlusion.
	//
	// Returns:
	//   - error: ErrRejectedToggle while global ray tracing is off, ErrMissingEffectOverride without the override
	ToggleAmbientOcclusion() error

	// Toggle dispatches to the toggle for the given feature.
	Toggle(f Feature) error

	// Enabled reports the tracked state of a feature. Features whose effect
	// override is missing always report false.
	Enabled(f Feature) bool

	// Upscaling returns whether the upscaler is on and its quality preset.
	Upscaling() (bool, camera.UpscalingQuality)

	// LightCount returns the number of lights captured at construction.
	LightCount() int
}

type coordinatorImpl struct {
	mu *sync.Mutex

	backend  RenderingBackend
	registry LightRegistry
	input    InputSource
	logger   log.Logger

	// lights is captured once; lights added to the scene later are not tracked.
	lights []light.Light

	reflection         *volume.Reflection
	globalIllumination *volume.GlobalIllumination
	ambientOcclusion   *volume.AmbientOcclusion

	frame   camera.FrameSettings
	enabled [featureCount]bool

	indicators         [featureCount]StatusIndicator
	upscalingIndicator StatusIndicator

	onText, offText   string
	onColor, offColor colorful.Color

	upscaling       upscalingState
	upscalingPrefix string
	upscalingLabels map[camera.UpscalingQuality]string
}

// Ensure coordinatorImpl implements Coordinator interface.
var _ Coordinator = &coordinatorImpl{}

// NewCoordinator takes over ray tracing control on the backend and applies the all on state.
// A nil registry is treated as a scene without lights and a nil profile as one without overrides.
// NewCoordinator panics if backend or in is nil.
//
// Parameters:
//   - backend: the render configuration to drive, usually the scene camera
//   - registry: the light registry, enumerated once
//   - profile: the volume profile holding the effect overrides
//   - in: the source of button and key presses
//   - indicators: the status labels to keep in sync
//   - options: functional options to further configure the coordinator
//
// Returns:
//   - Coordinator: the initialized coordinator
func NewCoordinator(backend RenderingBackend, registry LightRegistry, profile volume.Profile, in InputSource, indicators Indicators, options ...CoordinatorBuilderOption) Coordinator {
	if backend == nil || in == nil {
		panic("raytracing: NewCoordinator requires a backend and an input source")
	}

	c := &coordinatorImpl{
		mu:                 &sync.Mutex{},
		backend:            backend,
		registry:           registry,
		input:              in,
		logger:             log.New("raytracing"),
		indicators:         indicators.byFeature(),
		upscalingIndicator: indicators.Upscaling,
		onText:             DefaultOnText,
		offText:            DefaultOffText,
		onColor:            colorful.Color{R: 0, G: 1, B: 0},
		offColor:           colorful.Color{R: 1, G: 0, B: 0},
		upscalingPrefix:    DefaultUpscalingPrefix,
		upscalingLabels:    DefaultUpscalingLabels(),
	}

	for _, option := range options {
		option(c)
	}

	if cr, ok := backend.(customRenderingBackend); ok {
		cr.SetCustomRenderingSettings(true)
	}
	c.frame = backend.CustomFrameSettings()
	backend.SetOverrideEnabled(camera.FieldRayTracing, true)
	backend.SetCustomFrameSettings(c.frame)

	if registry != nil {
		c.lights = registry.EnumerateLights()
	}
	c.lookupEffects(profile)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.logResult(c.setAll(true))
	c.logger.Infof("ray tracing controls ready: %d lights, frame settings %s", len(c.lights), c.frame)

	return c
}

func (c *coordinatorImpl) lookupEffects(profile volume.Profile) {
	if profile != nil {
		c.reflection, _ = volume.TryGet[*volume.Reflection](profile)
		c.globalIllumination, _ = volume.TryGet[*volume.GlobalIllumination](profile)
		c.ambientOcclusion, _ = volume.TryGet[*volume.AmbientOcclusion](profile)
	}

	if c.reflection == nil {
		c.logger.Errorf("%s. Add the %s override to the volume profile", ErrMissingEffectOverride, volume.EffectReflection)
	}
	if c.globalIllumination == nil {
		c.logger.Errorf("%s. Add the %s override to the volume profile", ErrMissingEffectOverride, volume.EffectGlobalIllumination)
	}
	if c.ambientOcclusion == nil {
		c.logger.Errorf("%s. Add the %s override to the volume profile", ErrMissingEffectOverride, volume.EffectAmbientOcclusion)
	}
}

func (c *coordinatorImpl) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.backend.SetCustomFrameSettings(c.frame)

	for f := range featureCount {
		if c.input.Pressed(f.Action()) {
			c.logResult(c.toggle(f))
		}
	}

	c.processUpscaling()
}

func (c *coordinatorImpl) ToggleGlobal() error {
	return c.Toggle(FeatureGlobal)
}

func (c *coordinatorImpl) ToggleShadows() error {
	return c.Toggle(FeatureShadows)
}

func (c *coordinatorImpl) ToggleReflections() error {
	return c.Toggle(FeatureReflections)
}

func (c *coordinatorImpl) ToggleGlobalIllumination() error {
	return c.Toggle(FeatureGlobalIllumination)
}

func (c *coordinatorImpl) ToggleAmbientOcclusion() error {
	return c.Toggle(FeatureAmbientOcclusion)
}

func (c *coordinatorImpl) Toggle(f Feature) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.toggle(f)
	c.logResult(err)
	return err
}

func (c *coordinatorImpl) Enabled(f Feature) bool {
	if f >= featureCount {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled[f]
}

func (c *coordinatorImpl) Upscaling() (bool, camera.UpscalingQuality) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upscaling.enabled, c.upscaling.quality
}

func (c *coordinatorImpl) LightCount() int {
	return len(c.lights)
}

// toggle must be called with c.mu held.
func (c *coordinatorImpl) toggle(f Feature) error {
	if f >= featureCount {
		return fmt.Errorf("raytracing: unknown feature %d", uint8(f))
	}
	if f == FeatureGlobal {
		return c.setAll(!c.enabled[FeatureGlobal])
	}
	if !c.enabled[FeatureGlobal] {
		return fmt.Errorf("%w: can't toggle %s", ErrRejectedToggle, f.Title())
	}
	if c.missing(f) {
		// The flag stays off so the toggle is a no-op for the session.
		return c.apply(f, false)
	}

	c.enabled[f] = !c.enabled[f]
	return c.apply(f, c.enabled[f])
}

// setAll performs the global transition. Every part is attempted even when an
// earlier one fails; the returned error joins the failures. Features whose
// effect override is missing keep their flag off to match their indicator.
func (c *coordinatorImpl) setAll(on bool) error {
	for f := range featureCount {
		c.enabled[f] = on && !c.missing(f)
	}

	var errs []error
	for f := range featureCount {
		if err := c.apply(f, on); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// apply pushes one feature's state to its collaborator and indicator.
// The indicator shows what was actually applied, so a feature that could not be
// applied reads off.
func (c *coordinatorImpl) apply(f Feature, on bool) error {
	mode := volume.TracingModeRayMarching
	if on {
		mode = volume.TracingModeRayTracing
	}

	switch f {
	case FeatureGlobal:
		c.frame.SetEnabled(camera.FieldRayTracing, on)
		c.backend.SetGlobalRayTracingEnabled(on)
		c.backend.SetCustomFrameSettings(c.frame)
	case FeatureShadows:
		if len(c.lights) == 0 {
			c.setIndicator(f, false)
			return ErrEmptyLightRegistry
		}
		c.registry.SetRayTracedShadows(c.lights, on)
	case FeatureReflections:
		if c.reflection == nil {
			c.setIndicator(f, false)
			return fmt.Errorf("%w: %s", ErrMissingEffectOverride, volume.EffectReflection)
		}
		c.reflection.SetTracingMode(mode)
	case FeatureGlobalIllumination:
		if c.globalIllumination == nil {
			c.setIndicator(f, false)
			return fmt.Errorf("%w: %s", ErrMissingEffectOverride, volume.EffectGlobalIllumination)
		}
		c.globalIllumination.SetTracingMode(mode)
	case FeatureAmbientOcclusion:
		if c.ambientOcclusion == nil {
			c.setIndicator(f, false)
			return fmt.Errorf("%w: %s", ErrMissingEffectOverride, volume.EffectAmbientOcclusion)
		}
		c.ambientOcclusion.SetRayTracingEnabled(on)
	}

	c.setIndicator(f, on)
	c.logger.Debugf("%s ray tracing %s", f.Title(), c.text(on))
	return nil
}

func (c *coordinatorImpl) missing(f Feature) bool {
	switch f {
	case FeatureReflections:
		return c.reflection == nil
	case FeatureGlobalIllumination:
		return c.globalIllumination == nil
	case FeatureAmbientOcclusion:
		return c.ambientOcclusion == nil
	}
	return false
}

func (c *coordinatorImpl) setIndicator(f Feature, on bool) {
	ind := c.indicators[f]
	if ind == nil {
		return
	}
	ind.SetText(c.text(on))
	if on {
		ind.SetColor(c.onColor)
	} else {
		ind.SetColor(c.offColor)
	}
}

func (c *coordinatorImpl) text(on bool) string {
	if on {
		return c.onText
	}
	return c.offText
}

// logResult reports toggle failures. Rejections and empty scenes are expected
// while playing with the controls; a missing override was already reported at startup.
func (c *coordinatorImpl) logResult(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ErrRejectedToggle), errors.Is(err, ErrEmptyLightRegistry):
		c.logger.Info(err)
	case errors.Is(err, ErrMissingEffectOverride):
		c.logger.Debug(err)
	default:
		c.logger.Warning(err)
	}
}
