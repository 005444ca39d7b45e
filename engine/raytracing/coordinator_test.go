package raytracing

import (
	"io"
	"os"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/hud"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetSink(io.Discard)
	os.Exit(m.Run())
}

type fixture struct {
	cam     camera.Camera
	scene   scene.Scene
	refl    *volume.Reflection
	gi      *volume.GlobalIllumination
	ao      *volume.AmbientOcclusion
	kb      *input.Keyboard
	labels  [featureCount]*hud.Label
	upscale *hud.Label
	coord   Coordinator
}

func newFixture(t *testing.T, lightCount int, effects []volume.Effect, opts ...CoordinatorBuilderOption) *fixture {
	t.Helper()
	f := &fixture{
		cam:     camera.NewCamera(),
		kb:      input.NewKeyboard(nil),
		upscale: hud.NewLabel("upscaling"),
	}
	lights := make([]light.Light, 0, lightCount)
	for i := 0; i < lightCount; i++ {
		lights = append(lights, light.NewLight(light.LightTypePoint))
	}
	f.scene = scene.NewScene("test", f.cam, nil, scene.WithLights(lights...))

	if effects == nil {
		f.refl = volume.NewReflection(volume.TracingModeRayMarching)
		f.gi = volume.NewGlobalIllumination(volume.TracingModeRayMarching)
		f.ao = volume.NewAmbientOcclusion(false)
		effects = []volume.Effect{f.refl, f.gi, f.ao}
	}
	profile := volume.NewProfile("test", effects...)

	for _, ft := range Features() {
		f.labels[ft] = hud.NewLabel(ft.String())
	}
	f.coord = NewCoordinator(f.cam, f.scene, profile, f.kb, Indicators{
		Global:             f.labels[FeatureGlobal],
		Shadows:            f.labels[FeatureShadows],
		Reflections:        f.labels[FeatureReflections],
		GlobalIllumination: f.labels[FeatureGlobalIllumination],
		AmbientOcclusion:   f.labels[FeatureAmbientOcclusion],
		Upscaling:          f.upscale,
	}, opts...)
	return f
}

func (f *fixture) assertIndicator(t *testing.T, ft Feature, on bool) {
	t.Helper()
	if on {
		assert.Equal(t, "On", f.labels[ft].Text(), ft.Title())
		assert.Equal(t, hud.ColorOn, f.labels[ft].Color(), ft.Title())
	} else {
		assert.Equal(t, "Off", f.labels[ft].Text(), ft.Title())
		assert.Equal(t, hud.ColorOff, f.labels[ft].Color(), ft.Title())
	}
}

func (f *fixture) assertAll(t *testing.T, on bool) {
	t.Helper()
	for _, ft := range Features() {
		f.assertIndicator(t, ft, on)
		assert.Equal(t, on, f.coord.Enabled(ft), ft.Title())
	}
}

func TestNewCoordinatorAppliesAllOn(t *testing.T) {
	f := newFixture(t, 2, nil)

	f.assertAll(t, true)
	assert.Equal(t, 2, f.coord.LightCount())
	assert.True(t, f.cam.CustomRenderingSettings())
	assert.True(t, f.cam.OverrideMask().IsSet(camera.FieldRayTracing))
	assert.True(t, f.cam.CustomFrameSettings().IsEnabled(camera.FieldRayTracing))
	for _, l := range f.scene.EnumerateLights() {
		assert.True(t, l.RayTracedShadows())
	}
	assert.Equal(t, volume.TracingModeRayTracing, f.refl.Tracing())
	assert.Equal(t, volume.TracingModeRayTracing, f.gi.Tracing())
	assert.True(t, f.ao.RayTracing())
}

func TestToggleScenario(t *testing.T) {
	f := newFixture(t, 2, nil)
	f.assertAll(t, true)

	require.NoError(t, f.coord.ToggleShadows())
	f.assertIndicator(t, FeatureShadows, false)
	for _, ft := range []Feature{FeatureGlobal, FeatureReflections, FeatureGlobalIllumination, FeatureAmbientOcclusion} {
		f.assertIndicator(t, ft, true)
	}
	for _, l := range f.scene.EnumerateLights() {
		assert.False(t, l.RayTracedShadows())
	}

	require.NoError(t, f.coord.ToggleGlobal())
	f.assertAll(t, false)
	assert.False(t, f.cam.CustomFrameSettings().IsEnabled(camera.FieldRayTracing))
	assert.Equal(t, volume.TracingModeRayMarching, f.refl.Tracing())
	assert.Equal(t, volume.TracingModeRayMarching, f.gi.Tracing())
	assert.False(t, f.ao.RayTracing())

	err := f.coord.ToggleShadows()
	assert.ErrorIs(t, err, ErrRejectedToggle)
	assert.Contains(t, err.Error(), "Shadows")
	f.assertIndicator(t, FeatureShadows, false)
	assert.False(t, f.coord.Enabled(FeatureShadows))
}

func TestSubTogglesRejectedWhileGlobalOff(t *testing.T) {
	f := newFixture(t, 2, nil)
	require.NoError(t, f.coord.ToggleGlobal())

	toggles := []func() error{
		f.coord.ToggleShadows,
		f.coord.ToggleReflections,
		f.coord.ToggleGlobalIllumination,
		f.coord.ToggleAmbientOcclusion,
	}
	for i := 0; i < 3; i++ {
		for _, toggle := range toggles {
			assert.ErrorIs(t, toggle(), ErrRejectedToggle)
			f.assertAll(t, false)
		}
	}
	assert.Equal(t, volume.TracingModeRayMarching, f.refl.Tracing())
}

func TestToggleGlobalTwiceRestoresState(t *testing.T) {
	f := newFixture(t, 2, nil)

	require.NoError(t, f.coord.ToggleGlobal())
	require.NoError(t, f.coord.ToggleGlobal())
	f.assertAll(t, true)

	require.NoError(t, f.coord.ToggleGlobal())
	require.NoError(t, f.coord.ToggleGlobal())
	require.NoError(t, f.coord.ToggleGlobal())
	f.assertAll(t, false)
}

func TestGlobalEnableForcesSubFeaturesOn(t *testing.T) {
	f := newFixture(t, 2, nil)
	require.NoError(t, f.coord.ToggleReflections())
	require.NoError(t, f.coord.ToggleAmbientOcclusion())

	require.NoError(t, f.coord.ToggleGlobal())
	require.NoError(t, f.coord.ToggleGlobal())
	f.assertAll(t, true)
	assert.Equal(t, volume.TracingModeRayTracing, f.refl.Tracing())
	assert.True(t, f.ao.RayTracing())
}

func TestShadowsWithoutLights(t *testing.T) {
	f := newFixture(t, 0, nil)
	f.assertIndicator(t, FeatureShadows, false)
	f.assertIndicator(t, FeatureReflections, true)

	for i := 0; i < 4; i++ {
		assert.ErrorIs(t, f.coord.ToggleShadows(), ErrEmptyLightRegistry)
		f.assertIndicator(t, FeatureShadows, false)
	}

	err := f.coord.ToggleGlobal()
	assert.ErrorIs(t, err, ErrEmptyLightRegistry)
	f.assertAll(t, false)
}

func TestEffectsMissingFromProfile(t *testing.T) {
	ao := volume.NewAmbientOcclusion(false)
	f := newFixture(t, 2, []volume.Effect{ao})

	f.assertIndicator(t, FeatureGlobal, true)
	f.assertIndicator(t, FeatureShadows, true)
	f.assertIndicator(t, FeatureAmbientOcclusion, true)
	f.assertIndicator(t, FeatureReflections, false)
	f.assertIndicator(t, FeatureGlobalIllumination, false)
	assert.True(t, ao.RayTracing())
	assert.False(t, f.coord.Enabled(FeatureReflections))
	assert.False(t, f.coord.Enabled(FeatureGlobalIllumination))
	assert.True(t, f.coord.Enabled(FeatureAmbientOcclusion))

	assert.ErrorIs(t, f.coord.ToggleReflections(), ErrMissingEffectOverride)
	assert.ErrorIs(t, f.coord.ToggleGlobalIllumination(), ErrMissingEffectOverride)
	f.assertIndicator(t, FeatureReflections, false)
	assert.False(t, f.coord.Enabled(FeatureReflections))

	require.NoError(t, f.coord.ToggleAmbientOcclusion())
	f.assertIndicator(t, FeatureAmbientOcclusion, false)
	assert.False(t, ao.RayTracing())

	require.NoError(t, f.coord.ToggleShadows())
	f.assertIndicator(t, FeatureShadows, false)

	err := f.coord.ToggleGlobal()
	assert.ErrorIs(t, err, ErrMissingEffectOverride)
	f.assertAll(t, false)

	// Re-enabling brings back the present effects only.
	assert.ErrorIs(t, f.coord.ToggleGlobal(), ErrMissingEffectOverride)
	for _, ft := range Features() {
		present := ft != FeatureReflections && ft != FeatureGlobalIllumination
		f.assertIndicator(t, ft, present)
		assert.Equal(t, present, f.coord.Enabled(ft), ft.Title())
	}
}

func TestTickReassertsFrameSettings(t *testing.T) {
	f := newFixture(t, 1, nil)

	f.cam.SetCustomFrameSettings(camera.FrameSettings(0))
	f.coord.Tick()
	assert.True(t, f.cam.CustomFrameSettings().IsEnabled(camera.FieldRayTracing))

	require.NoError(t, f.coord.ToggleGlobal())
	f.cam.SetGlobalRayTracingEnabled(true)
	f.coord.Tick()
	assert.False(t, f.cam.CustomFrameSettings().IsEnabled(camera.FieldRayTracing))
}

func TestTickDispatchesButtonClicks(t *testing.T) {
	f := newFixture(t, 1, nil)

	f.kb.Click(input.ActionToggleReflections)
	f.coord.Tick()
	f.assertIndicator(t, FeatureReflections, false)

	f.coord.Tick()
	f.assertIndicator(t, FeatureReflections, false)

	f.kb.Tap(common.Key1)
	f.coord.Tick()
	f.assertAll(t, false)

	f.kb.Click(input.ActionToggleShadows)
	f.coord.Tick()
	f.assertAll(t, false)
}

func TestUpscaling(t *testing.T) {
	f := newFixture(t, 1, nil)

	f.coord.Tick()
	enabled, quality := f.coord.Upscaling()
	assert.False(t, enabled)
	assert.Equal(t, camera.UpscalingMaxPerformance, quality)
	assert.Empty(t, f.upscale.Text())

	f.kb.Tap(common.KeyT)
	f.coord.Tick()
	assert.True(t, f.cam.UpscalingEnabled())
	assert.Equal(t, "Upscaling Mode: Max Performance", f.upscale.Text())

	f.kb.Tap(common.KeyC)
	f.coord.Tick()
	enabled, quality = f.coord.Upscaling()
	assert.True(t, enabled)
	assert.Equal(t, camera.UpscalingBalanced, quality)
	assert.Contains(t, f.upscale.Text(), "Balanced")
	assert.Equal(t, camera.UpscalingBalanced, f.cam.UpscalingQuality())

	for i := 0; i < 3; i++ {
		f.kb.Tap(common.KeyC)
		f.coord.Tick()
	}
	_, quality = f.coord.Upscaling()
	assert.Equal(t, camera.UpscalingBalanced, quality)

	f.kb.Tap(common.KeyT)
	f.coord.Tick()
	assert.False(t, f.cam.UpscalingEnabled())
	assert.Empty(t, f.upscale.Text())
}

func TestUpscalingCycleIgnoredWhileDisabled(t *testing.T) {
	f := newFixture(t, 1, nil)

	f.kb.Tap(common.KeyC)
	f.coord.Tick()
	f.kb.Tap(common.KeyT)
	f.coord.Tick()

	_, quality := f.coord.Upscaling()
	assert.Equal(t, camera.UpscalingMaxPerformance, quality)
	assert.Equal(t, camera.UpscalingMaxPerformance, f.cam.UpscalingQuality())
}

func TestUpscalingReassertedEveryTick(t *testing.T) {
	f := newFixture(t, 1, nil)
	f.kb.Tap(common.KeyT)
	f.coord.Tick()

	f.cam.SetUpscalingEnabled(false)
	f.coord.Tick()
	assert.True(t, f.cam.UpscalingEnabled())
}

func TestCoordinatorOptions(t *testing.T) {
	f := newFixture(t, 1, nil,
		WithIndicatorText("Enabled", "Disabled"),
		WithUpscalingPrefix("DLSS Mode: "),
		WithUpscalingLabels(map[camera.UpscalingQuality]string{camera.UpscalingMaxPerformance: "Performance"}),
	)
	assert.Equal(t, "Enabled", f.labels[FeatureGlobal].Text())

	f.kb.Tap(common.KeyT)
	f.coord.Tick()
	assert.Equal(t, "DLSS Mode: Performance", f.upscale.Text())

	f.kb.Tap(common.KeyC)
	f.coord.Tick()
	assert.Equal(t, "DLSS Mode: Balanced", f.upscale.Text())

	require.NoError(t, f.coord.ToggleGlobal())
	assert.Equal(t, "Disabled", f.labels[FeatureShadows].Text())
}

func TestNilIndicatorsAndRegistry(t *testing.T) {
	kb := input.NewKeyboard(nil)
	c := NewCoordinator(camera.NewCamera(), nil, nil, kb, Indicators{})
	assert.Equal(t, 0, c.LightCount())
	assert.ErrorIs(t, c.ToggleShadows(), ErrEmptyLightRegistry)
	assert.ErrorIs(t, c.ToggleReflections(), ErrMissingEffectOverride)
	c.Tick()

	assert.Panics(t, func() { NewCoordinator(nil, nil, nil, kb, Indicators{}) })
}

func TestConcurrentGlobalToggles(t *testing.T) {
	f := newFixture(t, 100, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = f.coord.ToggleGlobal()
		}()
		go func() {
			defer wg.Done()
			f.coord.Tick()
		}()
	}
	wg.Wait()

	f.assertAll(t, true)
	for _, l := range f.scene.EnumerateLights() {
		assert.True(t, l.RayTracedShadows())
	}
}

func TestFeatureNames(t *testing.T) {
	assert.Equal(t, "global_illumination", FeatureGlobalIllumination.String())
	assert.Equal(t, "Ambient Occlusion", FeatureAmbientOcclusion.Title())
	assert.Equal(t, input.ActionToggleShadows, FeatureShadows.Action())
	assert.Equal(t, input.ActionNone, Feature(99).Action())
	assert.Len(t, Features(), 5)
}
