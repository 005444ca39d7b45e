package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/raytracing"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadless(t *testing.T, opts ...RendererBuilderOption) Renderer {
	t.Helper()
	r, err := NewRenderer(BackendTypeHeadless, nil, append([]RendererBuilderOption{WithSize(800, 600)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(r.Release)
	return r
}

func frame(t *testing.T, r Renderer) {
	t.Helper()
	require.NoError(t, r.BeginFrame())
	r.EndFrame()
	r.Present()
}

func TestWGPURequiresSurface(t *testing.T) {
	_, err := NewRenderer(BackendTypeWGPU, nil)
	assert.Error(t, err)

	_, err = NewRenderer(RendererBackendType(42), nil)
	assert.Error(t, err)
}

func TestHeadlessFrameProtocol(t *testing.T) {
	r := newHeadless(t)
	assert.Equal(t, BackendTypeHeadless, r.BackendType())

	require.NoError(t, r.BeginFrame())
	assert.Error(t, r.BeginFrame())
	r.EndFrame()
	assert.Error(t, r.BeginFrame())
	r.Present()
	r.Present()
	assert.Equal(t, uint64(1), r.FrameStats().Frames)

	frame(t, r)
	assert.Equal(t, uint64(2), r.FrameStats().Frames)
}

func TestFrameStatsFollowCamera(t *testing.T) {
	cam := camera.NewCamera(camera.WithCustomRenderingSettings(true))
	cam.SetOverrideEnabled(camera.FieldRayTracing, true)
	r := newHeadless(t, WithCamera(cam))

	frame(t, r)
	stats := r.FrameStats()
	assert.False(t, stats.Settings.IsEnabled(camera.FieldRayTracing))
	assert.Equal(t, rasterClear, stats.Clear)
	assert.Equal(t, 800, stats.RenderWidth)

	cam.SetGlobalRayTracingEnabled(true)
	cam.SetUpscalingEnabled(true)
	cam.SetUpscalingQuality(camera.UpscalingMaxPerformance)
	frame(t, r)
	stats = r.FrameStats()
	assert.True(t, stats.Settings.IsEnabled(camera.FieldRayTracing))
	assert.NotEqual(t, rasterClear, stats.Clear)
	assert.True(t, stats.Upscaling)
	assert.Equal(t, 400, stats.RenderWidth)
	assert.Equal(t, 300, stats.RenderHeight)
}

func TestResize(t *testing.T) {
	cam := camera.NewCamera()
	r := newHeadless(t)
	r.SetCamera(cam)
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), 1e-6)

	r.Resize(1000, 500)
	assert.InDelta(t, 2.0, cam.Aspect(), 1e-6)
	r.Resize(0, 0)
	frame(t, r)
	assert.Equal(t, 1000, r.FrameStats().Width)
	assert.Equal(t, 500, r.FrameStats().Height)
}

func TestClearColor(t *testing.T) {
	off := camera.DefaultFrameSettings()
	assert.Equal(t, rasterClear, ClearColor(off, tracedEffectFields))

	all := camera.DefaultFrameSettings()
	all.SetEnabled(camera.FieldRayTracing, true)
	assert.True(t, ClearColor(all, tracedEffectFields).AlmostEqualRgb(tracedClear))

	globalOnly := ClearColor(all, nil)
	assert.False(t, globalOnly.AlmostEqualRgb(tracedClear))
	assert.False(t, globalOnly.AlmostEqualRgb(rasterClear))

	// A traced effect that the frame settings disable does not count.
	partial := all
	partial.SetEnabled(camera.FieldShadows, false)
	assert.True(t, ClearColor(partial, []camera.FrameSettingsField{camera.FieldShadows}).AlmostEqualRgb(globalOnly))
}

func TestTracedEffects(t *testing.T) {
	assert.Empty(t, TracedEffects(nil))

	refl := volume.NewReflection(volume.TracingModeRayTracing)
	ao := volume.NewAmbientOcclusion(false)
	sun := light.NewLight(light.LightTypeDirectional, light.WithRayTracedShadows(true))
	lamp := light.NewLight(light.LightTypePoint, light.WithRayTracedShadows(false))
	sc := scene.NewScene("traced", camera.NewCamera(), volume.NewProfile("traced", refl, ao), scene.WithLights(sun, lamp))

	assert.Equal(t, []camera.FrameSettingsField{camera.FieldScreenSpaceReflection}, TracedEffects(sc))

	lamp.SetRayTracedShadows(true)
	ao.SetRayTracingEnabled(true)
	refl.SetTracingMode(volume.TracingModeRayMarching)
	assert.Equal(t, []camera.FrameSettingsField{camera.FieldShadows, camera.FieldScreenSpaceAmbientOcclusion}, TracedEffects(sc))

	empty := scene.NewScene("empty", camera.NewCamera(), nil)
	assert.Empty(t, TracedEffects(empty))
}

func TestClearColorFollowsToggles(t *testing.T) {
	cam := camera.NewCamera()
	profile := volume.NewProfile("toggles",
		volume.NewReflection(volume.TracingModeRayMarching),
		volume.NewGlobalIllumination(volume.TracingModeRayMarching),
		volume.NewAmbientOcclusion(false),
	)
	sc := scene.NewScene("toggles", cam, profile, scene.WithLights(light.NewLight(light.LightTypePoint)))
	coord := raytracing.NewCoordinator(cam, sc, profile, input.NewKeyboard(nil), raytracing.Indicators{})

	r := newHeadless(t, WithCamera(cam), WithEffectSource(sc))
	assert.Equal(t, sc, r.EffectSource())

	frame(t, r)
	allOn := r.FrameStats().Clear
	assert.True(t, allOn.AlmostEqualRgb(tracedClear))

	for _, f := range []raytracing.Feature{
		raytracing.FeatureShadows,
		raytracing.FeatureReflections,
		raytracing.FeatureGlobalIllumination,
		raytracing.FeatureAmbientOcclusion,
	} {
		require.NoError(t, coord.Toggle(f))
	}
	frame(t, r)
	subOff := r.FrameStats().Clear
	assert.False(t, subOff.AlmostEqualRgb(allOn))
	assert.False(t, subOff.AlmostEqualRgb(rasterClear))

	require.NoError(t, coord.ToggleGlobal())
	frame(t, r)
	assert.Equal(t, rasterClear, r.FrameStats().Clear)

	require.NoError(t, coord.ToggleGlobal())
	frame(t, r)
	assert.True(t, r.FrameStats().Clear.AlmostEqualRgb(allOn))
}
