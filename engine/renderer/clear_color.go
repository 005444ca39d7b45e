package renderer

import (
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// rasterClear is the clear color while ray tracing is off.
	rasterClear = colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	// tracedClear is the clear color with ray tracing and every traced effect on.
	tracedClear = colorful.Color{R: 0.05, G: 0.2, B: 0.35}
)

var tracedEffectFields = []camera.FrameSettingsField{
	camera.FieldShadows,
	camera.FieldScreenSpaceReflection,
	camera.FieldScreenSpaceGlobalIllumination,
	camera.FieldScreenSpaceAmbientOcclusion,
}

// EffectSource exposes the lights and post-process effects a frame is drawn with.
// scene.Scene satisfies it.
type EffectSource interface {
	Volume() volume.Profile
	EnumerateLights() []light.Light
}

// TracedEffects returns the frame settings fields whose effect is currently ray traced
// in the source: shadows when every light uses ray-traced shadows, and each volume
// effect whose override is set to ray tracing.
//
// Parameters:
//   - src: the lights and volume profile to inspect (may be nil)
//
// Returns:
//   - []camera.FrameSettingsField: the traced effect fields
func TracedEffects(src EffectSource) []camera.FrameSettingsField {
	if src == nil {
		return nil
	}

	var traced []camera.FrameSettingsField
	if lights := src.EnumerateLights(); len(lights) > 0 {
		all := true
		for _, l := range lights {
			if !l.RayTracedShadows() {
				all = false
				break
			}
		}
		if all {
			traced = append(traced, camera.FieldShadows)
		}
	}

	profile := src.Volume()
	if profile == nil {
		return traced
	}
	if r, ok := volume.TryGet[*volume.Reflection](profile); ok && r.Tracing() == volume.TracingModeRayTracing {
		traced = append(traced, camera.FieldScreenSpaceReflection)
	}
	if gi, ok := volume.TryGet[*volume.GlobalIllumination](profile); ok && gi.Tracing() == volume.TracingModeRayTracing {
		traced = append(traced, camera.FieldScreenSpaceGlobalIllumination)
	}
	if ao, ok := volume.TryGet[*volume.AmbientOcclusion](profile); ok && ao.RayTracing() {
		traced = append(traced, camera.FieldScreenSpaceAmbientOcclusion)
	}
	return traced
}

// ClearColor returns the frame clear color. It blends from the raster grey toward
// the traced blue by the share of effects that are both enabled in the frame
// settings and ray traced, so the window shows the ray tracing state at a glance.
//
// Parameters:
//   - fs: the effective frame settings
//   - traced: the effect fields currently ray traced, see TracedEffects
//
// Returns:
//   - colorful.Color: the clear color
func ClearColor(fs camera.FrameSettings, traced []camera.FrameSettingsField) colorful.Color {
	if !fs.IsEnabled(camera.FieldRayTracing) {
		return rasterClear
	}
	enabled := 1
	for _, f := range traced {
		if fs.IsEnabled(f) {
			enabled++
		}
	}
	t := float64(enabled) / float64(len(tracedEffectFields)+1)
	return rasterClear.BlendLab(tracedClear, t).Clamped()
}
