package camera

import "strings"

// FrameSettingsField identifies a single render feature in a FrameSettings bit set.
type FrameSettingsField uint32

const (
	// FieldRayTracing gates every ray-traced technique for the camera.
	// When cleared, effects fall back to their rasterized or ray-marched paths.
	FieldRayTracing FrameSettingsField = iota

	// FieldShadows enables shadow map rendering.
	FieldShadows

	// FieldScreenSpaceReflection enables the reflection effect.
	FieldScreenSpaceReflection

	// FieldScreenSpaceGlobalIllumination enables the global illumination effect.
	FieldScreenSpaceGlobalIllumination

	// FieldScreenSpaceAmbientOcclusion enables the ambient occlusion effect.
	FieldScreenSpaceAmbientOcclusion

	// FieldPostprocess enables the post-process volume stack.
	FieldPostprocess

	fieldCount
)

var fieldNames = [fieldCount]string{
	"RayTracing",
	"Shadows",
	"ScreenSpaceReflection",
	"ScreenSpaceGlobalIllumination",
	"ScreenSpaceAmbientOcclusion",
	"Postprocess",
}

// String returns the field name.
func (f FrameSettingsField) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return "Unknown"
}

// FrameSettings is a bit set of enabled FrameSettingsFields.
// It is a value type; copies are independent.
type FrameSettings uint32

// DefaultFrameSettings returns the renderer defaults: every feature enabled except ray tracing.
//
// Returns:
//   - FrameSettings: the default frame settings
func DefaultFrameSettings() FrameSettings {
	var fs FrameSettings
	for f := FrameSettingsField(0); f < fieldCount; f++ {
		if f != FieldRayTracing {
			fs.SetEnabled(f, true)
		}
	}
	return fs
}

// IsEnabled reports whether the given field is set.
//
// Parameters:
//   - field: the field to query
//
// Returns:
//   - bool: true if the field is enabled
func (fs FrameSettings) IsEnabled(field FrameSettingsField) bool {
	return fs&(1<<field) != 0
}

// SetEnabled sets or clears the given field.
//
// Parameters:
//   - field: the field to modify
//   - enabled: the new value
func (fs *FrameSettings) SetEnabled(field FrameSettingsField, enabled bool) {
	if enabled {
		*fs |= 1 << field
	} else {
		*fs &^= 1 << field
	}
}

// String lists the enabled fields, e.g. "RayTracing|Shadows".
func (fs FrameSettings) String() string {
	var parts []string
	for f := FrameSettingsField(0); f < fieldCount; f++ {
		if fs.IsEnabled(f) {
			parts = append(parts, f.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// OverrideMask marks which FrameSettingsFields a camera's custom settings override.
type OverrideMask uint32

// IsSet reports whether the field is overridden.
func (m OverrideMask) IsSet(field FrameSettingsField) bool {
	return m&(1<<field) != 0
}

// Set marks or unmarks the field as overridden.
func (m *OverrideMask) Set(field FrameSettingsField, overridden bool) {
	if overridden {
		*m |= 1 << field
	} else {
		*m &^= 1 << field
	}
}

// Apply merges custom settings onto defaults: overridden fields come from custom,
// every other field from defaults.
//
// Parameters:
//   - defaults: the renderer default frame settings
//   - custom: the camera's custom frame settings
//
// Returns:
//   - FrameSettings: the effective frame settings
func (m OverrideMask) Apply(defaults, custom FrameSettings) FrameSettings {
	mask := FrameSettings(m)
	return (defaults &^ mask) | (custom & mask)
}

// UpscalingQuality selects the deep-learning upscaler preset.
type UpscalingQuality uint32

const (
	// UpscalingMaxPerformance renders at the lowest internal resolution.
	UpscalingMaxPerformance UpscalingQuality = iota

	// UpscalingBalanced trades resolution and performance evenly.
	UpscalingBalanced

	// UpscalingMaxQuality renders at the highest internal resolution.
	UpscalingMaxQuality

	upscalingQualityCount
)

// Next returns the following preset, wrapping MaxQuality back to MaxPerformance.
func (q UpscalingQuality) Next() UpscalingQuality {
	return (q + 1) % upscalingQualityCount
}

// Valid reports whether q names a known preset.
func (q UpscalingQuality) Valid() bool {
	return q < upscalingQualityCount
}

// RenderScale returns the fraction of the output resolution the renderer draws at for this preset.
func (q UpscalingQuality) RenderScale() float32 {
	switch q {
	case UpscalingMaxPerformance:
		return 0.5
	case UpscalingBalanced:
		return 0.58
	default:
		return 0.67
	}
}
