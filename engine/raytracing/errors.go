package raytracing

import "errors"

var (
	// ErrMissingEffectOverride is returned when the volume profile lacks the effect a toggle drives.
	ErrMissingEffectOverride = errors.New("raytracing: effect override missing from volume profile")

	// ErrRejectedToggle is returned when a feature toggle is requested while global ray tracing is off.
	ErrRejectedToggle = errors.New("raytracing: global ray tracing is off")

	// ErrEmptyLightRegistry is returned when shadows are applied with no lights in the scene.
	ErrEmptyLightRegistry = errors.New("raytracing: there are no lights in the scene")
)
