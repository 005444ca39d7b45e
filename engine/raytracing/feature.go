package raytracing

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/lucasb-eyer/go-colorful"
)

// Feature identifies one of the ray traced render features the coordinator switches.
type Feature uint8

const (
	FeatureGlobal Feature = iota
	FeatureShadows
	FeatureReflections
	FeatureGlobalIllumination
	FeatureAmbientOcclusion

	featureCount
)

var featureInfo = [featureCount]struct {
	name   string
	title  string
	action input.Action
}{
	{"global", "Global RT", input.ActionToggleGlobal},
	{"shadows", "Shadows", input.ActionToggleShadows},
	{"reflections", "Reflections", input.ActionToggleReflections},
	{"global_illumination", "Global Illumination", input.ActionToggleGlobalIllumination},
	{"ambient_occlusion", "Ambient Occlusion", input.ActionToggleAmbientOcclusion},
}

// Features returns every feature in indicator order.
func Features() []Feature {
	out := make([]Feature, 0, featureCount)
	for f := range featureCount {
		out = append(out, f)
	}
	return out
}

// String returns the feature's config name.
func (f Feature) String() string {
	if f < featureCount {
		return featureInfo[f].name
	}
	return fmt.Sprintf("feature(%d)", uint8(f))
}

// Title returns the human readable feature name used on the HUD and in logs.
func (f Feature) Title() string {
	if f < featureCount {
		return featureInfo[f].title
	}
	return f.String()
}

// Action returns the button action that toggles the feature.
func (f Feature) Action() input.Action {
	if f < featureCount {
		return featureInfo[f].action
	}
	return input.ActionNone
}

// StatusIndicator is a text label showing a feature's state.
type StatusIndicator interface {
	SetText(text string)
	SetColor(c colorful.Color)
}

// Indicators holds one status indicator per feature plus the upscaling mode label.
// Nil entries are allowed and simply not updated.
type Indicators struct {
	Global             StatusIndicator
	Shadows            StatusIndicator
	Reflections        StatusIndicator
	GlobalIllumination StatusIndicator
	AmbientOcclusion   StatusIndicator
	Upscaling          StatusIndicator
}

func (i Indicators) byFeature() [featureCount]StatusIndicator {
	return [featureCount]StatusIndicator{
		FeatureGlobal:             i.Global,
		FeatureShadows:            i.Shadows,
		FeatureReflections:        i.Reflections,
		FeatureGlobalIllumination: i.GlobalIllumination,
		FeatureAmbientOcclusion:   i.AmbientOcclusion,
	}
}
