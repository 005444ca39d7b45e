package input

import (
	"fmt"
	"strings"
)

// Action is a discrete input event the ray tracing controls react to.
type Action uint8

const (
	ActionNone Action = iota

	// Button actions, one per feature toggle.
	ActionToggleGlobal
	ActionToggleShadows
	ActionToggleReflections
	ActionToggleGlobalIllumination
	ActionToggleAmbientOcclusion

	// Upscaling key actions.
	ActionToggleUpscaling
	ActionCycleUpscalingQuality

	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	"none",
	"toggle_global",
	"toggle_shadows",
	"toggle_reflections",
	"toggle_global_illumination",
	"toggle_ambient_occlusion",
	"toggle_upscaling",
	"cycle_upscaling_quality",
	"quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

// ParseAction resolves a config action name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Actions returns every bindable action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionNone + 1; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}
