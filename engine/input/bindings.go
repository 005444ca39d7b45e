package input

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-rt/common"
)

// Bindings maps virtual key codes to actions.
type Bindings map[uint32]Action

// DefaultBindings returns the stock key layout: 1-5 for the feature buttons,
// T toggles upscaling, C cycles its quality and Q quits.
func DefaultBindings() Bindings {
	return Bindings{
		common.Key1: ActionToggleGlobal,
		common.Key2: ActionToggleShadows,
		common.Key3: ActionToggleReflections,
		common.Key4: ActionToggleGlobalIllumination,
		common.Key5: ActionToggleAmbientOcclusion,
		common.KeyT: ActionToggleUpscaling,
		common.KeyC: ActionCycleUpscalingQuality,
		common.KeyQ: ActionQuit,
	}
}

// ParseBindings builds Bindings from a config table of action name to key name.
// Actions missing from the table keep their default key.
//
// Parameters:
//   - table: action name to key name, e.g. {"toggle_upscaling": "T"}
//
// Returns:
//   - Bindings: the resolved bindings
//   - error: error for unknown actions, unknown keys or a key bound twice
func ParseBindings(table map[string]string) (Bindings, error) {
	byAction := make(map[Action]uint32)
	for key, action := range DefaultBindings() {
		byAction[action] = key
	}

	for actionName, keyName := range table {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		key, ok := common.KeyCode(keyName)
		if !ok {
			return nil, fmt.Errorf("unknown key %q for action %s", keyName, action)
		}
		byAction[action] = key
	}

	b := make(Bindings, len(byAction))
	for action, key := range byAction {
		if prev, taken := b[key]; taken {
			return nil, fmt.Errorf("key %s bound to both %s and %s", common.KeyName(key), prev, action)
		}
		b[key] = action
	}
	return b, nil
}

// KeyFor returns the key bound to an action.
//
// Returns:
//   - uint32: the key code
//   - bool: false if the action is unbound
func (b Bindings) KeyFor(action Action) (uint32, bool) {
	for key, a := range b {
		if a == action {
			return key, true
		}
	}
	return 0, false
}

// Sorted returns the bound actions in declaration order, for help listings.
func (b Bindings) Sorted() []Action {
	out := make([]Action, 0, len(b))
	for _, a := range b {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
