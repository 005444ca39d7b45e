package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressedIsEdgeTriggered(t *testing.T) {
	k := NewKeyboard(nil)

	k.KeyDown(common.KeyT)
	k.KeyDown(common.KeyT) // auto-repeat
	assert.True(t, k.Held(common.KeyT))
	assert.True(t, k.Pressed(ActionToggleUpscaling))
	assert.False(t, k.Pressed(ActionToggleUpscaling))

	k.KeyUp(common.KeyT)
	assert.False(t, k.Held(common.KeyT))
	assert.False(t, k.Pressed(ActionToggleUpscaling))

	k.KeyDown(common.KeyT)
	assert.True(t, k.Pressed(ActionToggleUpscaling))
}

func TestTapAndClick(t *testing.T) {
	k := NewKeyboard(nil)
	k.Tap(common.KeyC)
	k.Tap(common.KeyC)
	assert.True(t, k.Pressed(ActionCycleUpscalingQuality))
	assert.False(t, k.Held(common.KeyC))

	k.Click(ActionToggleShadows)
	k.Click(ActionNone)
	assert.True(t, k.Pressed(ActionToggleShadows))
	assert.False(t, k.Pressed(ActionNone))
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	k := NewKeyboard(Bindings{common.KeyX: ActionQuit})
	k.KeyDown(common.KeyT)
	assert.False(t, k.Pressed(ActionToggleUpscaling))
	k.KeyDown(common.KeyX)
	assert.True(t, k.Pressed(ActionQuit))
}

func TestConcurrentPresses(t *testing.T) {
	k := NewKeyboard(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Click(ActionToggleGlobal)
			k.Pressed(ActionToggleGlobal)
		}()
	}
	wg.Wait()
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(map[string]string{
		"toggle_upscaling": "U",
		"toggle_global":    "F1",
	})
	require.NoError(t, err)

	key, ok := b.KeyFor(ActionToggleUpscaling)
	require.True(t, ok)
	assert.Equal(t, uint32(common.KeyU), key)

	key, ok = b.KeyFor(ActionToggleGlobal)
	require.True(t, ok)
	assert.Equal(t, uint32(common.KeyF1), key)

	key, ok = b.KeyFor(ActionCycleUpscalingQuality)
	require.True(t, ok)
	assert.Equal(t, uint32(common.KeyC), key)
}

func TestParseBindingsErrors(t *testing.T) {
	_, err := ParseBindings(map[string]string{"fly": "F"})
	assert.Error(t, err)

	_, err = ParseBindings(map[string]string{"quit": "Hyper"})
	assert.Error(t, err)

	_, err = ParseBindings(map[string]string{"toggle_upscaling": "C"})
	assert.ErrorContains(t, err, "bound to both")
}

func TestActions(t *testing.T) {
	all := Actions()
	assert.Equal(t, ActionToggleGlobal, all[0])
	assert.Equal(t, ActionQuit, all[len(all)-1])

	for _, a := range all {
		back, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	assert.Equal(t, 8, len(DefaultBindings().Sorted()))
}
