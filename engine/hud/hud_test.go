package hud

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *input.Keyboard, *Label) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	kb := input.NewKeyboard(nil)
	term := NewTerminal(screen, kb, "Ray Tracing")
	global := NewLabel("global")
	global.SetText("On")
	global.SetColor(ColorOn)
	term.AddRow("Global RT", global, input.ActionToggleGlobal)
	term.AddRow("Shadows", NewLabel("shadows"), input.ActionToggleShadows)
	return term, screen, kb, global
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " \x00")
}

func TestLabel(t *testing.T) {
	l := NewLabel("ao")
	assert.Equal(t, ColorWhite, l.Color())
	l.SetText("Off")
	l.SetColor(ColorOff)
	assert.Equal(t, "Off", l.Text())
	assert.Equal(t, ColorOff, l.Color())
	assert.Equal(t, "ao: Off", l.String())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#00ff00")
	require.NoError(t, err)
	assert.True(t, c.AlmostEqualRgb(ColorOn))

	_, err = ParseColor("green")
	assert.Error(t, err)
}

func TestDrawRendersRowsWithColor(t *testing.T) {
	term, screen, _, _ := newTestTerminal(t)
	term.Draw()

	assert.Equal(t, "Ray Tracing", rowText(screen, 0))
	assert.Contains(t, rowText(screen, 2), "[1] Global RT:")
	assert.True(t, strings.HasSuffix(rowText(screen, 2), "On"))

	line := rowText(screen, 2)
	x := strings.LastIndex(line, "On")
	_, _, style, _ := screen.GetContent(x, 2)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), fg)
}

func TestFooter(t *testing.T) {
	term, screen, _, _ := newTestTerminal(t)
	footer := NewLabel("upscaling")
	footer.SetText("Upscaling Mode: Balanced")
	term.SetFooter(footer)
	term.Draw()
	assert.Equal(t, "Upscaling Mode: Balanced", rowText(screen, 5))
}

func TestKeyEventsTapKeyboard(t *testing.T) {
	term, _, kb, _ := newTestTerminal(t)

	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone)))
	assert.True(t, kb.Pressed(input.ActionToggleUpscaling))
	assert.False(t, kb.Held(common.KeyT))

	assert.False(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRowClickFiresButtonOnce(t *testing.T) {
	term, _, kb, _ := newTestTerminal(t)

	term.HandleEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone)) // drag
	assert.True(t, kb.Pressed(input.ActionToggleShadows))
	assert.False(t, kb.Pressed(input.ActionToggleShadows))

	term.HandleEvent(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(5, 10, tcell.Button1, tcell.ModNone))
	for _, a := range input.Actions() {
		assert.False(t, kb.Pressed(a), a.String())
	}
}
