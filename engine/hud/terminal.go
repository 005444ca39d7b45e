package hud

import (
	"fmt"
	"unicode"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Row is one HUD line: a caption, the label showing its state and the button
// action fired when the line is clicked.
type Row struct {
	Caption string
	Label   *Label
	Action  input.Action
}

// Terminal draws status labels on a tcell screen and feeds key presses and
// row clicks into an input.Keyboard.
type Terminal struct {
	screen   tcell.Screen
	keyboard *input.Keyboard

	title  string
	rows   []Row
	footer *Label

	// top is the screen row of the first Row; rows follow one per line.
	top int

	lastButtons tcell.ButtonMask
}

// functionKeys maps tcell function keys to engine key codes.
var functionKeys = map[tcell.Key]uint32{
	tcell.KeyF1:    common.KeyF1,
	tcell.KeyF2:    common.KeyF2,
	tcell.KeyF3:    common.KeyF3,
	tcell.KeyF4:    common.KeyF4,
	tcell.KeyF5:    common.KeyF5,
	tcell.KeyEnter: common.KeyEnter,
	tcell.KeyTab:   common.KeyTab,
}

// NewTerminal creates a HUD on an initialized screen.
//
// Parameters:
//   - screen: an initialized tcell screen
//   - keyboard: the keyboard receiving key presses and row clicks
//   - title: the heading drawn on the first line
//
// Returns:
//   - *Terminal: the HUD
func NewTerminal(screen tcell.Screen, keyboard *input.Keyboard, title string) *Terminal {
	screen.EnableMouse()
	return &Terminal{
		screen:   screen,
		keyboard: keyboard,
		title:    title,
		top:      2,
	}
}

// AddRow appends a clickable status line.
func (t *Terminal) AddRow(caption string, label *Label, action input.Action) {
	t.rows = append(t.rows, Row{Caption: caption, Label: label, Action: action})
}

// SetFooter sets a non-clickable label drawn below the rows.
func (t *Terminal) SetFooter(label *Label) {
	t.footer = label
}

// Draw renders the title, every row and the footer, then shows the screen.
func (t *Terminal) Draw() {
	t.screen.Clear()
	t.drawText(0, 0, t.title, tcell.StyleDefault.Bold(true))

	width := 0
	for _, r := range t.rows {
		width = max(width, len(t.caption(r)))
	}
	for i, r := range t.rows {
		y := t.top + i
		caption := t.caption(r)
		t.drawText(0, y, caption, tcell.StyleDefault)
		t.drawText(width+1, y, r.Label.Text(), styleFor(r.Label.Color()))
	}
	if t.footer != nil {
		t.drawText(0, t.top+len(t.rows)+1, t.footer.Text(), styleFor(t.footer.Color()))
	}
	t.screen.Show()
}

// HandleEvent applies a single tcell event.
//
// Parameters:
//   - ev: the event to handle
//
// Returns:
//   - bool: false when the event asks the application to quit (Esc or Ctrl+C)
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			r := unicode.ToUpper(ev.Rune())
			if code, ok := common.KeyCode(string(r)); ok {
				t.keyboard.Tap(code)
			}
		default:
			if code, ok := functionKeys[ev.Key()]; ok {
				t.keyboard.Tap(code)
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && t.lastButtons&tcell.Button1 == 0
		t.lastButtons = buttons
		if pressed {
			_, y := ev.Position()
			if i := y - t.top; i >= 0 && i < len(t.rows) {
				t.keyboard.Click(t.rows[i].Action)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Run polls screen events until the screen is finalized or a quit event arrives.
// Blocks; run it on its own goroutine.
//
// Parameters:
//   - onQuit: called once when a quit event is received (may be nil)
func (t *Terminal) Run(onQuit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if !t.HandleEvent(ev) {
			if onQuit != nil {
				onQuit()
			}
			return
		}
	}
}

func (t *Terminal) caption(r Row) string {
	key, ok := t.keyboard.Bindings().KeyFor(r.Action)
	if !ok {
		return r.Caption + ":"
	}
	return fmt.Sprintf("[%s] %s:", common.KeyName(key), r.Caption)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func styleFor(c colorful.Color) tcell.Style {
	r, g, b := c.Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}
