package hud

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Stock indicator colors.
var (
	ColorOn    = colorful.Color{R: 0, G: 1, B: 0}
	ColorOff   = colorful.Color{R: 1, G: 0, B: 0}
	ColorWhite = colorful.Color{R: 1, G: 1, B: 1}
)

// ParseColor parses a "#rrggbb" hex color from config.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("hud: invalid color %q: %w", hex, err)
	}
	return c, nil
}

// Label is a text status indicator with a color.
// Writers (the ray tracing controls) and readers (the HUD draw loop) may run on
// different goroutines.
type Label struct {
	mu    sync.RWMutex
	name  string
	text  string
	color colorful.Color
}

// NewLabel creates an empty white label.
//
// Parameters:
//   - name: the label's identifier, used in logs
//
// Returns:
//   - *Label: the new label
func NewLabel(name string) *Label {
	return &Label{name: name, color: ColorWhite}
}

// Name returns the label's identifier.
func (l *Label) Name() string {
	return l.name
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = text
}

// SetColor replaces the label's color.
func (l *Label) SetColor(c colorful.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = c
}

// Text returns the label's text.
func (l *Label) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// Color returns the label's color.
func (l *Label) Color() colorful.Color {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.color
}

// String formats the label as "name: text".
func (l *Label) String() string {
	return l.name + ": " + l.Text()
}
