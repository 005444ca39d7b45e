package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA = 65 // A key (ASCII)
	KeyB = 66 // B key (ASCII)
	KeyC = 67 // C key (ASCII)
	KeyD = 68 // D key (ASCII)
	KeyE = 69 // E key (ASCII)
	KeyF = 70 // F key (ASCII)
	KeyG = 71 // G key (ASCII)
	KeyH = 72 // H key (ASCII)
	KeyL = 76 // L key (ASCII)
	KeyM = 77 // M key (ASCII)
	KeyO = 79 // O key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyR = 82 // R key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyT = 84 // T key (ASCII)
	KeyU = 85 // U key (ASCII)
	KeyV = 86 // V key (ASCII)
	KeyW = 87 // W key (ASCII)
	KeyX = 88 // X key (ASCII)

	KeySpace     = 32  // Spacebar (ASCII)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyEnter     = 257 // Enter key (GLFW)
	KeyTab       = 258 // Tab key (GLFW)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Function keys (GLFW)
const (
	KeyF1 = 290
	KeyF2 = 291
	KeyF3 = 292
	KeyF4 = 293
	KeyF5 = 294
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// namedKeys maps the non-printable key names accepted in config files to their codes.
var namedKeys = map[string]uint32{
	"SPACE":     KeySpace,
	"BACKSPACE": KeyBackspace,
	"ESC":       KeyEsc,
	"ESCAPE":    KeyEsc,
	"ENTER":     KeyEnter,
	"TAB":       KeyTab,
	"F1":        KeyF1,
	"F2":        KeyF2,
	"F3":        KeyF3,
	"F4":        KeyF4,
	"F5":        KeyF5,
}

// KeyCode resolves a key name to its virtual key code.
// Single printable characters map to their upper-case ASCII value, which matches GLFW;
// longer names are looked up in the named key table. Matching is case-insensitive.
//
// Parameters:
//   - name: the key name, e.g. "T", "1" or "F2"
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is not recognized
func KeyCode(name string) (uint32, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) == 1 {
		c := name[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return uint32(c), true
		}
		return 0, false
	}
	code, ok := namedKeys[name]
	return code, ok
}

// KeyName returns the display name for a key code, the inverse of KeyCode.
//
// Parameters:
//   - code: the virtual key code
//
// Returns:
//   - string: the key name, or "?" for unknown codes
func KeyName(code uint32) string {
	if (code >= 'A' && code <= 'Z') || (code >= '0' && code <= '9') {
		return string(rune(code))
	}
	for name, c := range namedKeys {
		if c == code && name != "ESCAPE" {
			return name
		}
	}
	return "?"
}
