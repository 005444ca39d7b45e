package input

import "sync"

// Keyboard turns raw key and button events into edge-triggered actions.
//
// A key press records one pending edge for the bound action; holding the key
// (auto-repeat) does not record more. Pressed consumes the edge, so each
// physical press fires exactly once no matter how many ticks observe it.
// Button clicks go straight to the pending set. Safe for concurrent use:
// window and terminal callbacks write from their own goroutines while the
// engine tick reads.
type Keyboard struct {
	mu       sync.Mutex
	bindings Bindings
	down     map[uint32]bool
	pending  map[Action]bool
}

// NewKeyboard creates a Keyboard using the given bindings.
// A nil map uses DefaultBindings.
//
// Parameters:
//   - bindings: key code to action map
//
// Returns:
//   - *Keyboard: the new keyboard
func NewKeyboard(bindings Bindings) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{
		bindings: bindings,
		down:     make(map[uint32]bool),
		pending:  make(map[Action]bool),
	}
}

// Bindings returns the keyboard's key bindings.
func (k *Keyboard) Bindings() Bindings {
	return k.bindings
}

// KeyDown records a key press. Repeated KeyDown calls without a KeyUp are ignored.
//
// Parameters:
//   - keyCode: the virtual key code
func (k *Keyboard) KeyDown(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.down[keyCode] {
		return
	}
	k.down[keyCode] = true
	if action, ok := k.bindings[keyCode]; ok {
		k.pending[action] = true
	}
}

// KeyUp records a key release.
//
// Parameters:
//   - keyCode: the virtual key code
func (k *Keyboard) KeyUp(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.down, keyCode)
}

// Tap records a press immediately followed by a release. Used for input sources
// that report key presses without releases, such as terminals.
//
// Parameters:
//   - keyCode: the virtual key code
func (k *Keyboard) Tap(keyCode uint32) {
	k.KeyDown(keyCode)
	k.KeyUp(keyCode)
}

// Click records a UI button click for an action.
//
// Parameters:
//   - action: the clicked button's action
func (k *Keyboard) Click(action Action) {
	if action == ActionNone {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pending[action] = true
}

// Pressed reports whether the action fired since the last call and consumes the edge.
//
// Parameters:
//   - action: the action to query
//
// Returns:
//   - bool: true exactly once per press or click
func (k *Keyboard) Pressed(action Action) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.pending[action] {
		return false
	}
	delete(k.pending, action)
	return true
}

// Held reports whether a key is currently down.
func (k *Keyboard) Held(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down[keyCode]
}
