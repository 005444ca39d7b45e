package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window defines the interface for a platform window.
type Window interface {
	// SetUpdateCallback sets the function called once per message pump iteration on the window thread.
	//
	// Parameters:
	//   - callback: the function to call each iteration
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer size changes.
	//
	// Parameters:
	//   - callback: the function to call with the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the function called when a key is pressed or repeats.
	//
	// Parameters:
	//   - callback: the function to call with the key code (see common.Key*)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the function called when a key is released.
	//
	// Parameters:
	//   - callback: the function to call with the key code (see common.Key*)
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetCloseOnEscape controls whether Escape closes the window. Enabled by default.
	SetCloseOnEscape(enabled bool)

	// SetTitle replaces the window title. Must be called from the window thread,
	// for example inside the update callback.
	SetTitle(title string)

	// SurfaceDescriptor returns the WebGPU surface descriptor for the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	IsRunning() bool

	// RequestClose asks the message pump to stop without destroying the window.
	// Safe to call from any goroutine; call Close once ProcessMessages has returned.
	RequestClose()

	// Close closes the window and releases platform resources.
	Close() error

	// ProcessMessages pumps window events until the window closes. Blocks the calling thread.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// engineWindow holds platform independent window state.
type engineWindow struct {
	title string

	width int

	height int

	closeOnEscape bool

	internalWindow any

	onUpdate func()

	onResize func(width, height int)

	onKeyDown func(keyCode uint32)

	onKeyUp func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a platform window.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options for the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:         "Default Window Title",
		width:         1280,
		height:        720,
		closeOnEscape: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetCloseOnEscape(enabled bool) {
	w.closeOnEscape = enabled
}

func (w *engineWindow) SetTitle(title string) {
	if title == w.title {
		return
	}
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
