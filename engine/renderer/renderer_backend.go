package renderer

import "github.com/lucasb-eyer/go-colorful"

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend. It needs a window surface.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeHeadless selects a backend that tracks frames without touching a GPU.
	// Used by the terminal front end and by tests.
	BackendTypeHeadless
)

// String returns the backend's config name.
func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeHeadless:
		return "headless"
	default:
		return "wgpu"
	}
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4; higher values are adapter-dependent.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent.
	MSAA8x MSAASampleCount = 8
)

// RendererBackend is the interface each backend implements for the Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)creates size dependent resources.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets how frames are delivered to the display.
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the next frame target and begins a pass cleared to the given color.
	//
	// Parameters:
	//   - clear: the clear color for the frame
	//
	// Returns:
	//   - error: an error if the frame target could not be acquired
	BeginFrame(clear colorful.Color) error

	// EndFrame ends the current pass and submits it.
	EndFrame()

	// Present displays the submitted frame and releases the frame target.
	Present()

	// Release frees backend resources.
	Release()
}
