package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface is a presentable window surface.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// FrameStats describes the renderer's most recent frame.
type FrameStats struct {
	// Frames is the number of frames presented.
	Frames uint64

	// Width and Height are the output surface size in pixels.
	Width, Height int

	// RenderWidth and RenderHeight are the internal resolution after the upscaler's render scale.
	RenderWidth, RenderHeight int

	// Settings are the effective frame settings the last frame was drawn with.
	Settings camera.FrameSettings

	Upscaling bool
	Quality   camera.UpscalingQuality

	// Clear is the clear color of the last frame.
	Clear colorful.Color
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	logger      log.Logger

	cam      camera.Camera
	effects  EffectSource
	defaults camera.FrameSettings

	width, height int
	stats         FrameStats
	// pending is set while a begun frame has not been presented.
	pending bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer defines the interface for the rendering system.
//
// Each frame the Renderer resolves the camera's effective frame settings and upscaler
// state, then drives the backend through BeginFrame, EndFrame and Present.
type Renderer interface {
	// BackendType returns the backend the renderer was created with.
	BackendType() RendererBackendType

	// SetCamera sets the camera whose render configuration drives each frame.
	//
	// Parameters:
	//   - cam: the camera, or nil to render with the default frame settings
	SetCamera(cam camera.Camera)

	// Camera returns the current camera.
	Camera() camera.Camera

	// SetEffectSource sets the lights and volume profile whose ray-traced state
	// tints the frame clear color.
	//
	// Parameters:
	//   - src: the effect source, typically the rendered scene (may be nil)
	SetEffectSource(src EffectSource)

	// EffectSource returns the current effect source.
	EffectSource() EffectSource

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode.
	SetPresentMode(mode PresentMode)

	// BeginFrame resolves the camera configuration and begins the frame's pass.
	// Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the frame target could not be acquired
	BeginFrame() error

	// EndFrame ends the current pass and submits it.
	// Does not present the surface, call Present() after EndFrame to display the frame.
	EndFrame()

	// Present presents the frame and updates FrameStats.
	Present()

	// FrameStats returns a snapshot of the last frame.
	FrameStats() FrameStats

	// Release frees backend resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend type.
// The WGPU backend needs a surface, typically a window.Window; the headless backend ignores it
// and takes its size from WithSize.
//
// Parameters:
//   - backendType: the type of rendering backend to use
//   - surface: the presentable surface (may be nil for BackendTypeHeadless)
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the new renderer
//   - error: an error if the backend could not be created
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		logger:      log.New("renderer"),
		defaults:    camera.DefaultFrameSettings(),
		width:       1280,
		height:      720,
	}

	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeHeadless:
		r.backend = newHeadlessRendererBackend()
	case BackendTypeWGPU:
		if surface == nil {
			return nil, fmt.Errorf("renderer: %s backend requires a surface", backendType)
		}
		b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
		if err != nil {
			return nil, fmt.Errorf("renderer: %w", err)
		}
		r.backend = b
		r.width, r.height = surface.Width(), surface.Height()
	default:
		return nil, fmt.Errorf("renderer: unknown backend type %d", backendType)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(r.width, r.height)
	r.logger.Infof("%s backend ready at %dx%d", backendType, r.width, r.height)
	return r, nil
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) SetCamera(cam camera.Camera) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cam = cam
	if cam != nil && r.height > 0 {
		cam.SetAspect(common.AspectRatio(r.width, r.height))
	}
}

func (r *renderer) Camera() camera.Camera {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cam
}

func (r *renderer) SetEffectSource(src EffectSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects = src
}

func (r *renderer) EffectSource() EffectSource {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.effects
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized windows report a zero framebuffer.
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	if r.cam != nil {
		r.cam.SetAspect(common.AspectRatio(width, height))
	}
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) BeginFrame() error {
	r.mu.Lock()
	src := r.effects
	r.mu.Unlock()
	// Lights and effects carry their own locks; read them outside r.mu.
	traced := TracedEffects(src)

	r.mu.Lock()
	settings := r.defaults
	upscaling, quality, scale := false, camera.UpscalingMaxPerformance, float32(1)
	if r.cam != nil {
		settings = r.cam.EffectiveFrameSettings(r.defaults)
		upscaling = r.cam.UpscalingEnabled()
		quality = r.cam.UpscalingQuality()
		scale = r.cam.RenderScale()
	}
	clear := ClearColor(settings, traced)

	r.stats.Width, r.stats.Height = r.width, r.height
	r.stats.RenderWidth = int(float32(r.width) * scale)
	r.stats.RenderHeight = int(float32(r.height) * scale)
	r.stats.Settings = settings
	r.stats.Upscaling = upscaling
	r.stats.Quality = quality
	r.stats.Clear = clear
	r.mu.Unlock()

	if err := r.backend.BeginFrame(clear); err != nil {
		return err
	}
	r.mu.Lock()
	r.pending = true
	r.mu.Unlock()
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending {
		r.pending = false
		r.stats.Frames++
	}
}

func (r *renderer) FrameStats() FrameStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *renderer) Release() {
	r.backend.Release()
}
