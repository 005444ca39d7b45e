package renderer

import (
	"errors"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// headlessRendererBackend follows the same frame protocol as the WGPU backend
// without a device. Frames are counted and the last clear color is kept.
type headlessRendererBackend struct {
	mu *sync.Mutex

	width, height int
	presentMode   PresentMode

	inFrame   bool
	submitted bool
	lastClear colorful.Color
	presented uint64
}

var _ RendererBackend = &headlessRendererBackend{}

func newHeadlessRendererBackend() *headlessRendererBackend {
	return &headlessRendererBackend{mu: &sync.Mutex{}, presentMode: PresentModeUncapped}
}

func (b *headlessRendererBackend) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
}

func (b *headlessRendererBackend) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.presentMode = mode
}

func (b *headlessRendererBackend) BeginFrame(clear colorful.Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inFrame || b.submitted {
		return errors.New("previous frame surface not yet presented")
	}
	b.inFrame = true
	b.lastClear = clear
	return nil
}

func (b *headlessRendererBackend) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inFrame {
		return
	}
	b.inFrame = false
	b.submitted = true
}

func (b *headlessRendererBackend) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.submitted {
		return
	}
	b.submitted = false
	b.presented++
}

func (b *headlessRendererBackend) Release() {}

func (b *headlessRendererBackend) clearColor() colorful.Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastClear
}
