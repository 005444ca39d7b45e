package volume

import (
	"fmt"
	"strings"
	"sync"
)

// EffectKind identifies a post-process effect override type.
type EffectKind int

const (
	// EffectReflection is the screen-space / ray-traced reflection override.
	EffectReflection EffectKind = iota

	// EffectGlobalIllumination is the screen-space / ray-traced global illumination override.
	EffectGlobalIllumination

	// EffectAmbientOcclusion is the screen-space / ray-traced ambient occlusion override.
	EffectAmbientOcclusion
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectReflection:
		return "Reflection"
	case EffectGlobalIllumination:
		return "GlobalIllumination"
	case EffectAmbientOcclusion:
		return "AmbientOcclusion"
	}
	return "Unknown"
}

// TracingMode selects how a reflection or global illumination effect is computed.
type TracingMode int

const (
	// TracingModeRayMarching computes the effect by marching the depth buffer.
	// This is the fallback used when ray tracing is unavailable or disabled.
	TracingModeRayMarching TracingMode = iota

	// TracingModeRayTracing computes the effect with hardware ray tracing.
	TracingModeRayTracing
)

// String returns the mode name used in profile files.
func (m TracingMode) String() string {
	if m == TracingModeRayTracing {
		return "ray_tracing"
	}
	return "ray_marching"
}

// ParseTracingMode parses a profile file mode name.
func ParseTracingMode(s string) (TracingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ray_tracing", "raytracing":
		return TracingModeRayTracing, nil
	case "", "ray_marching", "raymarching":
		return TracingModeRayMarching, nil
	}
	return TracingModeRayMarching, fmt.Errorf("unknown tracing mode %q", s)
}

// Effect is a post-process effect override stored in a Profile.
type Effect interface {
	// Kind returns the override type.
	Kind() EffectKind

	// Active reports whether the override participates in rendering.
	Active() bool

	// SetActive enables or disables the override without removing it from the profile.
	SetActive(active bool)
}

// tracedEffect holds the state shared by effects that switch between ray marching and ray tracing.
type tracedEffect struct {
	mu      sync.RWMutex
	active  bool
	tracing TracingMode
}

func (e *tracedEffect) Active() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

func (e *tracedEffect) SetActive(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = active
}

// Tracing returns the current tracing mode.
func (e *tracedEffect) Tracing() TracingMode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tracing
}

// SetTracingMode selects ray marching or ray tracing for the effect.
func (e *tracedEffect) SetTracingMode(mode TracingMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tracing = mode
}

// Reflection is the reflection effect override.
type Reflection struct {
	tracedEffect
}

// NewReflection creates an active Reflection override using the given tracing mode.
func NewReflection(mode TracingMode) *Reflection {
	return &Reflection{tracedEffect{active: true, tracing: mode}}
}

// Kind implements Effect.
func (*Reflection) Kind() EffectKind { return EffectReflection }

// GlobalIllumination is the global illumination effect override.
type GlobalIllumination struct {
	tracedEffect
}

// NewGlobalIllumination creates an active GlobalIllumination override using the given tracing mode.
func NewGlobalIllumination(mode TracingMode) *GlobalIllumination {
	return &GlobalIllumination{tracedEffect{active: true, tracing: mode}}
}

// Kind implements Effect.
func (*GlobalIllumination) Kind() EffectKind { return EffectGlobalIllumination }

// AmbientOcclusion is the ambient occlusion effect override.
// Unlike reflections and global illumination it has no ray marching mode switch,
// only a ray tracing on/off flag.
type AmbientOcclusion struct {
	mu         sync.RWMutex
	active     bool
	rayTracing bool
}

// NewAmbientOcclusion creates an active AmbientOcclusion override.
func NewAmbientOcclusion(rayTracing bool) *AmbientOcclusion {
	return &AmbientOcclusion{active: true, rayTracing: rayTracing}
}

// Kind implements Effect.
func (*AmbientOcclusion) Kind() EffectKind { return EffectAmbientOcclusion }

func (a *AmbientOcclusion) Active() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.active
}

func (a *AmbientOcclusion) SetActive(active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = active
}

// RayTracing reports whether ambient occlusion is ray traced.
func (a *AmbientOcclusion) RayTracing() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.rayTracing
}

// SetRayTracingEnabled switches ray-traced ambient occlusion on or off.
func (a *AmbientOcclusion) SetRayTracingEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rayTracing = enabled
}
