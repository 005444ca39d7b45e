package light

import (
	"fmt"
	"strings"
	"sync"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	LightTypePoint

	// LightTypeSpot represents a light that emits in a cone from a position along a direction.
	LightTypeSpot
)

// String returns the lower-case type name used in config files.
func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	case LightTypeSpot:
		return "spot"
	}
	return "unknown"
}

// ParseLightType parses a config light type name.
//
// Parameters:
//   - name: "directional", "point" or "spot" (case-insensitive)
//
// Returns:
//   - LightType: the parsed type
//   - error: error if the name is not a known type
func ParseLightType(name string) (LightType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "directional", "sun":
		return LightTypeDirectional, nil
	case "point":
		return LightTypePoint, nil
	case "spot":
		return LightTypeSpot, nil
	}
	return LightTypePoint, fmt.Errorf("unknown light type %q", name)
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.RWMutex

	name             string
	lightType        LightType
	position         [3]float32
	color            [3]float32
	intensity        float32
	enabled          bool
	castsShadows     bool
	rayTracedShadows bool
}

// Light defines the interface for a light source in the scene.
//
// Besides its basic emission properties a light carries the shadow technique
// the renderer should use for it: rasterized shadow maps or ray-traced shadows.
// Ray-traced shadows only take effect while ray tracing is enabled in the
// camera's frame settings. All methods are safe for concurrent use.
type Light interface {
	// Name returns the light's identifier.
	Name() string

	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or spot)
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	Position() [3]float32

	// Color returns the RGB color of the light.
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	Enabled() bool

	// CastsShadows returns whether this light is eligible for shadow generation at all.
	CastsShadows() bool

	// RayTracedShadows returns whether the light's shadows are ray traced
	// instead of rendered from a shadow map.
	//
	// Returns:
	//   - bool: true if shadows are ray traced
	RayTracedShadows() bool

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetCastsShadows sets whether the light is eligible for shadow generation.
	//
	// Parameters:
	//   - castsShadows: true to enable shadow casting
	SetCastsShadows(castsShadows bool)

	// SetRayTracedShadows selects ray-traced (true) or shadow-mapped (false) shadows.
	//
	// Parameters:
	//   - rayTraced: true to ray trace this light's shadows
	SetRayTracedShadows(rayTraced bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, point, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:           &sync.RWMutex{},
		name:         lightType.String(),
		lightType:    lightType,
		color:        [3]float32{1, 1, 1},
		intensity:    1.0,
		enabled:      true,
		castsShadows: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Name() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled
}

func (l *lightImpl) CastsShadows() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.castsShadows
}

func (l *lightImpl) RayTracedShadows() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rayTracedShadows
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) SetCastsShadows(castsShadows bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.castsShadows = castsShadows
}

func (l *lightImpl) SetRayTracedShadows(rayTraced bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rayTracedShadows = rayTraced
}
