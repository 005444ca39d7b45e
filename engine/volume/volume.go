package volume

import (
	"fmt"
	"sync"
)

// profileImpl is the implementation of the Profile interface.
type profileImpl struct {
	mu         *sync.RWMutex
	name       string
	components []Effect
}

// Profile is a post-process volume profile: a named set of effect overrides,
// at most one per EffectKind. Writes made to the overrides are the settings the
// renderer uses and are what SaveProfile persists.
// All methods are safe for concurrent use.
type Profile interface {
	// Name returns the profile's identifier.
	Name() string

	// Add registers an effect override.
	//
	// Parameters:
	//   - effect: the override to add
	//
	// Returns:
	//   - error: error if an override of the same kind is already present
	Add(effect Effect) error

	// Remove deletes the override of the given kind.
	//
	// Parameters:
	//   - kind: the override type to remove
	//
	// Returns:
	//   - bool: true if an override was removed
	Remove(kind EffectKind) bool

	// Has reports whether an override of the given kind is present.
	Has(kind EffectKind) bool

	// Components returns a copy of the override list in insertion order.
	//
	// Returns:
	//   - []Effect: the overrides
	Components() []Effect
}

var _ Profile = &profileImpl{}

// NewProfile creates a Profile holding the given overrides.
// Overrides whose kind is already present are dropped.
//
// Parameters:
//   - name: the profile name
//   - effects: the initial overrides
//
// Returns:
//   - Profile: the new profile
func NewProfile(name string, effects ...Effect) Profile {
	p := &profileImpl{
		mu:   &sync.RWMutex{},
		name: name,
	}
	for _, e := range effects {
		_ = p.Add(e)
	}
	return p
}

func (p *profileImpl) Name() string {
	return p.name
}

func (p *profileImpl) Add(effect Effect) error {
	if effect == nil {
		return fmt.Errorf("volume: nil effect")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.components {
		if c.Kind() == effect.Kind() {
			return fmt.Errorf("volume: profile %q already has a %s override", p.name, effect.Kind())
		}
	}
	p.components = append(p.components, effect)
	return nil
}

func (p *profileImpl) Remove(kind EffectKind) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, c := range p.components {
		if c.Kind() == kind {
			p.components = append(p.components[:i], p.components[i+1:]...)
			return true
		}
	}
	return false
}

func (p *profileImpl) Has(kind EffectKind) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, c := range p.components {
		if c.Kind() == kind {
			return true
		}
	}
	return false
}

func (p *profileImpl) Components() []Effect {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Effect, len(p.components))
	copy(out, p.components)
	return out
}

// TryGet looks up the override of concrete type T in the profile.
//
// Parameters:
//   - p: the profile to search
//
// Returns:
//   - T: the override, or the zero value if absent
//   - bool: true if the override is present
func TryGet[T Effect](p Profile) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	for _, c := range p.Components() {
		if e, ok := c.(T); ok {
			return e, true
		}
	}
	return zero, false
}
