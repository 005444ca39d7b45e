package volume

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// profileFile is the on-disk TOML layout of a Profile.
type profileFile struct {
	Name               string            `toml:"name"`
	Reflection         *tracedEffectFile `toml:"reflection,omitempty"`
	GlobalIllumination *tracedEffectFile `toml:"global_illumination,omitempty"`
	AmbientOcclusion   *aoFile           `toml:"ambient_occlusion,omitempty"`
}

type tracedEffectFile struct {
	Active  bool   `toml:"active"`
	Tracing string `toml:"tracing"`
}

type aoFile struct {
	Active     bool `toml:"active"`
	RayTracing bool `toml:"ray_tracing"`
}

// Decode reads a Profile from TOML.
//
// Parameters:
//   - r: the TOML source
//
// Returns:
//   - Profile: the decoded profile
//   - error: error if the document is malformed or names an unknown tracing mode
func Decode(r io.Reader) (Profile, error) {
	var f profileFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("volume: decode profile: %w", err)
	}

	p := NewProfile(f.Name)
	if f.Reflection != nil {
		mode, err := ParseTracingMode(f.Reflection.Tracing)
		if err != nil {
			return nil, fmt.Errorf("volume: reflection: %w", err)
		}
		refl := NewReflection(mode)
		refl.SetActive(f.Reflection.Active)
		_ = p.Add(refl)
	}
	if f.GlobalIllumination != nil {
		mode, err := ParseTracingMode(f.GlobalIllumination.Tracing)
		if err != nil {
			return nil, fmt.Errorf("volume: global illumination: %w", err)
		}
		gi := NewGlobalIllumination(mode)
		gi.SetActive(f.GlobalIllumination.Active)
		_ = p.Add(gi)
	}
	if f.AmbientOcclusion != nil {
		ao := NewAmbientOcclusion(f.AmbientOcclusion.RayTracing)
		ao.SetActive(f.AmbientOcclusion.Active)
		_ = p.Add(ao)
	}
	return p, nil
}

// Encode writes a Profile as TOML.
//
// Parameters:
//   - w: the destination
//   - p: the profile to write
//
// Returns:
//   - error: error if writing fails
func Encode(w io.Writer, p Profile) error {
	f := profileFile{Name: p.Name()}
	if r, ok := TryGet[*Reflection](p); ok {
		f.Reflection = &tracedEffectFile{Active: r.Active(), Tracing: r.Tracing().String()}
	}
	if gi, ok := TryGet[*GlobalIllumination](p); ok {
		f.GlobalIllumination = &tracedEffectFile{Active: gi.Active(), Tracing: gi.Tracing().String()}
	}
	if ao, ok := TryGet[*AmbientOcclusion](p); ok {
		f.AmbientOcclusion = &aoFile{Active: ao.Active(), RayTracing: ao.RayTracing()}
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("volume: encode profile: %w", err)
	}
	return nil
}

// LoadProfile reads a Profile asset from disk.
//
// Parameters:
//   - path: the TOML file path
//
// Returns:
//   - Profile: the loaded profile
//   - error: error if the file cannot be opened or decoded
func LoadProfile(path string) (Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("volume: open profile: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// SaveProfile writes a Profile asset to disk, replacing any existing file.
//
// Parameters:
//   - path: the TOML file path
//   - p: the profile to persist
//
// Returns:
//   - error: error if the file cannot be written
func SaveProfile(path string, p Profile) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("volume: create profile: %w", err)
	}
	if err := Encode(file, p); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
