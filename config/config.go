// Package config loads the application's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/hud"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config is the root of the configuration file.
type Config struct {
	LogLevel   string            `toml:"log_level"`
	Engine     EngineConfig      `toml:"engine"`
	Window     WindowConfig      `toml:"window"`
	Renderer   RendererConfig    `toml:"renderer"`
	Scene      SceneConfig       `toml:"scene"`
	Volume     VolumeConfig      `toml:"volume"`
	Upscaling  UpscalingConfig   `toml:"upscaling"`
	Indicators IndicatorConfig   `toml:"indicators"`
	Keys       map[string]string `toml:"keys"`
}

// EngineConfig configures the tick and render loops.
type EngineConfig struct {
	TickRate   float64 `toml:"tick_rate"`
	FrameLimit float64 `toml:"frame_limit"`
	Profiling  bool    `toml:"profiling"`
}

// WindowConfig configures the GLFW window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RendererConfig configures the renderer backend.
type RendererConfig struct {
	PresentMode string `toml:"present_mode"`
	MSAA        uint32 `toml:"msaa"`
	Software    bool   `toml:"software"`
}

// SceneConfig describes the scene and its lights.
type SceneConfig struct {
	Name              string        `toml:"name"`
	ShadowWorkers     int           `toml:"shadow_workers"`
	ParallelThreshold int           `toml:"parallel_threshold"`
	Lights            []LightConfig `toml:"lights"`
}

// LightConfig describes one scene light.
type LightConfig struct {
	Name         string     `toml:"name"`
	Type         string     `toml:"type"`
	Position     [3]float32 `toml:"position"`
	Color        [3]float32 `toml:"color"`
	Intensity    float32    `toml:"intensity"`
	CastsShadows *bool      `toml:"casts_shadows"`
}

// VolumeConfig locates the volume profile. When the profile file does not exist
// a profile holding the listed overrides is created and saved there on exit.
type VolumeConfig struct {
	Profile            string `toml:"profile"`
	Reflection         bool   `toml:"reflection"`
	GlobalIllumination bool   `toml:"global_illumination"`
	AmbientOcclusion   bool   `toml:"ambient_occlusion"`
}

// UpscalingConfig sets the upscaling indicator text.
type UpscalingConfig struct {
	Prefix         string `toml:"prefix"`
	MaxPerformance string `toml:"max_performance"`
	Balanced       string `toml:"balanced"`
	MaxQuality     string `toml:"max_quality"`
}

// IndicatorConfig sets the feature indicator text and colors.
type IndicatorConfig struct {
	OnText   string `toml:"on_text"`
	OffText  string `toml:"off_text"`
	OnColor  string `toml:"on_color"`
	OffColor string `toml:"off_color"`
}

// Default returns the built in configuration.
func Default() *Config {
	shadows := true
	return &Config{
		LogLevel: "notice",
		Engine: EngineConfig{
			TickRate:   60,
			FrameLimit: 120,
		},
		Window: WindowConfig{
			Title:  "oxy-rt",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			MSAA:        uint32(renderer.MSAA4x),
		},
		Scene: SceneConfig{
			Name: "main",
			Lights: []LightConfig{
				{Name: "sun", Type: "directional", Position: [3]float32{0, 10, 0}, Color: [3]float32{1, 0.95, 0.9}, Intensity: 1, CastsShadows: &shadows},
				{Name: "lamp", Type: "point", Position: [3]float32{2, 1, 2}, Color: [3]float32{1, 0.8, 0.6}, Intensity: 5, CastsShadows: &shadows},
			},
		},
		Volume: VolumeConfig{
			Profile:            "volume_profile.toml",
			Reflection:         true,
			GlobalIllumination: true,
			AmbientOcclusion:   true,
		},
		Upscaling: UpscalingConfig{
			Prefix:         "Upscaling Mode: ",
			MaxPerformance: "Max Performance",
			Balanced:       "Balanced",
			MaxQuality:     "Max Quality",
		},
		Indicators: IndicatorConfig{
			OnText:   "On",
			OffText:  "Off",
			OnColor:  "#00ff00",
			OffColor: "#ff0000",
		},
		Keys: map[string]string{},
	}
}

// Decode reads a configuration from r on top of Default, so a file only needs the values it changes.
// Unknown keys are rejected.
//
// Parameters:
//   - r: the TOML source
//
// Returns:
//   - *Config: the configuration
//   - error: a decode or validation error
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	// A [[scene.lights]] list in the file replaces the default lights rather than extending them.
	defaultLights := c.Scene.Lights
	c.Scene.Lights = nil
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("config: %s", strict.String())
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.Scene.Lights == nil {
		c.Scene.Lights = defaultLights
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the configuration file at path. An empty path yields Default.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the configuration
//   - error: an open, decode or validation error
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks every value that is parsed later, so errors surface at load time.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.PresentMode(); err != nil {
		errs = append(errs, err)
	}
	switch renderer.MSAASampleCount(c.Renderer.MSAA) {
	case renderer.MSAAOff, renderer.MSAA4x, renderer.MSAA8x:
	default:
		errs = append(errs, fmt.Errorf("unsupported msaa sample count %d", c.Renderer.MSAA))
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.IndicatorColors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Lights(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// PresentMode returns the configured present mode.
func (c *Config) PresentMode() (renderer.PresentMode, error) {
	switch strings.ToLower(c.Renderer.PresentMode) {
	case "", "vsync":
		return renderer.PresentModeVSync, nil
	case "uncapped", "immediate":
		return renderer.PresentModeUncapped, nil
	}
	return renderer.PresentModeVSync, fmt.Errorf("unknown present mode %q", c.Renderer.PresentMode)
}

// Bindings resolves the [keys] table on top of the default bindings.
func (c *Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Keys)
}

// IndicatorColors parses the on and off indicator colors.
func (c *Config) IndicatorColors() (on, off colorful.Color, err error) {
	if on, err = hud.ParseColor(c.Indicators.OnColor); err != nil {
		return
	}
	off, err = hud.ParseColor(c.Indicators.OffColor)
	return
}

// UpscalingLabels returns the configured label of each quality preset. Empty labels are left out.
func (c *Config) UpscalingLabels() map[camera.UpscalingQuality]string {
	labels := make(map[camera.UpscalingQuality]string, 3)
	for q, label := range map[camera.UpscalingQuality]string{
		camera.UpscalingMaxPerformance: c.Upscaling.MaxPerformance,
		camera.UpscalingBalanced:       c.Upscaling.Balanced,
		camera.UpscalingMaxQuality:     c.Upscaling.MaxQuality,
	} {
		if label != "" {
			labels[q] = label
		}
	}
	return labels
}

// Lights builds the configured scene lights.
func (c *Config) Lights() ([]light.Light, error) {
	out := make([]light.Light, 0, len(c.Scene.Lights))
	for i, lc := range c.Scene.Lights {
		lt, err := light.ParseLightType(lc.Type)
		if err != nil {
			return nil, fmt.Errorf("scene light %d: %w", i, err)
		}
		opts := []light.LightBuilderOption{
			light.WithPosition(lc.Position[0], lc.Position[1], lc.Position[2]),
		}
		if lc.Name != "" {
			opts = append(opts, light.WithName(lc.Name))
		}
		if lc.Color != [3]float32{} {
			opts = append(opts, light.WithColor(lc.Color[0], lc.Color[1], lc.Color[2]))
		}
		if lc.Intensity > 0 {
			opts = append(opts, light.WithIntensity(lc.Intensity))
		}
		if lc.CastsShadows != nil {
			opts = append(opts, light.WithCastsShadows(*lc.CastsShadows))
		}
		out = append(out, light.NewLight(lt, opts...))
	}
	return out, nil
}

// DefaultProfile builds the volume profile used when the profile file does not exist yet.
func (c *Config) DefaultProfile() volume.Profile {
	var effects []volume.Effect
	if c.Volume.Reflection {
		effects = append(effects, volume.NewReflection(volume.TracingModeRayMarching))
	}
	if c.Volume.GlobalIllumination {
		effects = append(effects, volume.NewGlobalIllumination(volume.TracingModeRayMarching))
	}
	if c.Volume.AmbientOcclusion {
		effects = append(effects, volume.NewAmbientOcclusion(false))
	}
	return volume.NewProfile(c.Scene.Name, effects...)
}
