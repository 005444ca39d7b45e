package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/hud"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/raytracing"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/urfave/cli"
)

// session is the scene and ray tracing controls shared by the front ends.
type session struct {
	cfg         *config.Config
	cam         camera.Camera
	scene       scene.Scene
	profile     volume.Profile
	profilePath string

	keyboard    *input.Keyboard
	labels      map[raytracing.Feature]*hud.Label
	upscaling   *hud.Label
	coordinator raytracing.Coordinator
}

// loadConfig reads the --config file and applies logging flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	setupLogging(ctx, cfg)
	return cfg, nil
}

func newSession(cfg *config.Config) (*session, error) {
	s := &session{
		cfg:         cfg,
		profilePath: cfg.Volume.Profile,
		labels:      make(map[raytracing.Feature]*hud.Label),
		upscaling:   hud.NewLabel("upscaling"),
	}

	profile, err := loadProfile(cfg)
	if err != nil {
		return nil, err
	}
	s.profile = profile

	lights, err := cfg.Lights()
	if err != nil {
		return nil, err
	}
	s.cam = camera.NewCamera(camera.WithName("main"), camera.WithAspect(common.AspectRatio(cfg.Window.Width, cfg.Window.Height)))

	sceneOpts := []scene.SceneBuilderOption{scene.WithActive(true), scene.WithLights(lights...)}
	if cfg.Scene.ShadowWorkers > 0 {
		sceneOpts = append(sceneOpts, scene.WithShadowWorkers(cfg.Scene.ShadowWorkers))
	}
	if cfg.Scene.ParallelThreshold > 0 {
		sceneOpts = append(sceneOpts, scene.WithParallelThreshold(cfg.Scene.ParallelThreshold))
	}
	s.scene = scene.NewScene(cfg.Scene.Name, s.cam, profile, sceneOpts...)

	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	s.keyboard = input.NewKeyboard(bindings)

	on, off, err := cfg.IndicatorColors()
	if err != nil {
		return nil, err
	}
	for _, f := range raytracing.Features() {
		s.labels[f] = hud.NewLabel(f.Title())
	}

	s.coordinator = raytracing.NewCoordinator(s.cam, s.scene, profile, s.keyboard, raytracing.Indicators{
		Global:             s.labels[raytracing.FeatureGlobal],
		Shadows:            s.labels[raytracing.FeatureShadows],
		Reflections:        s.labels[raytracing.FeatureReflections],
		GlobalIllumination: s.labels[raytracing.FeatureGlobalIllumination],
		AmbientOcclusion:   s.labels[raytracing.FeatureAmbientOcclusion],
		Upscaling:          s.upscaling,
	},
		raytracing.WithIndicatorText(
			common.Coalesce(cfg.Indicators.OnText, raytracing.DefaultOnText),
			common.Coalesce(cfg.Indicators.OffText, raytracing.DefaultOffText),
		),
		raytracing.WithIndicatorColors(on, off),
		raytracing.WithUpscalingPrefix(cfg.Upscaling.Prefix),
		raytracing.WithUpscalingLabels(cfg.UpscalingLabels()),
	)

	return s, nil
}

// loadProfile reads the volume profile asset, falling back to the configured
// default profile when the asset does not exist yet.
func loadProfile(cfg *config.Config) (volume.Profile, error) {
	if cfg.Volume.Profile == "" {
		return cfg.DefaultProfile(), nil
	}
	profile, err := volume.LoadProfile(cfg.Volume.Profile)
	if errors.Is(err, os.ErrNotExist) {
		logger.Noticef("volume profile %s not found, starting from defaults", cfg.Volume.Profile)
		return cfg.DefaultProfile(), nil
	}
	return profile, err
}

// tick advances the ray tracing controls and reports whether quit was pressed.
func (s *session) tick() bool {
	s.coordinator.Tick()
	return s.keyboard.Pressed(input.ActionQuit)
}

// status formats every indicator on one line.
func (s *session) status() string {
	parts := make([]string, 0, len(s.labels)+1)
	for _, f := range raytracing.Features() {
		parts = append(parts, s.labels[f].String())
	}
	if text := s.upscaling.Text(); text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, " | ")
}

// close persists the volume profile so effect settings survive restarts.
func (s *session) close() error {
	if s.profilePath == "" {
		return nil
	}
	if err := volume.SaveProfile(s.profilePath, s.profile); err != nil {
		return fmt.Errorf("save volume profile: %w", err)
	}
	logger.Infof("saved volume profile to %s", s.profilePath)
	return nil
}
