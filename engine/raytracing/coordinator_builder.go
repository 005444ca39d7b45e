package raytracing

import (
	"maps"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultOnText          = "On"
	DefaultOffText         = "Off"
	DefaultUpscalingPrefix = "Upscaling Mode: "
)

// DefaultUpscalingLabels returns the display label of each upscaling quality preset.
func DefaultUpscalingLabels() map[camera.UpscalingQuality]string {
	return map[camera.UpscalingQuality]string{
		camera.UpscalingMaxPerformance: "Max Performance",
		camera.UpscalingBalanced:       "Balanced",
		camera.UpscalingMaxQuality:     "Max Quality",
	}
}

// CoordinatorBuilderOption is a functional option for configuring a Coordinator.
type CoordinatorBuilderOption func(*coordinatorImpl)

// WithIndicatorText sets the indicator text for enabled and disabled features.
//
// Parameters:
//   - on: text shown while a feature is enabled
//   - off: text shown while a feature is disabled
//
// Returns:
//   - CoordinatorBuilderOption: option function to apply
func WithIndicatorText(on, off string) CoordinatorBuilderOption {
	return func(c *coordinatorImpl) {
		c.onText = on
		c.offText = off
	}
}

// WithIndicatorColors sets the indicator colors for enabled and disabled features.
//
// Parameters:
//   - on: color used while a feature is enabled
//   - off: color used while a feature is disabled
//
// Returns:
//   - CoordinatorBuilderOption: option function to apply
func WithIndicatorColors(on, off colorful.Color) CoordinatorBuilderOption {
	return func(c *coordinatorImpl) {
		c.onColor = on
		c.offColor = off
	}
}

// WithUpscalingPrefix sets the text placed before the quality label on the upscaling indicator.
func WithUpscalingPrefix(prefix string) CoordinatorBuilderOption {
	return func(c *coordinatorImpl) {
		c.upscalingPrefix = prefix
	}
}

// WithUpscalingLabels overrides quality preset labels. Presets not in labels keep their default.
func WithUpscalingLabels(labels map[camera.UpscalingQuality]string) CoordinatorBuilderOption {
	return func(c *coordinatorImpl) {
		maps.Copy(c.upscalingLabels, labels)
	}
}

// WithLogger replaces the coordinator's logger.
func WithLogger(logger log.Logger) CoordinatorBuilderOption {
	return func(c *coordinatorImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
