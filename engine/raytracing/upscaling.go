package raytracing

import (
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
)

type upscalingState struct {
	enabled bool
	quality camera.UpscalingQuality
}

// processUpscaling consumes this tick's upscaling key edges, then applies the
// state to the backend and the mode label. Must be called with c.mu held.
func (c *coordinatorImpl) processUpscaling() {
	toggled := c.input.Pressed(input.ActionToggleUpscaling)
	// Read unconditionally so a cycle press while disabled is dropped, not queued.
	cycled := c.input.Pressed(input.ActionCycleUpscalingQuality)

	if toggled {
		c.upscaling.enabled = !c.upscaling.enabled
		c.logger.Infof("upscaling %s", c.text(c.upscaling.enabled))
	}
	c.backend.SetUpscalingEnabled(c.upscaling.enabled)

	if !c.upscaling.enabled {
		if c.upscalingIndicator != nil {
			c.upscalingIndicator.SetText("")
		}
		return
	}

	if cycled {
		c.upscaling.quality = c.upscaling.quality.Next()
		c.logger.Infof("upscaling mode %s", c.upscalingLabel())
	}
	c.backend.SetUpscalingQuality(c.upscaling.quality)
	if c.upscalingIndicator != nil {
		c.upscalingIndicator.SetText(c.upscalingPrefix + c.upscalingLabel())
	}
}

func (c *coordinatorImpl) upscalingLabel() string {
	return c.upscalingLabels[c.upscaling.quality]
}
