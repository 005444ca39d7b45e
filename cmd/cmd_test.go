package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rt/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/raytracing"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderControls(t *testing.T) {
	var buf bytes.Buffer
	renderControls(&buf, input.DefaultBindings())

	out := buf.String()
	assert.Contains(t, out, "toggle_upscaling")
	assert.Contains(t, out, "cycle_upscaling_quality")
	assert.Contains(t, out, "| T ")
}

func TestSessionPersistsVolumeProfile(t *testing.T) {
	cfg := config.Default()
	cfg.Volume.Profile = filepath.Join(t.TempDir(), "profile.toml")

	s, err := newSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, s.coordinator.LightCount())
	assert.Contains(t, s.status(), "Global RT: On")

	s.keyboard.Click(input.ActionToggleReflections)
	assert.False(t, s.tick())
	assert.False(t, s.coordinator.Enabled(raytracing.FeatureReflections))
	require.NoError(t, s.close())

	loaded, err := volume.LoadProfile(cfg.Volume.Profile)
	require.NoError(t, err)
	refl, ok := volume.TryGet[*volume.Reflection](loaded)
	require.True(t, ok)
	assert.Equal(t, volume.TracingModeRayMarching, refl.Tracing())
	ao, ok := volume.TryGet[*volume.AmbientOcclusion](loaded)
	require.True(t, ok)
	assert.True(t, ao.RayTracing())

	s2, err := newSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, s2.coordinator.LightCount())

	s2.keyboard.Click(input.ActionQuit)
	assert.True(t, s2.tick())
}

type recordedTitles []string

func (r *recordedTitles) SetTitle(title string) {
	*r = append(*r, title)
}

func TestTitleUpdaterThrottlesStatus(t *testing.T) {
	var titles recordedTitles
	u := newTitleUpdater(&titles, "oxy-rt", 100*time.Millisecond)

	calls := 0
	status := "Global RT: On"
	read := func() string {
		calls++
		return status
	}

	start := time.Unix(0, 0)
	for i := 0; i < 1000; i++ {
		u.update(start.Add(time.Duration(i)*time.Microsecond), read)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, recordedTitles{"oxy-rt | Global RT: On"}, titles)

	// Unchanged status after the interval does not touch the window.
	u.update(start.Add(150*time.Millisecond), read)
	assert.Equal(t, 2, calls)
	assert.Len(t, titles, 1)

	status = "Global RT: Off"
	u.update(start.Add(200*time.Millisecond), read)
	assert.Len(t, titles, 1)
	u.update(start.Add(300*time.Millisecond), read)
	assert.Equal(t, recordedTitles{"oxy-rt | Global RT: On", "oxy-rt | Global RT: Off"}, titles)
}
