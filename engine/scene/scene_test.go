package scene

import (
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/light"
	"github.com/Carmen-Shannon/oxy-rt/engine/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneRequiresCamera(t *testing.T) {
	assert.Panics(t, func() { NewScene("bad", nil, nil) })
}

func TestLightRegistry(t *testing.T) {
	sun := light.NewLight(light.LightTypeDirectional, light.WithName("sun"))
	lamp := light.NewLight(light.LightTypePoint, light.WithName("lamp"))
	s := NewScene("test", camera.NewCamera(), nil, WithLights(sun), WithActive(true))

	assert.True(t, s.Active())
	id := s.AddLight(lamp)
	assert.Equal(t, uint64(2), id)
	assert.Equal(t, uint64(0), s.AddLight(nil))
	assert.Equal(t, 2, s.LightCount())
	assert.Equal(t, lamp, s.Light(id))

	lights := s.EnumerateLights()
	require.Len(t, lights, 2)
	assert.Equal(t, "sun", lights[0].Name())
	assert.Equal(t, "lamp", lights[1].Name())

	assert.True(t, s.RemoveLight(id))
	assert.False(t, s.RemoveLight(id))
	assert.Nil(t, s.Light(id))
}

func TestEnumerateLightsIsSnapshot(t *testing.T) {
	s := NewScene("test", camera.NewCamera(), nil)
	s.AddLight(light.NewLight(light.LightTypePoint))
	snapshot := s.EnumerateLights()

	s.AddLight(light.NewLight(light.LightTypeSpot))
	assert.Len(t, snapshot, 1)
	assert.Len(t, s.EnumerateLights(), 2)
}

func TestSetRayTracedShadowsInline(t *testing.T) {
	s := NewScene("test", camera.NewCamera(), nil)
	for i := 0; i < 3; i++ {
		s.AddLight(light.NewLight(light.LightTypePoint))
	}
	lights := s.EnumerateLights()
	s.SetRayTracedShadows(lights, true)
	for _, l := range lights {
		assert.True(t, l.RayTracedShadows())
	}
}

func TestSetRayTracedShadowsWorkerPool(t *testing.T) {
	s := NewScene("test", camera.NewCamera(), nil, WithShadowWorkers(4), WithParallelThreshold(8))
	for i := 0; i < 250; i++ {
		s.AddLight(light.NewLight(light.LightTypePoint, light.WithName(fmt.Sprintf("l%d", i))))
	}
	lights := s.EnumerateLights()

	s.SetRayTracedShadows(lights, true)
	for _, l := range lights {
		require.True(t, l.RayTracedShadows(), l.Name())
	}

	s.SetRayTracedShadows(lights, false)
	for _, l := range lights {
		require.False(t, l.RayTracedShadows(), l.Name())
	}
}

func TestSceneVolume(t *testing.T) {
	p := volume.NewProfile("v", volume.NewAmbientOcclusion(false))
	s := NewScene("test", camera.NewCamera(), p)
	assert.Equal(t, p, s.Volume())
	assert.NotNil(t, s.Camera())
}
