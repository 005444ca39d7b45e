package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypePoint)
	assert.Equal(t, "point", l.Name())
	assert.True(t, l.Enabled())
	assert.True(t, l.CastsShadows())
	assert.False(t, l.RayTracedShadows())
	assert.Equal(t, float32(1), l.Intensity())
}

func TestLightOptions(t *testing.T) {
	l := NewLight(LightTypeSpot,
		WithName("lamp"),
		WithPosition(1, 2, 3),
		WithColor(0.5, 0.25, 1),
		WithIntensity(2),
		WithEnabled(false),
		WithCastsShadows(false),
		WithRayTracedShadows(true),
	)
	assert.Equal(t, "lamp", l.Name())
	assert.Equal(t, LightTypeSpot, l.Type())
	assert.Equal(t, [3]float32{1, 2, 3}, l.Position())
	assert.Equal(t, [3]float32{0.5, 0.25, 1}, l.Color())
	assert.Equal(t, float32(2), l.Intensity())
	assert.False(t, l.Enabled())
	assert.False(t, l.CastsShadows())
	assert.True(t, l.RayTracedShadows())
}

func TestSetRayTracedShadows(t *testing.T) {
	l := NewLight(LightTypeDirectional)
	l.SetRayTracedShadows(true)
	assert.True(t, l.RayTracedShadows())
	l.SetRayTracedShadows(false)
	assert.False(t, l.RayTracedShadows())
}

func TestParseLightType(t *testing.T) {
	for name, want := range map[string]LightType{
		"directional": LightTypeDirectional,
		"Sun":         LightTypeDirectional,
		"point":       LightTypePoint,
		"SPOT":        LightTypeSpot,
	} {
		got, err := ParseLightType(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLightType("area")
	assert.Error(t, err)
}
