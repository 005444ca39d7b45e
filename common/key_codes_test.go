package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	cases := []struct {
		name string
		code uint32
		ok   bool
	}{
		{"T", KeyT, true},
		{"t", KeyT, true},
		{"1", Key1, true},
		{"f2", KeyF2, true},
		{"Escape", KeyEsc, true},
		{"?", 0, false},
		{"Hyper", 0, false},
	}
	for _, tc := range cases {
		code, ok := KeyCode(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.code, code, tc.name)
	}
}

func TestKeyNameRoundTrip(t *testing.T) {
	for _, code := range []uint32{KeyC, Key5, KeySpace, KeyF1, KeyEsc} {
		back, ok := KeyCode(KeyName(code))
		assert.True(t, ok)
		assert.Equal(t, code, back)
	}
	assert.Equal(t, "?", KeyName(9999))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}

func TestAspectRatio(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, AspectRatio(1920, 1080), 1e-6)
	assert.Equal(t, float32(1), AspectRatio(640, 0))
}
