package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"INFO":    Info,
		"":        Notice,
		"notice":  Notice,
		"warn":    Warning,
		"warning": Warning,
		" error ": Error,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Notice)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Info("hidden message")
	logger.Notice("visible message")

	assert.NotContains(t, buf.String(), "hidden message")
	assert.Contains(t, buf.String(), "visible message")

	SetLevel(Debug)
	logger.Debugf("now %s", "shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestLevelNames(t *testing.T) {
	for l := Debug; l <= Error; l++ {
		parsed, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestSetSinkKeepsLevel(t *testing.T) {
	SetLevel(Warning)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	assert.Equal(t, Warning, CurrentLevel())
	New("sink").Notice("dropped")
	assert.Empty(t, buf.String())

	SetLevel(Level(42))
	assert.Equal(t, Error, CurrentLevel())
}
