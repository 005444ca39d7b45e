package profiler

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/stretchr/testify/assert"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	log.SetLevel(log.Info)
	t.Cleanup(func() {
		log.SetSink(os.Stdout)
		log.SetLevel(log.Notice)
	})

	p := NewProfiler(WithInterval(time.Hour), WithDetail(func() string { return "rt=on" }))
	assert.False(t, p.Tick())
	assert.Empty(t, buf.String())

	p.lastTime = time.Now().Add(-2 * time.Hour)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "FPS:")
	assert.Contains(t, buf.String(), "rt=on")
	assert.Equal(t, 0, p.frameCount)
}
