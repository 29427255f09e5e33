package monitor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeQuerier struct {
	outs  []output
	err   error
	panic bool
	calls int
}

func (f *fakeQuerier) outputs() ([]output, error) {
	f.calls++
	if f.panic {
		panic("protocol error")
	}
	return f.outs, f.err
}

func TestCountPreferredOutputs(t *testing.T) {
	q := &fakeQuerier{outs: []output{
		{name: "eDP-1", numPreferred: 1},
		{name: "HDMI-1", numPreferred: 0},
		{name: "DP-1", numPreferred: 2},
		{name: "DP-2"},
	}}
	assert.Equal(t, 2, Count(q, zerolog.Nop()))
}

func TestCountFailureIsOneMonitor(t *testing.T) {
	var buf bytes.Buffer
	q := &fakeQuerier{err: errors.New("cannot open display")}
	assert.Equal(t, 1, Count(q, zerolog.New(&buf)))
	assert.Equal(t, 1, q.calls, "no retries")
	assert.Contains(t, buf.String(), "cannot open display")
}

func TestCountPanicIsOneMonitor(t *testing.T) {
	q := &fakeQuerier{panic: true}
	assert.NotPanics(t, func() {
		assert.Equal(t, 1, Count(q, zerolog.Nop()))
	})
}

func TestCountNoPreferredIsOneMonitor(t *testing.T) {
	q := &fakeQuerier{outs: []output{{name: "VGA-1"}}}
	assert.Equal(t, 1, Count(q, zerolog.Nop()))
	assert.Equal(t, 1, Count(&fakeQuerier{}, zerolog.Nop()))
}

func TestDetectWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	assert.Equal(t, 1, Detect(":nonexistent", zerolog.Nop()))
}
