package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mousany/dawn-breaker/internal/draw"
	"github.com/mousany/dawn-breaker/internal/input"
	"github.com/mousany/dawn-breaker/internal/rng"
)

func TestRunStopsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), bufio.NewReader(strings.NewReader("")), &out, Options{
		TermSizeFunc: draw.FixedTermSize(80, 24),
		Rand:         rng.New(1),
		TickRate:     240,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "\033[?25h"), "cursor restored")
}

func TestRunShowsShutdownOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, bufio.NewReader(pr), &out, Options{
		TermSizeFunc: draw.FixedTermSize(80, 24),
		Rand:         rng.New(1),
	})

	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, "shutting down")
	assert.Greater(t, strings.LastIndex(got, "shutting down"), strings.LastIndex(got, "\033[H\033[2J"),
		"notice is not cleared away")
}

func TestRunNeedsRandom(t *testing.T) {
	err := Run(context.Background(), bufio.NewReader(strings.NewReader("")), io.Discard, Options{})
	assert.Error(t, err)
}

func TestIdleTracking(t *testing.T) {
	start := time.Now()
	h := &host{
		lastInput: start,
		opts:      Options{IdleWarn: time.Second, IdleDisconnect: 2 * time.Second},
	}

	assert.False(t, h.checkIdle(input.Input{}, start.Add(500*time.Millisecond)))
	assert.False(t, h.idle)

	assert.False(t, h.checkIdle(input.Input{}, start.Add(1500*time.Millisecond)))
	assert.True(t, h.idle)

	assert.False(t, h.checkIdle(input.Input{Pressed: []byte{'a'}}, start.Add(1600*time.Millisecond)))
	assert.False(t, h.idle)

	assert.True(t, h.checkIdle(input.Input{}, start.Add(4*time.Second)))
}

func TestIdleDisabledByDefault(t *testing.T) {
	start := time.Now()
	h := &host{lastInput: start}

	assert.False(t, h.checkIdle(input.Input{}, start.Add(time.Hour)))
	assert.False(t, h.idle)
}
