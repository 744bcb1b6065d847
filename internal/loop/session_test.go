package loop

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mousany/dawn-breaker/internal/input"
	"github.com/mousany/dawn-breaker/internal/rng"
)

func press(keys ...input.Key) input.Input {
	var in input.Input
	for _, k := range keys {
		in.Set(k, true, true)
	}
	return in
}

func playingSession(t *testing.T, opts SessionOptions) *Session {
	t.Helper()
	s := NewSession(rng.New(7), opts)
	s.Step(press(input.KeyEnter))
	require.Equal(t, PhasePlaying, s.Phase())
	return s
}

func TestSessionStartsOnTitle(t *testing.T) {
	s := NewSession(rng.New(1), SessionOptions{})

	assert.Equal(t, PhaseStart, s.Phase())
	assert.True(t, s.Running())
	_, err := uuid.Parse(s.ID())
	assert.NoError(t, err)
	assert.Nil(t, s.World().Player())
}

func TestSessionKeepsGivenID(t *testing.T) {
	s := NewSession(rng.New(1), SessionOptions{ID: "abc"})
	assert.Equal(t, "abc", s.ID())
}

func TestStartNeedsFreshPress(t *testing.T) {
	s := NewSession(rng.New(1), SessionOptions{})

	var held input.Input
	held.Set(input.KeyFire1, true, false)
	s.Step(held)
	assert.Equal(t, PhaseStart, s.Phase())

	s.Step(press(input.KeyFire1))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.NotNil(t, s.World().Player())
	assert.Equal(t, 1, s.Games())
}

func TestQuitStopsSession(t *testing.T) {
	s := playingSession(t, SessionOptions{})
	s.Step(press(input.KeyQuit))
	assert.False(t, s.Running())
}

func TestStopEndsSession(t *testing.T) {
	s := playingSession(t, SessionOptions{})
	s.Stop()
	assert.False(t, s.Running())
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestDeathThenContinue(t *testing.T) {
	s := playingSession(t, SessionOptions{})
	s.World().Player().SetDead()

	s.Step(input.Input{})
	require.Equal(t, PhaseDead, s.Phase())
	assert.Equal(t, 2, s.World().Lives())
	assert.Nil(t, s.World().Player(), "world is cleaned up")

	s.Step(input.Input{})
	assert.Equal(t, PhaseDead, s.Phase())

	s.Step(press(input.KeyFire1))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.NotNil(t, s.World().Player())
	assert.Equal(t, 2, s.World().Lives())
}

func TestGameOverThenRestart(t *testing.T) {
	s := playingSession(t, SessionOptions{Lives: 1})
	s.World().AddScore(300)
	s.World().Player().SetDead()

	s.Step(input.Input{})
	require.Equal(t, PhaseGameOver, s.Phase())
	assert.True(t, s.World().IsGameOver())
	assert.Equal(t, 300, s.BestScore())

	s.Step(press(input.KeyEnter))
	require.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.World().Lives())
	assert.Zero(t, s.World().Score())
	assert.Equal(t, 1, s.World().Level())
	assert.Equal(t, 2, s.Games())
	assert.Equal(t, 300, s.BestScore())
}

func TestLevelUpBanner(t *testing.T) {
	s := playingSession(t, SessionOptions{})
	s.World().AddScore(75)
	s.World().Player().Destroyed = 3

	s.Step(input.Input{})
	require.Equal(t, PhaseLevelUp, s.Phase())
	assert.Equal(t, 2, s.World().Level())

	for i := 0; i < LevelUpFrames-1; i++ {
		s.Step(input.Input{})
	}
	assert.Equal(t, PhaseLevelUp, s.Phase())

	s.Step(input.Input{})
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Zero(t, s.World().Player().Destroyed)
	assert.Equal(t, 75, s.World().Score())
	assert.Equal(t, 3, s.World().Lives())
}

func TestLevelUpBannerSkip(t *testing.T) {
	s := playingSession(t, SessionOptions{})
	s.World().Player().Destroyed = 3
	s.Step(input.Input{})
	require.Equal(t, PhaseLevelUp, s.Phase())

	s.Step(press(input.KeyEnter))
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestTicksOnlyCountPlay(t *testing.T) {
	s := NewSession(rng.New(3), SessionOptions{})
	s.Step(input.Input{})
	s.Step(input.Input{})
	assert.Zero(t, s.Ticks())

	s.Step(press(input.KeyEnter))
	s.Step(input.Input{})
	s.Step(input.Input{})
	assert.Equal(t, 2, s.Ticks())
}
