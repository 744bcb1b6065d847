package loop

import "time"

// Host timing.
const (
	DefaultTickRate = 30
	// LevelUpFrames is how long the level banner stays up before play resumes.
	LevelUpFrames = 60
)

// Inactivity, used by network hosts.
const (
	DefaultIdleWarn       = 90 * time.Second
	DefaultIdleDisconnect = 120 * time.Second
)
