// Package world owns the entity collection and drives one level tick by tick.
package world

import (
	"fmt"

	"github.com/mousany/dawn-breaker/internal/log"
	"github.com/mousany/dawn-breaker/internal/object"
)

const (
	InitialLives = 3
	InitialStars = 30

	// StarChance is the 1-in-N chance of a new star each tick.
	StarChance = 30

	alphaWeight = 6
	sigmaWeight = 2
	omegaWeight = 3
)

// LevelStatus is the outcome of a single tick.
type LevelStatus int

const (
	Ongoing LevelStatus = iota
	PlayerDestroyed
	LevelCleared
)

func (s LevelStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case PlayerDestroyed:
		return "player_destroyed"
	case LevelCleared:
		return "level_cleared"
	default:
		return "unknown"
	}
}

var _ object.World = (*World)(nil)

// World holds the player, every other entity and the session counters.
// Lives, score and level survive CleanUp; the entities do not.
type World struct {
	player  *object.Player
	objects []object.Object
	toSpawn []object.Object // merged after the current update pass

	lives  int
	score  int
	level  int
	status string

	rand   object.Rand
	logger log.Log
}

// Option configures a World.
type Option func(*World)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l log.Log) Option {
	return func(w *World) {
		w.logger = l
	}
}

// WithLives overrides the starting number of lives.
func WithLives(lives int) Option {
	return func(w *World) {
		if lives > 0 {
			w.lives = lives
		}
	}
}

// New creates a world at level 1. Call Init before the first Update.
func New(r object.Rand, opts ...Option) *World {
	w := &World{
		lives:  InitialLives,
		level:  1,
		rand:   r,
		logger: log.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Init populates a fresh level: the player and a field of stars.
func (w *World) Init() {
	w.player = object.NewPlayer()
	w.objects = w.objects[:0]
	w.toSpawn = w.toSpawn[:0]
	for i := 0; i < InitialStars; i++ {
		x := w.rand.Int(0, object.ScreenWidth-1)
		y := w.rand.Int(0, object.ScreenHeight-1)
		w.objects = append(w.objects, object.NewStar(x, y, object.RandomStarSize(w.rand)))
	}
	w.logger.Debug("level initialised",
		log.Int("level", w.level),
		log.Int("lives", w.lives),
		log.Int("score", w.score),
	)
}

// Update advances the level by one tick using the host's input for the player.
// It must follow Init.
func (w *World) Update(in object.Input) LevelStatus {
	if w.player == nil {
		return Ongoing
	}

	if w.rand.Int(1, StarChance) == 1 {
		x := w.rand.Int(0, object.ScreenWidth-1)
		w.objects = append(w.objects, object.NewStar(x, object.ScreenHeight-1, object.RandomStarSize(w.rand)))
	}

	required := w.Required()
	if w.liveShips() < w.allowedShips() {
		w.spawnShip()
	}

	ctx := object.UpdateContext{Input: in, Rand: w.rand, World: w}
	for _, obj := range w.objects {
		obj.Update(ctx)
	}
	w.player.Update(ctx)
	w.flushSpawned()

	if w.player.IsDead() {
		w.lives--
		w.logger.Debug("player destroyed",
			log.Int("level", w.level),
			log.Int("lives", w.lives),
		)
		return PlayerDestroyed
	}

	if w.player.Destroyed >= required {
		w.logger.Debug("level cleared",
			log.Int("level", w.level),
			log.Int("score", w.score),
		)
		return LevelCleared
	}

	w.prune()
	w.status = fmt.Sprintf("HP: %d/100   Meteors: %d   Lives: %d   Level: %d   Enemies: %d/%d   Score: %d",
		w.player.Health, w.player.Meteors, w.lives, w.level, w.player.Destroyed, required, w.score)

	return Ongoing
}

// CleanUp drops the player and every entity. Calling it twice is harmless.
func (w *World) CleanUp() {
	w.player = nil
	w.objects = nil
	w.toSpawn = nil
}

// IsGameOver reports whether the session has run out of lives.
func (w *World) IsGameOver() bool {
	return w.lives <= 0
}

// NextLevel advances the level counter. The host calls it after LevelCleared
// and before re-initialising.
func (w *World) NextLevel() {
	w.level++
	w.logger.Debug("advancing level", log.Int("level", w.level))
}

// Required returns the kill count that clears the current level.
func (w *World) Required() int {
	return 3 * w.level
}

func (w *World) Level() int             { return w.level }
func (w *World) Score() int             { return w.score }
func (w *World) Lives() int             { return w.lives }
func (w *World) Status() string         { return w.status }
func (w *World) Player() *object.Player { return w.player }

// Objects returns the entity collection, excluding the player.
func (w *World) Objects() []object.Object {
	return w.objects
}

// AddScore credits points to the session score.
func (w *World) AddScore(points int) {
	w.score += points
}

// Spawn queues obj until the current update pass is over.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

func (w *World) flushSpawned() {
	w.objects = append(w.objects, w.toSpawn...)
	w.toSpawn = w.toSpawn[:0]
}

// prune drops dead entities in place, keeping order.
func (w *World) prune() {
	kept := w.objects[:0]
	for _, obj := range w.objects {
		if !obj.Base().IsDead() {
			kept = append(kept, obj)
		}
	}
	clear(w.objects[len(kept):])
	w.objects = kept
}

func (w *World) liveShips() int {
	n := 0
	for _, obj := range w.objects {
		e := obj.Base()
		if e.Kind.IsShip() && !e.IsDead() {
			n++
		}
	}
	return n
}

func (w *World) allowedShips() int {
	toDestroy := w.Required() - w.player.Destroyed
	return min((5+w.level)/2, toDestroy)
}
