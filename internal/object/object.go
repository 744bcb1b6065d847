// Package object holds the simulated entities and their per-tick behaviour.
package object

import (
	"github.com/mousany/dawn-breaker/internal/input"
	"github.com/mousany/dawn-breaker/internal/physics"
)

// Screen bounds in world pixels. The origin is the bottom-left corner and
// y grows up-screen: the player lives near y=0, enemies enter at the top.
const (
	ScreenWidth  = 600
	ScreenHeight = 800
)

// Kind tags every entity with its concrete type.
type Kind int

const (
	KindPlayer Kind = iota
	KindStar
	KindExplosion
	KindMeteor
	KindBlueBullet
	KindRedBullet
	KindAlphaShip
	KindSigmaShip
	KindOmegaShip
	KindHealthWidget
	KindUpgradeWidget
	KindMeteorWidget
)

var kindNames = map[Kind]string{
	KindPlayer:        "player",
	KindStar:          "star",
	KindExplosion:     "explosion",
	KindMeteor:        "meteor",
	KindBlueBullet:    "blue_bullet",
	KindRedBullet:     "red_bullet",
	KindAlphaShip:     "alpha_ship",
	KindSigmaShip:     "sigma_ship",
	KindOmegaShip:     "omega_ship",
	KindHealthWidget:  "health_widget",
	KindUpgradeWidget: "upgrade_widget",
	KindMeteorWidget:  "meteor_widget",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsShip reports whether k is one of the enemy ship kinds.
func (k Kind) IsShip() bool {
	return k == KindAlphaShip || k == KindSigmaShip || k == KindOmegaShip
}

// ImageID is the opaque asset handle a renderer uses for an entity.
type ImageID int

const (
	ImageDawnbreaker ImageID = iota
	ImageStar
	ImageExplosion
	ImageBlueBullet
	ImageRedBullet
	ImageMeteor
	ImageAlphatron
	ImageSigmatron
	ImageOmegatron
	ImageHealthGoodie
	ImagePowerupGoodie
	ImageMeteorGoodie
)

// Entity is the record shared by every simulated object.
type Entity struct {
	X, Y      int
	Direction int     // degrees
	Layer     int     // lower layers are drawn on top
	Size      float64 // render scale and collision multiplier
	Kind      Kind
	Image     ImageID

	Health int
	Damage int
	Speed  int
	Energy int
	Score  int // awarded when destroyed or collected

	destroyed bool // set once by Destroy
}

// Base returns the entity itself so embedding types satisfy Object.
func (e *Entity) Base() *Entity {
	return e
}

// MoveTo places the entity at (x, y).
func (e *Entity) MoveTo(x, y int) {
	e.X = x
	e.Y = y
}

// IsDead reports whether health has dropped to zero or below.
func (e *Entity) IsDead() bool {
	return e.Health <= 0
}

// SetDead zeroes health.
func (e *Entity) SetDead() {
	e.Health = 0
}

// Collides reports whether e and other are within touching distance.
func (e *Entity) Collides(other *Entity) bool {
	if other == nil {
		return false
	}
	return physics.Overlap(e.X, e.Y, e.Size, other.X, other.Y, other.Size)
}

// Object is an updatable entity living in the world.
type Object interface {
	Base() *Entity
	// Update advances the object by one tick. Objects never remove
	// themselves; they mark themselves dead and the world prunes them.
	Update(ctx UpdateContext)
}

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// World is the slice of the game world visible to objects during update.
type World interface {
	Spawner
	Player() *Player
	// Objects returns the live collection as of the start of the update pass.
	Objects() []Object
	AddScore(points int)
}

// Input is the host's key state for the current frame.
type Input interface {
	// Key reports whether k is held.
	Key(k input.Key) bool
	// KeyDown reports whether k was pressed this frame.
	KeyDown(k input.Key) bool
}

// Rand draws inclusive random integers.
type Rand interface {
	Int(min, max int) int
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Input Input
	Rand  Rand
	World World
}

// firstShipTouching returns the first live enemy ship overlapping e, or nil.
func firstShipTouching(ctx UpdateContext, e *Entity) *Entity {
	for _, obj := range ctx.World.Objects() {
		target := obj.Base()
		if target.IsDead() || !target.Kind.IsShip() {
			continue
		}
		if target.Collides(e) {
			return target
		}
	}
	return nil
}
