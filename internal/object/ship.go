package object

import (
	"github.com/mousany/dawn-breaker/internal/physics"
)

// Ship is an enemy fighter. Its movement state is the pair (Timer, Strategy):
// it follows Strategy until Timer runs out and then picks a new heading.
// The three variants differ only in their shipHooks.
type Ship struct {
	Entity
	Timer    int
	Strategy Heading
}

// shipHooks are the per-variant override points of the shared update.
type shipHooks struct {
	// rebirth runs once when the ship dies during its own update.
	rebirth func(s *Ship, ctx UpdateContext)
	attack  func(s *Ship, ctx UpdateContext)
	refuel  func(s *Ship, ctx UpdateContext)
}

var shipTable = map[Kind]shipHooks{
	KindAlphaShip: {rebirth: noHook, attack: alphaAttack, refuel: alphaRefuel},
	KindSigmaShip: {rebirth: sigmaRebirth, attack: sigmaAttack, refuel: noHook},
	KindOmegaShip: {rebirth: omegaRebirth, attack: omegaAttack, refuel: omegaRefuel},
}

func newShip(x, y int, kind Kind, image ImageID, health, damage, speed, energy, score int) *Ship {
	return &Ship{
		Entity: Entity{
			X:         x,
			Y:         y,
			Direction: int(HeadingDown),
			Layer:     0,
			Size:      1.0,
			Kind:      kind,
			Image:     image,
			Health:    health,
			Damage:    damage,
			Speed:     speed,
			Energy:    energy,
			Score:     score,
		},
		Timer:    0,
		Strategy: HeadingDown,
	}
}

// NewAlphaShip creates the balanced fighter that snipes when lined up.
func NewAlphaShip(x, y, health, damage, speed int) *Ship {
	return newShip(x, y, KindAlphaShip, ImageAlphatron, health, damage, speed, AlphaMaxEnergy, AlphaScore)
}

// NewSigmaShip creates the unarmed charger that dives at the player.
func NewSigmaShip(x, y, health, speed int) *Ship {
	return newShip(x, y, KindSigmaShip, ImageSigmatron, health, 0, speed, 0, SigmaScore)
}

// NewOmegaShip creates the heavy ship that fires twin diagonal shots.
func NewOmegaShip(x, y, health, damage, speed int) *Ship {
	return newShip(x, y, KindOmegaShip, ImageOmegatron, health, damage, speed, OmegaMaxEnergy, OmegaScore)
}

// Update runs collapse, attack, refuel, choose, move and a second collapse.
// The second collapse catches contacts created by this tick's move.
func (s *Ship) Update(ctx UpdateContext) {
	if s.IsDead() {
		return
	}

	if s.Y < 0 {
		s.SetDead()
		return
	}

	hooks := shipTable[s.Kind]

	if s.collapse(ctx) {
		hooks.rebirth(s, ctx)
		return
	}

	hooks.attack(s, ctx)
	hooks.refuel(s, ctx)

	s.choose(ctx)
	s.move()

	if s.collapse(ctx) {
		hooks.rebirth(s, ctx)
		return
	}
}

// collapse resolves contact with player bullets, meteors and the player
// itself. It reports whether the ship died.
func (s *Ship) collapse(ctx UpdateContext) bool {
	for _, obj := range ctx.World.Objects() {
		other := obj.Base()
		if other.IsDead() {
			continue
		}
		switch other.Kind {
		case KindBlueBullet:
			if other.Collides(&s.Entity) {
				s.Health -= other.Damage
				other.SetDead()
			}
		case KindMeteor:
			// A meteor is spent on its first ship.
			if other.Collides(&s.Entity) && !s.IsDead() {
				s.SetDead()
				other.SetDead()
			}
		}
	}

	if player := ctx.World.Player(); player != nil && s.Collides(&player.Entity) {
		player.Health -= RamDamage
		s.SetDead()
	}

	if s.IsDead() {
		Destroy(ctx, &s.Entity)
		return true
	}
	return false
}

// choose picks a new heading when the timer runs out, or steers back toward
// the middle when the ship has drifted past a side edge.
func (s *Ship) choose(ctx UpdateContext) {
	switch {
	case s.Timer <= 0:
		switch ctx.Rand.Int(1, 3) {
		case 1:
			s.Strategy = HeadingDown
		case 2:
			s.Strategy = HeadingRight
		case 3:
			s.Strategy = HeadingLeft
		}
		s.Timer = ctx.Rand.Int(ShipTimerMin, ShipTimerMax)
	case s.X < 0:
		s.Strategy = HeadingRight
		s.Timer = ctx.Rand.Int(ShipTimerMin, ShipTimerMax)
	case s.X >= ScreenWidth:
		s.Strategy = HeadingLeft
		s.Timer = ctx.Rand.Int(ShipTimerMin, ShipTimerMax)
	}
}

func (s *Ship) move() {
	s.Timer--
	switch s.Strategy {
	case HeadingDown:
		s.MoveTo(s.X, s.Y-s.Speed)
	case HeadingLeft:
		s.MoveTo(s.X-s.Speed, s.Y-s.Speed)
	case HeadingRight:
		s.MoveTo(s.X+s.Speed, s.Y-s.Speed)
	}
}

// alignedWithPlayer reports whether the ship is within AlignTolerance of the
// player's column.
func (s *Ship) alignedWithPlayer(ctx UpdateContext) bool {
	player := ctx.World.Player()
	return player != nil && physics.AbsInt(s.X-player.X) <= AlignTolerance
}

func noHook(*Ship, UpdateContext) {}

func alphaAttack(s *Ship, ctx UpdateContext) {
	if !s.alignedWithPlayer(ctx) || s.Energy < AlphaShotCost {
		return
	}
	if ctx.Rand.Int(1, 100) <= AlphaFireChance {
		s.Energy -= AlphaShotCost
		ctx.World.Spawn(NewRedBullet(s.X, s.Y-RedBulletOffsetY, HeadingDown, s.Damage))
	}
}

func alphaRefuel(s *Ship, _ UpdateContext) {
	if s.Energy < AlphaMaxEnergy {
		s.Energy++
	}
}

func sigmaRebirth(s *Ship, ctx UpdateContext) {
	if ctx.Rand.Int(1, 100) <= SigmaDropChance {
		ctx.World.Spawn(NewHealthWidget(s.X, s.Y))
	}
}

// sigmaAttack commits the ship to a full-height dive once it lines up.
func sigmaAttack(s *Ship, ctx UpdateContext) {
	if !s.alignedWithPlayer(ctx) {
		return
	}
	s.Strategy = HeadingDown
	s.Timer = ScreenHeight
	s.Speed = SigmaDiveSpeed
}

func omegaRebirth(s *Ship, ctx UpdateContext) {
	if ctx.Rand.Int(1, 100) > OmegaDropChance {
		return
	}
	if ctx.Rand.Int(1, 100) <= OmegaUpgradeChance {
		ctx.World.Spawn(NewUpgradeWidget(s.X, s.Y))
	} else {
		ctx.World.Spawn(NewMeteorWidget(s.X, s.Y))
	}
}

func omegaAttack(s *Ship, ctx UpdateContext) {
	if s.Energy < OmegaShotCost {
		return
	}
	s.Energy -= OmegaShotCost
	ctx.World.Spawn(NewRedBullet(s.X, s.Y-RedBulletOffsetY, HeadingRight, s.Damage))
	ctx.World.Spawn(NewRedBullet(s.X, s.Y-RedBulletOffsetY, HeadingLeft, s.Damage))
}

func omegaRefuel(s *Ship, _ UpdateContext) {
	if s.Energy < OmegaMaxEnergy {
		s.Energy++
	}
}
