package object

import "github.com/mousany/dawn-breaker/internal/input"

// Player is the Dawnbreaker, the ship under the host's control.
type Player struct {
	Entity
	Upgrade   int // raises bullet size and damage
	Meteors   int // special weapon charges
	Destroyed int // enemy kills this level
}

// NewPlayer creates a player at the start position with full health and energy.
func NewPlayer() *Player {
	return &Player{
		Entity: Entity{
			X:      PlayerStartX,
			Y:      PlayerStartY,
			Layer:  0,
			Size:   1.0,
			Kind:   KindPlayer,
			Image:  ImageDawnbreaker,
			Health: PlayerMaxHealth,
			Speed:  PlayerStep,
			Energy: PlayerMaxEnergy,
		},
	}
}

// Update handles movement, both weapons and energy regeneration, in that order.
func (p *Player) Update(ctx UpdateContext) {
	if p.IsDead() {
		return
	}

	// Each direction is gated on where the ship was at the start of the tick.
	nowX, nowY := p.X, p.Y
	x, y := nowX, nowY
	if ctx.Input.Key(input.KeyLeft) && nowX >= PlayerMinX {
		x -= PlayerStep
	}
	if ctx.Input.Key(input.KeyRight) && nowX <= PlayerMaxX {
		x += PlayerStep
	}
	if ctx.Input.Key(input.KeyDown) && nowY >= PlayerMinY {
		y -= PlayerStep
	}
	if ctx.Input.Key(input.KeyUp) && nowY <= PlayerMaxY {
		y += PlayerStep
	}
	p.MoveTo(x, y)

	if ctx.Input.Key(input.KeyFire1) && p.Energy >= PlayerShotCost {
		p.Energy -= PlayerShotCost
		ctx.World.Spawn(NewBlueBullet(
			nowX, nowY+BlueBulletOffsetY,
			BlueBulletBaseSize+BlueBulletSizeStep*float64(p.Upgrade),
			BlueBulletBaseDamage+BlueBulletDamageStep*p.Upgrade,
		))
	}

	if ctx.Input.KeyDown(input.KeyFire2) && p.Meteors > 0 {
		p.Meteors--
		ctx.World.Spawn(NewMeteor(nowX, nowY+MeteorOffsetY))
	}

	if p.Energy < PlayerMaxEnergy {
		p.Energy++
	}
}
