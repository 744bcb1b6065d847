package object

// Heading is an enemy movement strategy. The values double as facing angles.
type Heading int

const (
	HeadingDown  Heading = 180 // straight toward y=0
	HeadingLeft  Heading = 198 // diagonal toward x=0
	HeadingRight Heading = 162 // diagonal toward x=ScreenWidth
)

// BlueBullet is the player's primary shot.
type BlueBullet struct {
	Entity
}

// NewBlueBullet creates a player shot at (x, y).
func NewBlueBullet(x, y int, size float64, damage int) *BlueBullet {
	return &BlueBullet{
		Entity: Entity{
			X:      x,
			Y:      y,
			Layer:  ProjectileLayer,
			Size:   size,
			Kind:   KindBlueBullet,
			Image:  ImageBlueBullet,
			Health: 1,
			Damage: damage,
			Speed:  BlueBulletStep,
		},
	}
}

// Update checks for a hit, moves, then checks again so a ship the bullet
// stepped over between frames still registers.
func (b *BlueBullet) Update(ctx UpdateContext) {
	if b.IsDead() {
		return
	}

	if b.Y >= ScreenHeight {
		b.SetDead()
		return
	}

	if b.hit(ctx) {
		return
	}

	b.MoveTo(b.X, b.Y+BlueBulletStep)

	b.hit(ctx)
}

// hit damages the first ship the bullet touches and consumes the bullet.
func (b *BlueBullet) hit(ctx UpdateContext) bool {
	target := firstShipTouching(ctx, &b.Entity)
	if target == nil {
		return false
	}
	target.Health -= b.Damage
	b.SetDead()
	if target.IsDead() {
		Destroy(ctx, target)
	}
	return true
}

// RedBullet is an enemy shot; it only ever hurts the player.
type RedBullet struct {
	Entity
}

// NewRedBullet creates an enemy shot at (x, y) travelling along heading.
func NewRedBullet(x, y int, heading Heading, damage int) *RedBullet {
	return &RedBullet{
		Entity: Entity{
			X:         x,
			Y:         y,
			Direction: int(heading),
			Layer:     ProjectileLayer,
			Size:      RedBulletSize,
			Kind:      KindRedBullet,
			Image:     ImageRedBullet,
			Health:    1,
			Damage:    damage,
			Speed:     RedBulletSpeed,
		},
	}
}

// Update follows the same check, move, check pattern as BlueBullet.
func (r *RedBullet) Update(ctx UpdateContext) {
	if r.IsDead() {
		return
	}

	if r.Y < 0 {
		r.SetDead()
		return
	}

	if r.hit(ctx) {
		return
	}

	switch Heading(r.Direction) {
	case HeadingDown:
		r.MoveTo(r.X, r.Y-RedBulletStepY)
	case HeadingRight:
		r.MoveTo(r.X+RedBulletDriftX, r.Y-RedBulletStepY)
	case HeadingLeft:
		r.MoveTo(r.X-RedBulletDriftX, r.Y-RedBulletStepY)
	}

	r.hit(ctx)
}

func (r *RedBullet) hit(ctx UpdateContext) bool {
	player := ctx.World.Player()
	if player == nil || !r.Collides(&player.Entity) {
		return false
	}
	player.Health -= r.Damage
	r.SetDead()
	return true
}

// Meteor is the player's special weapon. It destroys the first ship it
// touches and is spent doing so.
type Meteor struct {
	Entity
}

// NewMeteor creates a meteor at (x, y).
func NewMeteor(x, y int) *Meteor {
	return &Meteor{
		Entity: Entity{
			X:      x,
			Y:      y,
			Layer:  ProjectileLayer,
			Size:   MeteorSize,
			Kind:   KindMeteor,
			Image:  ImageMeteor,
			Health: 1,
			Damage: MeteorDamage,
			Speed:  MeteorStep,
		},
	}
}

func (m *Meteor) Update(ctx UpdateContext) {
	if m.IsDead() {
		return
	}

	if m.Y >= ScreenHeight {
		m.SetDead()
		return
	}

	if m.hit(ctx) {
		return
	}

	m.MoveTo(m.X, m.Y+MeteorStep)
	m.Direction = (m.Direction + MeteorSpin) % 360

	m.hit(ctx)
}

func (m *Meteor) hit(ctx UpdateContext) bool {
	target := firstShipTouching(ctx, &m.Entity)
	if target == nil {
		return false
	}
	Destroy(ctx, target)
	m.SetDead()
	return true
}
