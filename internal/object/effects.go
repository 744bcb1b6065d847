package object

// Star is background decoration drifting toward y=0.
type Star struct {
	Entity
}

// NewStar creates a star; size is in world scale units.
func NewStar(x, y int, size float64) *Star {
	return &Star{
		Entity: Entity{
			X:      x,
			Y:      y,
			Layer:  StarLayer,
			Size:   size,
			Kind:   KindStar,
			Image:  ImageStar,
			Health: 1,
			Speed:  1,
		},
	}
}

// RandomStarSize draws a star scale in [0.10, 0.40].
func RandomStarSize(r Rand) float64 {
	return float64(r.Int(StarSizeMin, StarSizeMax)) / 100.0
}

func (s *Star) Update(_ UpdateContext) {
	if s.IsDead() {
		return
	}
	if s.Y < 0 {
		s.SetDead()
		return
	}
	s.MoveTo(s.X, s.Y-s.Speed)
}

// Explosion is a short-lived blast left behind by a destroyed ship.
type Explosion struct {
	Entity
	age int
}

// NewExplosion creates a full-size explosion at (x, y).
func NewExplosion(x, y int) *Explosion {
	return &Explosion{
		Entity: Entity{
			X:      x,
			Y:      y,
			Layer:  ExplosionLayer,
			Size:   ExplosionSize,
			Kind:   KindExplosion,
			Image:  ImageExplosion,
			Health: 1,
		},
	}
}

// Update shrinks the blast and expires it after ExplosionFrames ticks.
func (e *Explosion) Update(_ UpdateContext) {
	if e.IsDead() {
		return
	}
	e.Size -= ExplosionShrink
	e.age++
	if e.age >= ExplosionFrames {
		e.SetDead()
	}
}

// Destroy kills a hostile object on the player's behalf: it leaves an
// explosion, credits the kill and awards the object's score. Repeated
// calls for the same entity have no effect.
func Destroy(ctx UpdateContext, target *Entity) {
	if target == nil || target.destroyed {
		return
	}
	target.destroyed = true

	ctx.World.Spawn(NewExplosion(target.X, target.Y))
	target.SetDead()
	if player := ctx.World.Player(); player != nil {
		player.Destroyed++
	}
	ctx.World.AddScore(target.Score)
}
