package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mousany/dawn-breaker/internal/rng"
)

func TestBlueBulletKillsAlphaShip(t *testing.T) {
	ship := NewAlphaShip(300, 400, 5, 5, 2)
	bullet := NewBlueBullet(300, 400, 0.5, 5)
	w := newFakeWorld(ship, bullet)

	bullet.Update(ctxFor(w, noKeys(), nil))

	assert.Equal(t, 0, ship.Health)
	assert.True(t, ship.IsDead())
	assert.True(t, bullet.IsDead())
	assert.Equal(t, 1, w.player.Destroyed)
	assert.Equal(t, AlphaScore, w.score)
	explosions := w.spawnedOfKind(KindExplosion)
	require.Len(t, explosions, 1)
	assert.Equal(t, 300, explosions[0].Base().X)
	assert.Equal(t, 400, explosions[0].Base().Y)
}

func TestBlueBulletWoundsWithoutKilling(t *testing.T) {
	ship := NewAlphaShip(300, 400, 12, 5, 2)
	bullet := NewBlueBullet(300, 400, 0.5, 5)
	w := newFakeWorld(ship, bullet)

	bullet.Update(ctxFor(w, noKeys(), nil))

	assert.Equal(t, 7, ship.Health)
	assert.True(t, bullet.IsDead(), "the bullet is spent on any hit")
	assert.Zero(t, w.player.Destroyed)
	assert.Empty(t, w.spawned)
}

func TestBlueBulletHitsOnlyOneShip(t *testing.T) {
	a := NewAlphaShip(300, 400, 5, 5, 2)
	b := NewAlphaShip(305, 400, 5, 5, 2)
	bullet := NewBlueBullet(300, 400, 0.5, 5)
	w := newFakeWorld(a, b, bullet)

	bullet.Update(ctxFor(w, noKeys(), nil))

	assert.True(t, a.IsDead())
	assert.False(t, b.IsDead())
	assert.Equal(t, 1, w.player.Destroyed)
}

func TestBlueBulletChecksAfterMoving(t *testing.T) {
	// 48 pixels apart: out of reach (45) before the step, in reach after.
	ship := NewAlphaShip(300, 448, 5, 5, 2)
	bullet := NewBlueBullet(300, 400, 0.5, 5)
	w := newFakeWorld(ship, bullet)

	bullet.Update(ctxFor(w, noKeys(), nil))

	assert.Equal(t, 406, bullet.Y)
	assert.True(t, ship.IsDead())
}

func TestBlueBulletExpiresOffScreen(t *testing.T) {
	w := newFakeWorld()
	bullet := NewBlueBullet(10, ScreenHeight-1, 0.5, 5)
	ctx := ctxFor(w, noKeys(), nil)

	bullet.Update(ctx)
	assert.Equal(t, ScreenHeight+5, bullet.Y)
	assert.False(t, bullet.IsDead())
	bullet.Update(ctx)
	assert.True(t, bullet.IsDead())
}

func TestMeteorKillsAtMostOneShipPerTick(t *testing.T) {
	ships := []*Ship{
		NewAlphaShip(300, 400, 50, 5, 2),
		NewSigmaShip(310, 400, 50, 2),
		NewOmegaShip(290, 400, 50, 5, 3),
	}
	meteor := NewMeteor(300, 400)
	w := newFakeWorld(ships[0], ships[1], ships[2], meteor)
	ctx := ctxFor(w, noKeys(), rng.New(3))

	meteor.Update(ctx)
	for _, s := range ships {
		s.Update(ctx)
	}

	dead := 0
	for _, s := range ships {
		if s.IsDead() {
			dead++
		}
	}
	assert.Equal(t, 1, dead)
	assert.True(t, ships[0].IsDead(), "first ship in scan order")
	assert.True(t, meteor.IsDead())
	assert.Equal(t, 1, w.player.Destroyed)
}

func TestShipCollapseConsumesMeteor(t *testing.T) {
	a := NewAlphaShip(300, 400, 50, 5, 2)
	b := NewAlphaShip(310, 400, 50, 5, 2)
	meteor := NewMeteor(305, 400)
	w := newFakeWorld(a, b, meteor)
	ctx := ctxFor(w, noKeys(), rng.New(3))

	a.Update(ctx)
	b.Update(ctx)

	assert.True(t, a.IsDead())
	assert.False(t, b.IsDead())
	assert.True(t, meteor.IsDead())
	assert.Equal(t, 1, w.player.Destroyed)
}

func TestMeteorRotatesAndExpires(t *testing.T) {
	w := newFakeWorld()
	meteor := NewMeteor(10, 500)
	meteor.Direction = 357
	ctx := ctxFor(w, noKeys(), nil)

	meteor.Update(ctx)
	assert.Equal(t, 502, meteor.Y)
	assert.Equal(t, 2, meteor.Direction)

	meteor.MoveTo(10, ScreenHeight)
	meteor.Update(ctx)
	assert.True(t, meteor.IsDead())
}

func TestShipCollapseTakesBulletDamage(t *testing.T) {
	ship := NewAlphaShip(400, 500, 20, 5, 2)
	b1 := NewBlueBullet(400, 505, 0.5, 5)
	b2 := NewBlueBullet(395, 495, 0.5, 8)
	w := newFakeWorld(ship, b1, b2)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(1, 30)))

	assert.Equal(t, 7, ship.Health)
	assert.True(t, b1.IsDead())
	assert.True(t, b2.IsDead())
	assert.False(t, ship.IsDead())
}

func TestShipRamsPlayer(t *testing.T) {
	ship := NewAlphaShip(300, 120, 20, 5, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), nil))

	assert.Equal(t, 80, w.player.Health)
	assert.True(t, ship.IsDead())
	assert.Equal(t, 1, w.player.Destroyed)
	assert.Len(t, w.spawnedOfKind(KindExplosion), 1)
	assert.Equal(t, 120, ship.Y, "dies before moving")
}

func TestShipExpiresPastBottom(t *testing.T) {
	ship := NewAlphaShip(100, -1, 20, 5, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), nil))
	assert.True(t, ship.IsDead())
	assert.Zero(t, w.player.Destroyed, "escaping is not a kill")
	assert.Empty(t, w.spawned)
}

func TestShipChoosesNewStrategyWhenTimerRunsOut(t *testing.T) {
	ship := NewAlphaShip(100, 600, 20, 5, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(2, 37)))

	assert.Equal(t, HeadingRight, ship.Strategy)
	assert.Equal(t, 36, ship.Timer)
	assert.Equal(t, 102, ship.X)
	assert.Equal(t, 598, ship.Y)
}

func TestChooseAlwaysYieldsValidStrategy(t *testing.T) {
	w := newFakeWorld()
	r := rng.New(11)
	ctx := ctxFor(w, noKeys(), r)
	valid := map[Heading]bool{HeadingDown: true, HeadingLeft: true, HeadingRight: true}

	for i := 0; i < 300; i++ {
		ship := NewOmegaShip(r.Int(0, ScreenWidth-1), 500, 20, 4, 3)
		ship.Timer = 0
		ship.choose(ctx)
		require.True(t, valid[ship.Strategy])
		require.GreaterOrEqual(t, ship.Timer, ShipTimerMin)
		require.LessOrEqual(t, ship.Timer, ShipTimerMax)
	}
}

func TestShipSteersBackFromSideEdges(t *testing.T) {
	w := newFakeWorld()
	ctx := ctxFor(w, noKeys(), rng.NewSequence(15, 25))

	left := NewAlphaShip(-2, 500, 20, 5, 2)
	left.Timer = 8
	left.Strategy = HeadingLeft
	left.choose(ctx)
	assert.Equal(t, HeadingRight, left.Strategy)
	assert.Equal(t, 15, left.Timer)

	right := NewAlphaShip(ScreenWidth, 500, 20, 5, 2)
	right.Timer = 8
	right.Strategy = HeadingRight
	right.choose(ctx)
	assert.Equal(t, HeadingLeft, right.Strategy)
	assert.Equal(t, 25, right.Timer)

	inside := NewAlphaShip(200, 500, 20, 5, 2)
	inside.Timer = 8
	inside.Strategy = HeadingLeft
	inside.choose(ctx)
	assert.Equal(t, HeadingLeft, inside.Strategy)
	assert.Equal(t, 8, inside.Timer)
}

func TestAlphaFiresWhenAligned(t *testing.T) {
	ship := NewAlphaShip(305, 600, 20, 7, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(25, 1, 20)))

	bullets := w.spawnedOfKind(KindRedBullet)
	require.Len(t, bullets, 1)
	b := bullets[0].Base()
	assert.Equal(t, 305, b.X)
	assert.Equal(t, 550, b.Y)
	assert.Equal(t, int(HeadingDown), b.Direction)
	assert.Equal(t, 7, b.Damage)
	assert.Equal(t, 1, ship.Energy, "spent 25, refuelled 1")
}

func TestAlphaHoldsFireOnFailedRoll(t *testing.T) {
	ship := NewAlphaShip(305, 600, 20, 7, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(26, 1, 20)))
	assert.Empty(t, w.spawned)
	assert.Equal(t, AlphaMaxEnergy, ship.Energy)
}

func TestAlphaNeedsAlignment(t *testing.T) {
	ship := NewAlphaShip(311, 600, 20, 7, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(1, 1, 20)))
	assert.Empty(t, w.spawned)
}

func TestSigmaDivesWhenAligned(t *testing.T) {
	ship := NewSigmaShip(305, 500, 30, 2)
	ship.Strategy = HeadingLeft
	ship.Timer = 4
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), nil))

	assert.Equal(t, HeadingDown, ship.Strategy)
	assert.Equal(t, SigmaDiveSpeed, ship.Speed)
	assert.Equal(t, ScreenHeight-1, ship.Timer)
	assert.Equal(t, 305, ship.X)
	assert.Equal(t, 490, ship.Y)
	assert.Zero(t, ship.Energy, "sigma never refuels")
}

func TestSigmaRebirthDropsHealth(t *testing.T) {
	ship := NewSigmaShip(300, 120, 30, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(SigmaDropChance)))

	widgets := w.spawnedOfKind(KindHealthWidget)
	require.Len(t, widgets, 1)
	assert.Equal(t, 300, widgets[0].Base().X)
	assert.Equal(t, 120, widgets[0].Base().Y)
}

func TestSigmaRebirthMissedRoll(t *testing.T) {
	ship := NewSigmaShip(300, 120, 30, 2)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(SigmaDropChance+1)))
	assert.Empty(t, w.spawnedOfKind(KindHealthWidget))
	assert.Len(t, w.spawnedOfKind(KindExplosion), 1)
}

func TestOmegaFiresTwinShots(t *testing.T) {
	ship := NewOmegaShip(100, 600, 25, 6, 3)
	w := newFakeWorld(ship)

	ship.Update(ctxFor(w, noKeys(), rng.NewSequence(1, 20)))

	bullets := w.spawnedOfKind(KindRedBullet)
	require.Len(t, bullets, 2)
	assert.Equal(t, int(HeadingRight), bullets[0].Base().Direction)
	assert.Equal(t, int(HeadingLeft), bullets[1].Base().Direction)
	for _, b := range bullets {
		assert.Equal(t, 100, b.Base().X)
		assert.Equal(t, 550, b.Base().Y)
		assert.Equal(t, 6, b.Base().Damage)
	}
	assert.Equal(t, 1, ship.Energy)
}

func TestOmegaRebirthDrops(t *testing.T) {
	cases := []struct {
		name  string
		rolls []int
		want  Kind
		drops bool
	}{
		{"upgrade", []int{40, 80}, KindUpgradeWidget, true},
		{"meteor", []int{40, 81}, KindMeteorWidget, true},
		{"nothing", []int{41}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ship := NewOmegaShip(300, 120, 25, 6, 3)
			w := newFakeWorld(ship)

			ship.Update(ctxFor(w, noKeys(), rng.NewSequence(c.rolls...)))

			var widgets []Object
			for _, obj := range w.spawned {
				switch obj.Base().Kind {
				case KindHealthWidget, KindUpgradeWidget, KindMeteorWidget:
					widgets = append(widgets, obj)
				}
			}
			if !c.drops {
				assert.Empty(t, widgets)
				return
			}
			require.Len(t, widgets, 1)
			assert.Equal(t, c.want, widgets[0].Base().Kind)
		})
	}
}

func TestRebirthSkippedWhenKilledByBullet(t *testing.T) {
	ship := NewSigmaShip(300, 500, 5, 2)
	bullet := NewBlueBullet(300, 500, 0.5, 5)
	w := newFakeWorld(ship, bullet)
	ctx := ctxFor(w, noKeys(), rng.NewSequence(1))

	bullet.Update(ctx)
	ship.Update(ctx)

	assert.True(t, ship.IsDead())
	assert.Empty(t, w.spawnedOfKind(KindHealthWidget))
	assert.Equal(t, 1, w.player.Destroyed)
}
