package main

import (
	"github.com/mousany/dawn-breaker/internal/input"
	"github.com/mousany/dawn-breaker/internal/loop"
	"github.com/mousany/dawn-breaker/internal/object"
	"github.com/mousany/dawn-breaker/internal/physics"
)

const (
	// dodgeRange is how close an enemy shot may get, in both axes, before
	// the pilot stops chasing and sidesteps.
	dodgeRange = 60
	// meteorEvery is the minimum number of frames between meteor launches.
	meteorEvery = 45
)

// autopilot is a scripted player for headless runs. It chases the nearest
// ship's column, holds the trigger, sidesteps incoming shots and launches a
// meteor when a ship is lined up.
type autopilot struct {
	frame      int
	lastMeteor int
	confirmed  bool
}

func (a *autopilot) next(s *loop.Session) input.Input {
	a.frame++
	var in input.Input

	if s.Phase() != loop.PhasePlaying {
		// Alternate so every confirm is a fresh press.
		a.confirmed = !a.confirmed
		in.Set(input.KeyEnter, a.confirmed, a.confirmed)
		return in
	}

	w := s.World()
	player := w.Player()
	if player == nil {
		return in
	}

	if shot := incomingShot(player, w.Objects()); shot != nil {
		if shot.X >= player.X {
			in.Set(input.KeyLeft, true, false)
		} else {
			in.Set(input.KeyRight, true, false)
		}
		in.Set(input.KeyFire1, true, false)
		return in
	}

	target := nearestShip(player, w.Objects())
	if target != nil {
		switch {
		case target.X < player.X-object.PlayerStep:
			in.Set(input.KeyLeft, true, false)
		case target.X > player.X+object.PlayerStep:
			in.Set(input.KeyRight, true, false)
		}
		lined := physics.AbsInt(target.X-player.X) <= object.AlignTolerance
		if lined && player.Meteors > 0 && a.frame-a.lastMeteor >= meteorEvery {
			in.Set(input.KeyFire2, true, true)
			a.lastMeteor = a.frame
		}
	}
	in.Set(input.KeyFire1, true, false)
	return in
}

// nearestShip returns the live ship closest to the player.
func nearestShip(player *object.Player, objects []object.Object) *object.Entity {
	var best *object.Entity
	bestDist := 0.0
	for _, obj := range objects {
		e := obj.Base()
		if e.IsDead() || !e.Kind.IsShip() {
			continue
		}
		d := physics.Distance(player.X, player.Y, e.X, e.Y)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// incomingShot returns an enemy shot or ship that is about to reach the player.
func incomingShot(player *object.Player, objects []object.Object) *object.Entity {
	for _, obj := range objects {
		e := obj.Base()
		if e.IsDead() {
			continue
		}
		if e.Kind != object.KindRedBullet && e.Kind != object.KindSigmaShip {
			continue
		}
		dy := e.Y - player.Y
		if dy >= 0 && dy <= 3*dodgeRange && physics.AbsInt(e.X-player.X) <= dodgeRange {
			return e
		}
	}
	return nil
}
