package world

import (
	"github.com/mousany/dawn-breaker/internal/log"
	"github.com/mousany/dawn-breaker/internal/object"
)

// shipWeights returns the relative odds of alpha, sigma and omega at level.
// Level 1 only ever produces alphas; omegas join from level 3.
func shipWeights(level int) (alpha, sigma, omega int) {
	return alphaWeight, sigmaWeight * max(level-1, 0), omegaWeight * max(level-2, 0)
}

// pickShip draws a ship kind by cumulative weight.
func pickShip(r object.Rand, level int) object.Kind {
	alpha, sigma, omega := shipWeights(level)
	roll := r.Int(1, alpha+sigma+omega)
	switch {
	case roll <= alpha:
		return object.KindAlphaShip
	case roll <= alpha+sigma:
		return object.KindSigmaShip
	default:
		return object.KindOmegaShip
	}
}

// newShip builds a ship of kind with stats scaled to level.
func newShip(kind object.Kind, x, y, level int) *object.Ship {
	switch kind {
	case object.KindSigmaShip:
		return object.NewSigmaShip(x, y, 25+5*level, 2+level/5)
	case object.KindOmegaShip:
		return object.NewOmegaShip(x, y, 20+level, 2+2*level, 3+level/4)
	default:
		return object.NewAlphaShip(x, y, 20+2*level, 4+level, 2+level/5)
	}
}

// spawnShip adds a new ship at the top edge. It joins the collection
// directly, so it takes part in this tick's update pass.
func (w *World) spawnShip() {
	x := w.rand.Int(0, object.ScreenWidth-1)
	kind := pickShip(w.rand, w.level)
	w.objects = append(w.objects, newShip(kind, x, object.ScreenHeight-1, w.level))
	w.logger.Debug("ship spawned",
		log.String("kind", kind.String()),
		log.Int("x", x),
		log.Int("level", w.level),
	)
}
