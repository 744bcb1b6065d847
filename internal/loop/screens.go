package loop

import (
	"fmt"
	"time"

	"github.com/mousany/dawn-breaker/internal/draw"
)

const (
	titleText    = "D A W N   B R E A K E R"
	controlsText = "Arrows/WASD to move, SPACE or J to fire, K to launch a meteor, Q to quit"
)

// drawFrame clears the screen and draws the world and the phase overlay.
func (h *host) drawFrame() {
	draw.ClearScreen(h.cw)
	h.canvas.Clear()

	w := h.session.World()
	h.canvas.Paint(w.Player(), w.Objects())
	h.canvas.Render(h.cw)

	centerY := h.termRows / 2
	switch h.session.Phase() {
	case PhaseStart:
		h.drawStartScreen(centerY)
	case PhasePlaying:
		h.cw.ClearLine(1)
		h.cw.WriteAt(1, 1, w.Status())
	case PhaseDead:
		h.drawDeadScreen(centerY)
	case PhaseGameOver:
		h.drawGameOverScreen(centerY)
	case PhaseLevelUp:
		h.drawLevelUpScreen(centerY)
	}

	if h.idle {
		h.drawInactivityScreen(centerY)
	}
}

func (h *host) drawStartScreen(centerY int) {
	h.cw.WriteCentered(h.termCols, centerY-2, titleText)
	h.cw.WriteCentered(h.termCols, centerY+1, "Press SPACE to Start")
	h.cw.WriteCentered(h.termCols, centerY+4, controlsText)
}

func (h *host) drawDeadScreen(centerY int) {
	w := h.session.World()
	h.cw.WriteCentered(h.termCols, centerY-2, "SHIP LOST")
	h.cw.WriteCentered(h.termCols, centerY, fmt.Sprintf("Score: %d", w.Score()))
	h.cw.WriteCentered(h.termCols, centerY+2,
		fmt.Sprintf("Lives remaining: %d - Press SPACE to continue", w.Lives()))
}

func (h *host) drawGameOverScreen(centerY int) {
	w := h.session.World()
	h.cw.WriteCentered(h.termCols, centerY-2, "GAME OVER")
	h.cw.WriteCentered(h.termCols, centerY,
		fmt.Sprintf("Score: %d   Level: %d   Best: %d", w.Score(), w.Level(), h.session.BestScore()))
	h.cw.WriteCentered(h.termCols, centerY+2, "Press SPACE to Restart")
}

func (h *host) drawLevelUpScreen(centerY int) {
	w := h.session.World()
	h.cw.WriteCentered(h.termCols, centerY-1, fmt.Sprintf("LEVEL %d CLEARED", w.Level()-1))
	h.cw.WriteCentered(h.termCols, centerY+1, fmt.Sprintf("Get ready for level %d", w.Level()))
}

func (h *host) drawInactivityScreen(centerY int) {
	left := h.opts.IdleDisconnect - time.Since(h.lastInput)
	h.cw.WriteCentered(h.termCols, centerY+6,
		fmt.Sprintf("You have been inactive for too long. Disconnecting in %d seconds.", int(left.Seconds())))
}

// drawShutdown tells the player the host is going away.
func (h *host) drawShutdown() {
	draw.ClearScreen(h.cw)
	h.cw.WriteCentered(h.termCols, h.termRows/2, "Server is shutting down. Thanks for playing!")
}
