// Package loop runs a Dawn Breaker session on a terminal: input, update, draw.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/mousany/dawn-breaker/internal/draw"
	"github.com/mousany/dawn-breaker/internal/input"
	"github.com/mousany/dawn-breaker/internal/log"
	"github.com/mousany/dawn-breaker/internal/object"
)

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Rand         object.Rand
	Session      SessionOptions
	TickRate     int

	// IdleWarn and IdleDisconnect enable the inactivity screen and kick.
	// Zero disables them.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// host is the terminal side of a running session.
type host struct {
	session   *Session
	stream    *input.Stream
	canvas    *draw.Canvas
	cw        *draw.ChunkWriter
	sizeFunc  draw.TermSizeFunc
	termCols  int
	termRows  int
	lastInput time.Time
	idle      bool
	cancelled bool
	opts      Options
}

// Run plays a session until the player quits, the input closes, the idle
// timeout expires or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.Rand == nil {
		return errors.New("loop: no random source")
	}
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	frameTime := time.Second / time.Duration(opts.TickRate)

	h := &host{
		session:   NewSession(opts.Rand, opts.Session),
		stream:    input.StartStream(r),
		canvas:    draw.NewCanvas(1, 1),
		cw:        draw.NewChunkWriter(w),
		sizeFunc:  opts.TermSizeFunc,
		lastInput: time.Now(),
		opts:      opts,
	}
	h.canvas.SetOffset(1)
	logger := h.session.Logger()
	logger.Info("session started", log.Int("tick_rate", opts.TickRate))

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for h.session.Running() {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			h.cancelled = true
			h.session.Stop()
			continue
		default:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(h.stream)
		if h.checkIdle(in, frameStart) {
			logger.Info("session idle, disconnecting")
			break
		}

		// ===== UPDATE PHASE =====
		if err := h.updateScreen(); err != nil {
			return errors.Wrap(err, "read terminal size")
		}
		h.session.Step(in)

		// ===== DRAW PHASE =====
		h.drawFrame()
		if err := h.cw.Flush(); err != nil {
			return errors.Wrap(err, "write frame")
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	if h.cancelled {
		h.drawShutdown()
		_ = h.cw.Flush()
		logger.Info("session closed by host")
	} else {
		draw.ClearScreen(w)
	}
	logger.Info("session ended",
		log.Int("ticks", h.session.Ticks()),
		log.Int("games", h.session.Games()),
		log.Int("best_score", h.session.BestScore()),
	)
	return nil
}

// checkIdle tracks the last keypress and reports whether the session should
// be dropped for inactivity.
func (h *host) checkIdle(in input.Input, now time.Time) bool {
	if len(in.Pressed) > 0 {
		h.lastInput = now
		h.idle = false
		return false
	}
	quiet := now.Sub(h.lastInput)
	if h.opts.IdleDisconnect > 0 && quiet > h.opts.IdleDisconnect {
		return true
	}
	h.idle = h.opts.IdleWarn > 0 && quiet > h.opts.IdleWarn
	return false
}

// updateScreen picks up terminal resizes. The top row is kept for status text.
func (h *host) updateScreen() error {
	cols, rows, err := h.sizeFunc()
	if err != nil {
		return err
	}
	if cols != h.termCols || rows != h.termRows {
		h.termCols, h.termRows = cols, rows
		h.canvas.Resize(cols, rows-1)
		draw.ClearScreen(h.cw)
	}
	return nil
}
