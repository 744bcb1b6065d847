package main

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mousany/dawn-breaker/internal/config"
	"github.com/mousany/dawn-breaker/internal/draw"
	"github.com/mousany/dawn-breaker/internal/log"
	"github.com/mousany/dawn-breaker/internal/loop"
	"github.com/mousany/dawn-breaker/internal/rng"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ssh server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return err
	}
	tuning.SSH.Host = config.GetEnv("SSH_HOST", tuning.SSH.Host)
	tuning.SSH.Port = config.GetEnv("SSH_PORT", tuning.SSH.Port)
	tuning.SSH.HostKeyPath = config.GetEnv("SSH_HOST_KEY", tuning.SSH.HostKeyPath)

	logger, err := log.New(log.ParseLevel(tuning.LogLevel))
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defer logger.Sync()

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", log.Err(workErr))
	}
	logger.Info("ssh config",
		log.String("host", tuning.SSH.Host),
		log.String("port", tuning.SSH.Port),
		log.String("host_key_path", tuning.SSH.HostKeyPath),
		log.String("working_dir", workingDir),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	games := &gameHost{ctx: ctx, tuning: tuning, logger: logger}
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(tuning.SSH.Host, tuning.SSH.Port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if tuning.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(tuning.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return errors.Wrap(err, "create server")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", log.String("addr", s.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		// Sessions see ctx cancelled, show the shutdown notice and return.
		wctx, cancelWait := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelWait()
		games.wait(wctx)

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(sctx)
	})
	return g.Wait()
}

// gameHost runs one independent game per SSH session.
type gameHost struct {
	ctx    context.Context
	tuning config.Tuning
	logger log.Log

	mu      sync.Mutex
	active  int
	drained chan struct{} // closed when active drops to zero
}

// middleware handles SSH sessions and runs the game loop.
func (h *gameHost) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		h.begin()
		defer h.end()

		id := uuid.NewString()
		logger := h.logger.With(log.String("user", sess.User()))
		logger.Info("new game session",
			log.String("session", id),
			log.String("terminal", pty.Term),
			log.Int("width", pty.Window.Width),
			log.Int("height", pty.Window.Height),
		)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		err := loop.Run(h.ctx, bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc:   sizeTracker.getSize,
			Rand:           rng.FromPhrase(h.tuning.Seed),
			TickRate:       h.tuning.TickRate,
			IdleWarn:       loop.DefaultIdleWarn,
			IdleDisconnect: loop.DefaultIdleDisconnect,
			Session: loop.SessionOptions{
				ID:     id,
				Lives:  h.tuning.Lives,
				Logger: logger,
			},
		})
		if err != nil {
			logger.Error("game error", log.String("session", id), log.Err(err))
		}
		next(sess)
	}
}

// begin registers a running session.
func (h *gameHost) begin() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active == 0 {
		h.drained = make(chan struct{})
	}
	h.active++
}

// end marks a session as returned.
func (h *gameHost) end() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active--
	if h.active == 0 {
		close(h.drained)
	}
}

// wait blocks until every session has returned or ctx is done.
func (h *gameHost) wait(ctx context.Context) bool {
	h.mu.Lock()
	if h.active == 0 {
		h.mu.Unlock()
		return true
	}
	drained := h.drained
	h.mu.Unlock()

	select {
	case <-drained:
		return true
	case <-ctx.Done():
		h.logger.Warn("sessions still open at shutdown")
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
