package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/mousany/dawn-breaker/internal/config"
	"github.com/mousany/dawn-breaker/internal/log"
	"github.com/mousany/dawn-breaker/internal/loop"
	"github.com/mousany/dawn-breaker/internal/rng"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dawn-breaker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	// Logs go to a file only; stdout is the game screen.
	var logger log.Log = log.Nop()
	if tuning.LogFile != "" {
		l, err := log.New(log.ParseLevel(tuning.LogLevel), tuning.LogFile)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer l.Sync()
		logger = l
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "enable raw mode")
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	seed := rng.SeedFromPhrase(tuning.Seed)
	logger.Info("starting local game", log.Uint64("seed", seed))

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Rand:     rng.New(seed),
		TickRate: tuning.TickRate,
		Session: loop.SessionOptions{
			Lives:  tuning.Lives,
			Logger: logger,
		},
	})
	if err != nil {
		logger.Error("game error", log.Err(err))
		return errors.Wrap(err, "game error")
	}
	return nil
}
