package main

import (
	"fmt"
	"os"

	"github.com/lox/warforbots/internal/game"
	"github.com/lox/warforbots/internal/tui"
)

type PlayCmd struct {
	LogFile string `help:"Log file path (overrides config)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}

	// The terminal belongs to the TUI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := newLogger(logFile, cfg)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := g.seed()
	logger.Info("Starting interactive game", "seed", seed, "config", g.Config)

	next := seed
	model := tui.New(tui.Config{
		NewGame: func() *game.Game {
			s := next
			next++
			return game.New(
				game.WithSeed(s),
				game.WithLogger(logger),
				game.WithSubscriber(game.NewLogSubscriber(logger)),
			)
		},
		Logger:   logger,
		Interval: cfg.Interval(),
		Batch:    cfg.Play.Batch,
	})

	if err := tui.Run(ctx, model); err != nil && ctx.Err() == nil {
		logger.Error("TUI exited with error", "error", err)
		return err
	}
	return nil
}
