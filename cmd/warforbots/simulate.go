package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/warforbots/internal/history"
	"github.com/lox/warforbots/internal/simulator"
)

type SimulateCmd struct {
	Games      int           `short:"n" help:"Number of games (overrides config)"`
	Workers    int           `help:"Worker goroutines (overrides config)"`
	RoundLimit int           `help:"Rounds before a game counts as unfinished (overrides config)"`
	Timeout    time.Duration `help:"Per game timeout (overrides config)"`
	HistoryDir string        `help:"Write a transcript of every game to this directory (overrides config)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	sc := simulator.Config{
		Games:      cfg.Simulate.Games,
		Seed:       g.seed(),
		Workers:    cfg.Simulate.Workers,
		RoundLimit: cfg.Simulate.RoundLimit,
		Timeout:    cfg.Timeout(),
		Logger:     logger,
	}
	if c.Games > 0 {
		sc.Games = c.Games
	}
	if c.Workers > 0 {
		sc.Workers = c.Workers
	}
	if c.RoundLimit > 0 {
		sc.RoundLimit = c.RoundLimit
	}
	if c.Timeout > 0 {
		sc.Timeout = c.Timeout
	}

	dir := cfg.History.Dir
	if c.HistoryDir != "" {
		dir = c.HistoryDir
	}
	if dir != "" {
		sc.History = history.NewFileWriter(dir)
	}

	fmt.Printf("Starting simulation: %d games (seed: %d)\n", sc.Games, sc.Seed)

	report, err := simulator.New(sc).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	simulator.PrintSummary(os.Stdout, report)
	return nil
}
