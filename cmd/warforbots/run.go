package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/warforbots/internal/game"
	"github.com/lox/warforbots/internal/history"
	"github.com/lox/warforbots/internal/tui"
)

type RunCmd struct {
	Rounds     int    `help:"Stop after this many rounds (0 plays to the end)"`
	HistoryDir string `help:"Write a transcript of the game to this directory (overrides config)"`
	Pile       bool   `help:"Show every card in play, not just the compared ones"`
	Compact    bool   `help:"Short card labels"`
}

func (c *RunCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	opts := game.FormattingOptions{Compact: c.Compact, ShowPile: c.Pile}
	if c.Compact && !g.NoColor {
		opts.Style = tui.StyleCard
	}
	formatter := game.NewFormatter(opts)

	started := time.Now()
	war := game.New(
		game.WithSeed(g.seed()),
		game.WithLogger(logger),
		game.WithSubscriber(game.NewLogSubscriber(logger)),
		game.WithSubscriber(game.EventSubscriberFunc(func(e game.GameEvent) {
			if ev, ok := e.(game.RoundEndEvent); ok {
				fmt.Println(formatter.FormatRecord(ev.Record))
			}
		})),
	)

	for !war.IsOver() && (c.Rounds <= 0 || war.Round() < c.Rounds) {
		if err := ctx.Err(); err != nil {
			break
		}
		war.PlayRound()
	}

	fmt.Println()
	fmt.Println(formatter.FormatResult(war.Snapshot()))

	dir := cfg.History.Dir
	if c.HistoryDir != "" {
		dir = c.HistoryDir
	}
	if dir != "" {
		if err := history.NewFileWriter(dir).Write(history.NewTranscript(war, started)); err != nil {
			return err
		}
		logger.Info("Wrote transcript", "dir", dir, "id", war.ID())
	}
	return nil
}
