package simulator

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/warforbots/internal/deck"
	"github.com/lox/warforbots/internal/game"
	"github.com/lox/warforbots/internal/history"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNew(t *testing.T) {
	sim := New(Config{Games: 3, Seed: 12345, Workers: 16, Logger: quietLogger()})
	require.NotNil(t, sim)
	assert.Equal(t, 3, sim.config.Workers, "workers capped at games")
	assert.NotNil(t, sim.config.Clock)

	sim = New(Config{Games: 100})
	assert.GreaterOrEqual(t, sim.config.Workers, 1)
	assert.LessOrEqual(t, sim.config.Workers, 8)
}

func TestRun(t *testing.T) {
	sim := New(Config{
		Games:      40,
		Seed:       1,
		Workers:    4,
		RoundLimit: 5000,
		Logger:     quietLogger(),
	})

	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	stats := report.Stats

	assert.Equal(t, 40, stats.Games)
	assert.Equal(t, 4, report.Workers)
	assert.Equal(t, stats.Games, stats.Wins[0]+stats.Wins[1]+stats.Draws+stats.Unfinished)
	assert.Positive(t, stats.Mean())
	assert.Positive(t, stats.Wars, "forty games without a single war is implausible")
	require.NoError(t, stats.Validate())
}

func TestRunIsIndependentOfWorkerCount(t *testing.T) {
	run := func(workers int) [2]int {
		report, err := New(Config{Games: 24, Seed: 99, Workers: workers, RoundLimit: 3000, Logger: quietLogger()}).
			Run(context.Background())
		require.NoError(t, err)
		return report.Stats.Wins
	}
	assert.Equal(t, run(1), run(3))
}

func TestRunRoundLimit(t *testing.T) {
	report, err := New(Config{Games: 5, Seed: 7, Workers: 2, RoundLimit: 1, Logger: quietLogger()}).
		Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, report.Stats.Unfinished)
	assert.Equal(t, 1.0, report.Stats.Mean())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Games: 4, Seed: 1, Workers: 2, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsNoGames(t *testing.T) {
	_, err := New(Config{Games: 0}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunElapsedUsesClock(t *testing.T) {
	mock := quartz.NewMock(t)
	report, err := New(Config{Games: 2, Seed: 1, Workers: 1, RoundLimit: 10, Clock: mock, Logger: quietLogger()}).
		Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), report.Elapsed, "mock clock never advanced")
}

func TestRunWritesTranscripts(t *testing.T) {
	dir := t.TempDir()
	_, err := New(Config{
		Games:      3,
		Seed:       5,
		Workers:    1,
		RoundLimit: 20,
		Logger:     quietLogger(),
		History:    history.NewFileWriter(dir),
	}).Run(context.Background())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestSummarize(t *testing.T) {
	g := game.New(game.WithSeed(1), game.WithHands(
		deck.MustParseCards("5h 2c3c4cKh 9c"),
		deck.MustParseCards("5d 2d3d4dQs"),
	))
	g.PlayToEnd(0)

	result := Summarize(g)
	assert.True(t, result.Finished)
	assert.Equal(t, game.Player1, result.Winner)
	assert.Equal(t, 2, result.Rounds)
	assert.Equal(t, 1, result.Wars)
	assert.Equal(t, 1, result.WarRounds)
	assert.Equal(t, 1, result.MaxWarDepth)
	assert.Equal(t, int64(1), result.Seed)
}

func TestPrintSummary(t *testing.T) {
	report, err := New(Config{Games: 4, Seed: 3, Workers: 2, RoundLimit: 2000, Logger: quietLogger()}).
		Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, report)
	out := buf.String()
	assert.Contains(t, out, "=== RESULTS (4 games, 2 workers")
	assert.Contains(t, out, "Player 1 wins:")
	assert.Contains(t, out, "=== WARS ===")
}
