package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/warforbots/internal/game"
	"github.com/lox/warforbots/internal/history"
	"github.com/lox/warforbots/internal/statistics"
)

// cancellation is checked every this many rounds
const checkEvery = 64

// Config holds configuration for running simulations
type Config struct {
	Games      int
	Seed       int64
	Workers    int           // 0 uses runtime.NumCPU, capped at 8
	RoundLimit int           // Rounds after which a game counts as unfinished; 0 for no limit
	Timeout    time.Duration // Per game; 0 for no timeout
	Logger     *log.Logger
	Clock      quartz.Clock   // Defaults to the real clock
	History    history.Writer // Optional transcript sink
}

// Report is the outcome of a simulation run
type Report struct {
	Stats   *statistics.Statistics
	Elapsed time.Duration
	Workers int
}

// Simulator plays many independent games of War
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
		if config.Workers > 8 {
			config.Workers = 8
		}
	}
	if config.Workers > config.Games && config.Games > 0 {
		config.Workers = config.Games
	}
	config.Logger = config.Logger.WithPrefix("sim")
	return &Simulator{config: config}
}

// Run plays Games games with seeds Seed, Seed+1, ... spread over the workers.
// Every game is owned by a single worker for its whole life.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}

	start := s.config.Clock.Now()
	s.config.Logger.Info("Starting simulation",
		"games", s.config.Games,
		"seed", s.config.Seed,
		"workers", s.config.Workers,
		"round_limit", s.config.RoundLimit)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := w; i < s.config.Games; i += s.config.Workers {
				result, err := s.playGame(ctx, s.config.Seed+int64(i))
				if err != nil {
					return err
				}
				stats.Add(result)
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	s.config.Logger.Info("Simulation complete", "games", total.Games, "elapsed", elapsed)
	return &Report{Stats: total, Elapsed: elapsed, Workers: s.config.Workers}, nil
}

// playGame plays one game to the end, the round limit or the timeout
func (s *Simulator) playGame(ctx context.Context, seed int64) (statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	opts := []game.Option{game.WithSeed(seed)}
	// Per game logs only at debug level, batch runs would drown otherwise.
	if s.config.Logger.GetLevel() <= log.DebugLevel {
		opts = append(opts, game.WithLogger(s.config.Logger))
	}

	started := s.config.Clock.Now()
	g := game.New(opts...)

	for !g.IsOver() && (s.config.RoundLimit <= 0 || g.Round() < s.config.RoundLimit) {
		if g.Round()%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return statistics.GameResult{}, fmt.Errorf("game with seed %d stopped after %d rounds: %w", seed, g.Round(), err)
			}
		}
		g.PlayRound()
	}

	if s.config.History != nil {
		if err := s.config.History.Write(history.NewTranscript(g, started)); err != nil {
			return statistics.GameResult{}, fmt.Errorf("failed to write transcript for seed %d: %w", seed, err)
		}
	}

	return Summarize(g), nil
}

// Summarize reduces a game to its statistics record
func Summarize(g *game.Game) statistics.GameResult {
	result := statistics.GameResult{
		ID:       g.ID(),
		Seed:     g.Seed(),
		Winner:   g.Winner(),
		Finished: g.IsOver(),
		Rounds:   g.Round(),
	}
	for _, rec := range g.Log() {
		result.Wars += rec.Wars
		if rec.Wars > 0 {
			result.WarRounds++
		}
		if rec.Wars > result.MaxWarDepth {
			result.MaxWarDepth = rec.Wars
		}
		if rec.Outcome == game.OutcomeStalemate {
			result.Stalemates++
		}
	}
	return result
}

// PrintSummary writes a human readable summary of a report
func PrintSummary(w io.Writer, report *Report) {
	stats := report.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS (%d games, %d workers, %v) ===\n", stats.Games, report.Workers, report.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Player 1 wins: %d (%.1f%%)\n", stats.Wins[0], stats.WinRate(game.Player1)*100)
	fmt.Fprintf(w, "Player 2 wins: %d (%.1f%%)\n", stats.Wins[1], stats.WinRate(game.Player2)*100)
	fmt.Fprintf(w, "Draws: %d, unfinished: %d\n", stats.Draws, stats.Unfinished)

	fmt.Fprintf(w, "\n=== GAME LENGTH (rounds) ===\n")
	fmt.Fprintf(w, "Mean: %.1f  Median: %.1f  Std Dev: %.1f\n", stats.Mean(), stats.Median(), stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.1f, %.1f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Shortest: %d rounds (seed %d), longest: %d rounds (seed %d)\n",
		stats.ShortestGame.Rounds, stats.ShortestGame.Seed, stats.LongestGame.Rounds, stats.LongestGame.Seed)

	fmt.Fprintf(w, "\n=== WARS ===\n")
	fmt.Fprintf(w, "Total wars: %d in %d rounds, deepest: %d, stalemates: %d\n",
		stats.Wars, stats.WarRounds, stats.MaxWarDepth, stats.Stalemates)
}
