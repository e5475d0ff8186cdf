package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/warforbots/internal/game"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	ID          string    // Game identifier
	Seed        int64     // RNG seed for this game (for replay)
	Winner      game.Side // Winner, NoSide for draws and unfinished games
	Finished    bool      // False when the round limit stopped the game
	Rounds      int       // Rounds played
	Wars        int       // War iterations across all rounds
	WarRounds   int       // Rounds that needed at least one war
	MaxWarDepth int       // Most wars in a single round
	Stalemates  int       // Rounds that hit the war limit
}

// Statistics aggregates simulated games
type Statistics struct {
	Games      int
	Wins       [2]int // Indexed by side: 0 = Player 1, 1 = Player 2
	Draws      int    // Finished without a winner (double exhaustion)
	Unfinished int    // Stopped by the round limit

	SumRounds  float64
	SumRounds2 float64   // Sum of squares for variance calculation
	Values     []float64 // Rounds per game, for median/percentile calculation

	Wars        int
	WarRounds   int
	MaxWarDepth int
	Stalemates  int

	LongestGame  GameResult
	ShortestGame GameResult
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	rounds := float64(result.Rounds)
	s.Games++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)

	switch {
	case !result.Finished:
		s.Unfinished++
	case result.Winner == game.Player1:
		s.Wins[0]++
	case result.Winner == game.Player2:
		s.Wins[1]++
	default:
		s.Draws++
	}

	s.Wars += result.Wars
	s.WarRounds += result.WarRounds
	s.Stalemates += result.Stalemates
	if result.MaxWarDepth > s.MaxWarDepth {
		s.MaxWarDepth = result.MaxWarDepth
	}

	if s.Games == 1 || result.Rounds > s.LongestGame.Rounds {
		s.LongestGame = result
	}
	if s.Games == 1 || result.Rounds < s.ShortestGame.Rounds {
		s.ShortestGame = result
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if other == nil || other.Games == 0 {
		return
	}
	if s.Games == 0 || other.LongestGame.Rounds > s.LongestGame.Rounds {
		s.LongestGame = other.LongestGame
	}
	if s.Games == 0 || other.ShortestGame.Rounds < s.ShortestGame.Rounds {
		s.ShortestGame = other.ShortestGame
	}
	s.Games += other.Games
	s.Wins[0] += other.Wins[0]
	s.Wins[1] += other.Wins[1]
	s.Draws += other.Draws
	s.Unfinished += other.Unfinished
	s.SumRounds += other.SumRounds
	s.SumRounds2 += other.SumRounds2
	s.Values = append(s.Values, other.Values...)
	s.Wars += other.Wars
	s.WarRounds += other.WarRounds
	s.Stalemates += other.Stalemates
	if other.MaxWarDepth > s.MaxWarDepth {
		s.MaxWarDepth = other.MaxWarDepth
	}
}

// WinRate returns the share of all games won by side
func (s *Statistics) WinRate(side game.Side) float64 {
	if s.Games == 0 {
		return 0
	}
	switch side {
	case game.Player1:
		return float64(s.Wins[0]) / float64(s.Games)
	case game.Player2:
		return float64(s.Wins[1]) / float64(s.Games)
	default:
		return float64(s.Draws) / float64(s.Games)
	}
}

// Mean returns the mean number of rounds per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Games)
}

// Variance returns the sample variance of rounds per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of rounds per game
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median number of rounds per game
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate checks that the tallies add up
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if total := s.Wins[0] + s.Wins[1] + s.Draws + s.Unfinished; total != s.Games {
		return fmt.Errorf("ledger mismatch: wins %d+%d, draws %d, unfinished %d != games %d",
			s.Wins[0], s.Wins[1], s.Draws, s.Unfinished, s.Games)
	}
	if s.WarRounds > s.Wars {
		return fmt.Errorf("war rounds (%d) exceed wars (%d)", s.WarRounds, s.Wars)
	}
	return nil
}
