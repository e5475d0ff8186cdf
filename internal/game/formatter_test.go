package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/warforbots/internal/deck"
)

func TestFormatRecord(t *testing.T) {
	f := NewFormatter(FormattingOptions{})

	tests := []struct {
		name string
		rec  RoundRecord
		want string
	}{
		{
			name: "outright win",
			rec: RoundRecord{
				Number: 1,
				Active: [2][]deck.Card{hand("Ah"), hand("Kd")},
				Totals: [2]int{27, 25},
				Winner: Player1,
			},
			want: "Round 1: Player 1 [A of hearts] vs Player 2 [K of diamonds] -> Player 1 wins (27 / 25)",
		},
		{
			name: "war",
			rec: RoundRecord{
				Number: 7,
				Active: [2][]deck.Card{hand("5h2c3c4c9h"), hand("5d2d3d4dJs")},
				Totals: [2]int{20, 32},
				Winner: Player2,
				Wars:   1,
			},
			want: "Round 7: Player 1 [9 of hearts] vs Player 2 [J of spades] after 1 war -> Player 2 wins (20 / 32)",
		},
		{
			name: "exhaustion",
			rec: RoundRecord{
				Number:  40,
				Active:  [2][]deck.Card{hand("Ah"), nil},
				Totals:  [2]int{52, 0},
				Winner:  Player1,
				Outcome: OutcomeExhaustion,
			},
			want: "Round 40: Player 1 [A of hearts] vs Player 2 [-] -> Player 2 runs out, Player 1 wins the game (52 / 0)",
		},
		{
			name: "double exhaustion",
			rec: RoundRecord{
				Number:  3,
				Active:  [2][]deck.Card{hand("5h2c"), hand("5d2d")},
				Totals:  [2]int{2, 2},
				Outcome: OutcomeDoubleExhaustion,
				Wars:    1,
			},
			want: "Round 3: Player 1 [2 of clubs] vs Player 2 [2 of diamonds] after 1 war -> both players run out, game drawn (2 / 2)",
		},
		{
			name: "stalemate",
			rec: RoundRecord{
				Number:  9,
				Active:  [2][]deck.Card{hand("9h"), hand("9d")},
				Totals:  [2]int{26, 26},
				Outcome: OutcomeStalemate,
				Wars:    100,
			},
			want: "Round 9: Player 1 [9 of hearts] vs Player 2 [9 of diamonds] after 100 wars -> stalemate, cards returned (26 / 26)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatRecord(tt.rec))
		})
	}
}

func TestFormatRecordCompactPile(t *testing.T) {
	f := NewFormatter(FormattingOptions{Compact: true, ShowPile: true})
	rec := RoundRecord{
		Number: 2,
		Active: [2][]deck.Card{hand("5h2c"), hand("5dKs")},
		Totals: [2]int{1, 3},
		Winner: Player2,
		Wars:   1,
	}
	assert.Equal(t, "Round 2: Player 1 [5♥ 2♣] vs Player 2 [5♦ K♠] after 1 war -> Player 2 wins (1 / 3)", f.FormatRecord(rec))
}

func TestFormatRecordStyle(t *testing.T) {
	f := NewFormatter(FormattingOptions{Style: func(c deck.Card) string { return "<" + c.Short() + ">" }})
	rec := RoundRecord{Number: 1, Active: [2][]deck.Card{hand("Ah"), hand("Kd")}, Winner: Player1}
	assert.Contains(t, f.FormatRecord(rec), "[<A♥>]")
}

func TestFormatLogAndResult(t *testing.T) {
	g := riggedGame("Ah2c", "Kd", WithID("abc"))
	f := NewFormatter(FormattingOptions{})

	assert.Equal(t, "Game abc unfinished after 0 rounds (2 / 1)", f.FormatResult(g.Snapshot()))

	g.PlayToEnd(0)
	lines := strings.Split(f.FormatLog(g.Log()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Game abc won by Player 1 after 2 rounds", f.FormatResult(g.Snapshot()))

	drawn := riggedGame("", "", WithID("xyz"))
	drawn.PlayRound()
	assert.Equal(t, "Game xyz drawn after 1 rounds", f.FormatResult(drawn.Snapshot()))
}
