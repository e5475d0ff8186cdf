package game

import "github.com/lox/warforbots/internal/deck"

// RoundRecord is the immutable log entry for one round.
type RoundRecord struct {
	Number int `json:"number"`
	// Active holds each player's cards in play when the round was decided,
	// bottom first; the last card is the one that was compared.
	Active [2][]deck.Card `json:"active"`
	// Totals holds each player's deck plus discard after the cards in play
	// were collected.
	Totals  [2]int  `json:"totals"`
	Winner  Side    `json:"winner"`
	Outcome Outcome `json:"outcome"`
	Wars    int     `json:"wars"`
}

// ActiveOf returns the cards side had in play
func (r RoundRecord) ActiveOf(side Side) []deck.Card {
	return r.Active[side.index()]
}

// TotalOf returns side's card count after the round
func (r RoundRecord) TotalOf(side Side) int {
	return r.Totals[side.index()]
}

// Decider returns the compared card for side, if it had any in play.
func (r RoundRecord) Decider(side Side) (deck.Card, bool) {
	cards := r.ActiveOf(side)
	if len(cards) == 0 {
		return deck.Card{}, false
	}
	return cards[len(cards)-1], true
}

func (r RoundRecord) clone() RoundRecord {
	out := r
	for i := range r.Active {
		out.Active[i] = append([]deck.Card(nil), r.Active[i]...)
	}
	return out
}

// PlayerView is a read-only summary of one player's piles.
type PlayerView struct {
	Side    Side `json:"side"`
	Deck    int  `json:"deck"`
	Discard int  `json:"discard"`
	Active  int  `json:"active"`
}

// Total returns deck plus discard
func (v PlayerView) Total() int { return v.Deck + v.Discard }

// Snapshot is everything a display layer needs between rounds.
type Snapshot struct {
	ID          string        `json:"id"`
	Seed        int64         `json:"seed"`
	Round       int           `json:"round"`
	RoundWinner Side          `json:"round_winner"`
	Winner      Side          `json:"winner"`
	State       State         `json:"-"`
	Players     [2]PlayerView `json:"players"`
	Last        *RoundRecord  `json:"last,omitempty"`
}
