package game

import (
	"fmt"
	"strings"

	"github.com/lox/warforbots/internal/deck"
)

// FormattingOptions controls how records are rendered
type FormattingOptions struct {
	Compact  bool                   // Use short card labels ("T♥") instead of "T of hearts"
	ShowPile bool                   // List every card in play, not just the compared ones
	Style    func(deck.Card) string // Optional card renderer, e.g. for terminal colours
}

// Formatter renders round records as human readable lines. The CLI, the TUI
// log pane and transcripts share it.
type Formatter struct {
	opts FormattingOptions
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(opts FormattingOptions) *Formatter {
	return &Formatter{opts: opts}
}

// FormatRecord formats a single round
func (f *Formatter) FormatRecord(rec RoundRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d: %s vs %s", rec.Number,
		f.formatSide(rec, Player1), f.formatSide(rec, Player2))

	if rec.Wars > 0 {
		if rec.Wars == 1 {
			b.WriteString(" after 1 war")
		} else {
			fmt.Fprintf(&b, " after %d wars", rec.Wars)
		}
	}

	switch rec.Outcome {
	case OutcomeWin:
		fmt.Fprintf(&b, " -> %s wins", rec.Winner)
	case OutcomeExhaustion:
		fmt.Fprintf(&b, " -> %s runs out, %s wins the game", rec.Winner.Opponent(), rec.Winner)
	case OutcomeDoubleExhaustion:
		b.WriteString(" -> both players run out, game drawn")
	case OutcomeStalemate:
		b.WriteString(" -> stalemate, cards returned")
	}

	fmt.Fprintf(&b, " (%d / %d)", rec.Totals[0], rec.Totals[1])
	return b.String()
}

// FormatLog formats a whole game log, one round per line
func (f *Formatter) FormatLog(records []RoundRecord) string {
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = f.FormatRecord(rec)
	}
	return strings.Join(lines, "\n")
}

// FormatResult summarises a finished or abandoned game
func (f *Formatter) FormatResult(snap Snapshot) string {
	if snap.State != Over {
		return fmt.Sprintf("Game %s unfinished after %d rounds (%d / %d)",
			snap.ID, snap.Round, snap.Players[0].Total(), snap.Players[1].Total())
	}
	if snap.Winner == NoSide {
		return fmt.Sprintf("Game %s drawn after %d rounds", snap.ID, snap.Round)
	}
	return fmt.Sprintf("Game %s won by %s after %d rounds", snap.ID, snap.Winner, snap.Round)
}

func (f *Formatter) formatSide(rec RoundRecord, side Side) string {
	cards := rec.ActiveOf(side)
	if len(cards) == 0 {
		return fmt.Sprintf("%s [-]", side)
	}
	if !f.opts.ShowPile {
		cards = cards[len(cards)-1:]
	}
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = f.formatCard(c)
	}
	return fmt.Sprintf("%s [%s]", side, strings.Join(labels, " "))
}

func (f *Formatter) formatCard(c deck.Card) string {
	if f.opts.Style != nil {
		return f.opts.Style(c)
	}
	if f.opts.Compact {
		return c.Short()
	}
	return c.String()
}
