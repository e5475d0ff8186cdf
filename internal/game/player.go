package game

import (
	rand "math/rand/v2"

	"github.com/lox/warforbots/internal/deck"
)

// Player holds one side's cards: a face-down draw pile, the discard pile of
// won cards, and the active pile of cards in play this round.
type Player struct {
	side     Side
	rng      *rand.Rand
	drawPile *deck.Stack
	discard  *deck.Stack
	active   *deck.Stack
}

// NewPlayer creates a player with empty piles. rng shuffles the discard pile
// whenever it is recycled into the draw pile.
func NewPlayer(side Side, rng *rand.Rand) *Player {
	if rng == nil {
		panic("rng is required for player creation")
	}
	return &Player{
		side:     side,
		rng:      rng,
		drawPile: deck.NewStack(),
		discard:  deck.NewStack(),
		active:   deck.NewStack(),
	}
}

// RequestDraw moves n cards into the active pile, recycling the discard pile
// into the draw pile when the draw pile alone is short. When even that is not
// enough every remaining card goes into the active pile and Exhausted is
// returned.
func (p *Player) RequestDraw(n int) DrawResult {
	if p.drawPile.Len() >= n {
		p.active.Merge(p.drawPile.DrawN(n))
		return Drawn
	}

	p.discard.Shuffle(p.rng)
	p.drawPile.Merge(p.discard)

	if p.drawPile.Len() >= n {
		p.active.Merge(p.drawPile.DrawN(n))
		return Drawn
	}

	p.active.Merge(p.drawPile.DrawN(p.drawPile.Len()))
	return Exhausted
}

// Total returns the cards the player holds outside of play (draw pile plus
// discard). Cards in the active pile are not counted.
func (p *Player) Total() int {
	return p.drawPile.Len() + p.discard.Len()
}

// CollectWinnings moves a stack of won cards onto the discard pile
func (p *Player) CollectWinnings(s *deck.Stack) {
	p.discard.Merge(s)
}

// ReceiveDeal moves dealt cards onto the draw pile
func (p *Player) ReceiveDeal(s *deck.Stack) {
	p.drawPile.Merge(s)
}

// reclaimActive returns the player's own cards in play to their discard pile.
func (p *Player) reclaimActive() {
	p.discard.Merge(p.active)
}

// Side returns which player this is
func (p *Player) Side() Side { return p.side }

// DeckSize returns the number of cards in the draw pile
func (p *Player) DeckSize() int { return p.drawPile.Len() }

// DiscardSize returns the number of cards in the discard pile
func (p *Player) DiscardSize() int { return p.discard.Len() }

// ActiveSize returns the number of cards in play
func (p *Player) ActiveSize() int { return p.active.Len() }

// Active returns a copy of the cards in play, bottom first
func (p *Player) Active() []deck.Card { return p.active.Cards() }

// Top returns the card in play that decides the current comparison
func (p *Player) Top() (deck.Card, bool) { return p.active.Peek() }

// cards returns every card the player holds, for conservation checks.
func (p *Player) cards() []deck.Card {
	all := make([]deck.Card, 0, p.Total()+p.active.Len())
	all = append(all, p.drawPile.Cards()...)
	all = append(all, p.discard.Cards()...)
	all = append(all, p.active.Cards()...)
	return all
}
