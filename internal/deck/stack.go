package deck

import rand "math/rand/v2"

// Stack is an ordered pile of cards. The last element is the top of the pile
// and the next card to be drawn.
//
// Cards move between stacks, never get copied: Merge and DrawN transfer
// ownership, so the total number of cards across a set of stacks only changes
// through Push.
type Stack struct {
	cards []Card
}

// NewStack creates a stack holding cards, the last argument on top.
func NewStack(cards ...Card) *Stack {
	s := &Stack{cards: make([]Card, 0, len(cards))}
	s.cards = append(s.cards, cards...)
	return s
}

// Shuffle permutes the stack in place with an unbiased Fisher-Yates pass.
func (s *Stack) Shuffle(rng *rand.Rand) {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Peek returns the top card without removing it
func (s *Stack) Peek() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[len(s.cards)-1], true
}

// Draw removes and returns the top card
func (s *Stack) Draw() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	top := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return top, true
}

// DrawN draws up to n cards one at a time and returns them as a new stack.
// Each drawn card is placed on top of the result, so the card that was n-th
// from the top ends up on top. Fewer than n cards are returned when the stack
// runs out.
func (s *Stack) DrawN(n int) *Stack {
	if n > len(s.cards) {
		n = len(s.cards)
	}
	if n < 0 {
		n = 0
	}
	drawn := &Stack{cards: make([]Card, 0, n)}
	for i := 0; i < n; i++ {
		card, ok := s.Draw()
		if !ok {
			break
		}
		drawn.cards = append(drawn.cards, card)
	}
	return drawn
}

// Push places cards on top of the stack, the last argument on top.
func (s *Stack) Push(cards ...Card) {
	s.cards = append(s.cards, cards...)
}

// Merge moves every card of other on top of s, keeping their order, and
// leaves other empty. Merging a stack into itself or merging nil does nothing.
func (s *Stack) Merge(other *Stack) {
	if other == nil || other == s {
		return
	}
	s.cards = append(s.cards, other.cards...)
	other.cards = nil
}

// Len returns the number of cards in the stack
func (s *Stack) Len() int {
	return len(s.cards)
}

// IsEmpty returns true if the stack holds no cards
func (s *Stack) IsEmpty() bool {
	return len(s.cards) == 0
}

// Cards returns a copy of the stack contents, bottom first.
func (s *Stack) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}
