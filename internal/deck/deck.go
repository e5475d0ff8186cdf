package deck

// Standard returns the 52 cards of a standard deck, rank-major: the four twos
// first and the four aces last.
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for rank := Two; rank <= Ace; rank++ {
		for suit := Hearts; suit <= Spades; suit++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// NewStandardStack returns an unshuffled stack holding a standard deck.
func NewStandardStack() *Stack {
	return NewStack(Standard()...)
}

// Duplicates returns every card that appears more than once in cards.
func Duplicates(cards []Card) []Card {
	seen := make(map[Card]int, len(cards))
	var dups []Card
	for _, c := range cards {
		seen[c]++
		if seen[c] == 2 {
			dups = append(dups, c)
		}
	}
	return dups
}
