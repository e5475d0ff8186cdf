package deck

import "fmt"

// Suit represents a card suit. Suits are cosmetic in War and never take part
// in comparisons.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the name of the suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph used by compact renderings
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is the comparable value of a card, 0 ("2") through 12 ("A").
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks and NumSuits describe the standard deck.
const (
	NumRanks = 13
	NumSuits = 4
	Size     = NumRanks * NumSuits
)

var rankLabels = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}

// String returns the single character label of a rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankLabels[r]
}

// Card is an immutable playing card
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the display label of a card (e.g., "T of hearts")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the compact form of a card (e.g., "T♥")
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Beats reports whether c outranks other.
func (c Card) Beats(other Card) bool {
	return c.Rank > other.Rank
}
