package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/warforbots/internal/deck"
	"github.com/lox/warforbots/internal/gameid"
	"github.com/lox/warforbots/internal/randutil"
)

// Option configures a Game during creation.
type Option func(*config)

type config struct {
	seed        *int64
	id          string
	order       []deck.Card     // pre-arranged deck, dealt without shuffling
	hands       *[2][]deck.Card // per-player draw piles, top card first
	logger      *log.Logger
	subscribers []EventSubscriber
}

// WithSeed makes the game reproducible from seed
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = &seed }
}

// WithID overrides the generated game ID
func WithID(id string) Option {
	return func(c *config) { c.id = id }
}

// WithDeck deals cards in the given order instead of a shuffled standard
// deck. The last card is the top of the deck; Player 1 receives the top half.
func WithDeck(cards []deck.Card) Option {
	order := append([]deck.Card(nil), cards...)
	return func(c *config) { c.order = order }
}

// WithHands gives each player an exact draw pile, listed top card first.
// Hands may have any size, including empty.
func WithHands(player1, player2 []deck.Card) Option {
	hands := [2][]deck.Card{
		append([]deck.Card(nil), player1...),
		append([]deck.Card(nil), player2...),
	}
	return func(c *config) { c.hands = &hands }
}

// WithLogger sets the logger for round level debug output
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithSubscriber registers an event subscriber before the first round
func WithSubscriber(sub EventSubscriber) Option {
	return func(c *config) { c.subscribers = append(c.subscribers, sub) }
}

func (c *config) resolve() {
	if c.logger == nil {
		c.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if c.id == "" {
		c.id = gameid.Generate()
	}
	if c.seed == nil {
		seed := randutil.ResolveSeed(nil)
		c.seed = &seed
	}
}

func (c *config) validate() {
	if c.order != nil && c.hands != nil {
		panic("WithDeck and WithHands are mutually exclusive")
	}
	var all []deck.Card
	switch {
	case c.order != nil:
		all = c.order
	case c.hands != nil:
		all = append(append(all, c.hands[0]...), c.hands[1]...)
	}
	if dups := deck.Duplicates(all); len(dups) > 0 {
		panic(fmt.Sprintf("duplicate cards in rigged deal: %v", dups))
	}
}
