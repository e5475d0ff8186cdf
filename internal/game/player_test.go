package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/warforbots/internal/deck"
	"github.com/lox/warforbots/internal/randutil"
)

func newTestPlayer(t *testing.T, drawPile, discard string) *Player {
	t.Helper()
	p := NewPlayer(Player1, randutil.New(1))
	p.ReceiveDeal(deck.NewStack(deck.MustParseCards(drawPile)...))
	p.CollectWinnings(deck.NewStack(deck.MustParseCards(discard)...))
	return p
}

func TestPlayerRequestDraw(t *testing.T) {
	t.Run("draws from the deck when it is deep enough", func(t *testing.T) {
		p := newTestPlayer(t, "2h3h4h", "5c")

		require.Equal(t, Drawn, p.RequestDraw(2))
		assert.Equal(t, 1, p.DeckSize())
		assert.Equal(t, 1, p.DiscardSize(), "discard untouched")
		assert.Equal(t, 2, p.ActiveSize())
		assert.Equal(t, deck.MustParseCards("4h3h"), p.Active())
	})

	t.Run("recycles the discard when the deck is short", func(t *testing.T) {
		p := newTestPlayer(t, "2h", "5c6c7c")

		require.Equal(t, Drawn, p.RequestDraw(2))
		assert.Equal(t, 0, p.DiscardSize())
		assert.Equal(t, 2, p.DeckSize())
		assert.Equal(t, 2, p.ActiveSize())
		assert.Equal(t, 2, p.Total())
	})

	t.Run("drains everything when exhausted", func(t *testing.T) {
		p := newTestPlayer(t, "2h", "5c")

		require.Equal(t, Exhausted, p.RequestDraw(4))
		assert.Equal(t, 0, p.Total())
		assert.Equal(t, 0, p.DeckSize())
		assert.Equal(t, 0, p.DiscardSize())
		assert.ElementsMatch(t, deck.MustParseCards("2h5c"), p.Active())
	})

	t.Run("empty player is exhausted on a single card", func(t *testing.T) {
		p := newTestPlayer(t, "", "")

		assert.Equal(t, Exhausted, p.RequestDraw(1))
		assert.Equal(t, 0, p.ActiveSize())
	})

	t.Run("exact fit is not exhaustion", func(t *testing.T) {
		p := newTestPlayer(t, "2h3h", "4h5h")

		assert.Equal(t, Drawn, p.RequestDraw(4))
		assert.Equal(t, 0, p.Total())
		assert.Equal(t, 4, p.ActiveSize())
	})
}

func TestPlayerTotalExcludesActive(t *testing.T) {
	p := newTestPlayer(t, "2h3h4h", "5c")
	require.Equal(t, 4, p.Total())

	p.RequestDraw(1)
	assert.Equal(t, 3, p.Total())
	assert.Len(t, p.cards(), 4)

	p.reclaimActive()
	assert.Equal(t, 4, p.Total())
	assert.Equal(t, 0, p.ActiveSize())
}

func TestPlayerCollectWinnings(t *testing.T) {
	p := newTestPlayer(t, "2h", "")
	won := deck.NewStack(deck.MustParseCards("AsKs")...)

	p.CollectWinnings(won)
	assert.Equal(t, 2, p.DiscardSize())
	assert.True(t, won.IsEmpty())
}

func TestNewPlayerRequiresRNG(t *testing.T) {
	assert.Panics(t, func() { NewPlayer(Player1, nil) })
}
