// Package game implements the card game War for two players.
//
// The main type is Game, which deals a shuffled 52-card deck 26/26 on
// construction and resolves rounds until one player cannot draw the cards a
// round asks for.
//
// # Basic Usage
//
//	g := game.New(game.WithSeed(42))
//	g.PlayRounds(1)
//	if g.IsOver() {
//	    fmt.Println("winner:", g.Winner())
//	}
//	for _, rec := range g.Log() {
//	    fmt.Println(rec.Number, rec.Winner, rec.Totals)
//	}
//
// # Deterministic Testing
//
// Every shuffle, the initial deal and every discard reshuffle, draws from a
// single RNG derived from the game seed, so the same seed replays the same
// game. Rigged games skip the initial shuffle:
//
//	g := game.New(game.WithHands(
//	    deck.MustParseCards("Ah2c"), // Player 1, top card first
//	    deck.MustParseCards("Kd3c"), // Player 2, top card first
//	))
//
// # Rules
//
// Each round both players turn over one card and the higher rank takes both.
// Equal ranks start a war: both players add four more cards and the fourth
// card decides; another tie repeats the war, up to MaxWarIterations times. A
// war that never resolves is a stalemate and both players take their own cards
// back. A player who cannot supply the cards a round asks for loses the game;
// if both fail on the same draw the game is drawn.
//
// Players refill their deck from a reshuffled discard pile as needed. The
// cards a player has in play sit in their active pile until the round is
// resolved.
package game
