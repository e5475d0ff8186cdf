package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/warforbots/internal/deck"
	"github.com/lox/warforbots/internal/randutil"
)

const (
	// HandSize is the number of cards each player is dealt.
	HandSize = deck.Size / 2
	// WarCards is the number of cards each player adds per war.
	WarCards = 4
	// MaxWarIterations bounds consecutive wars within one round.
	MaxWarIterations = 100
)

// Game is a single game of War between two players. A Game is not safe for
// concurrent use; callers play rounds and read state from one goroutine.
type Game struct {
	id     string
	seed   int64
	rng    *rand.Rand
	logger *log.Logger
	bus    EventBus

	players [2]*Player
	cards   int // cards in the game, 52 unless rigged

	round       int
	roundWinner Side
	winner      Side
	state       State
	log         []RoundRecord

	warLimit int
}

// New creates a game and deals the cards. Without options the deck is a
// shuffled standard deck split 26/26 and the seed is time based.
func New(opts ...Option) *Game {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.validate()
	cfg.resolve()

	g := &Game{
		id:       cfg.id,
		seed:     *cfg.seed,
		rng:      randutil.New(*cfg.seed),
		logger:   cfg.logger.WithPrefix("war"),
		bus:      NewEventBus(),
		warLimit: MaxWarIterations,
	}
	for _, sub := range cfg.subscribers {
		g.bus.Subscribe(sub)
	}
	g.players[0] = NewPlayer(Player1, g.rng)
	g.players[1] = NewPlayer(Player2, g.rng)

	switch {
	case cfg.hands != nil:
		for i, hand := range cfg.hands {
			pile := deck.NewStack()
			for j := len(hand) - 1; j >= 0; j-- {
				pile.Push(hand[j])
			}
			g.cards += pile.Len()
			g.players[i].ReceiveDeal(pile)
		}
	case cfg.order != nil:
		g.deal(deck.NewStack(cfg.order...))
	default:
		shoe := deck.NewStandardStack()
		shoe.Shuffle(g.rng)
		g.deal(shoe)
	}

	g.logger.Debug("Dealt new game",
		"id", g.id,
		"seed", g.seed,
		"p1", g.players[0].Total(),
		"p2", g.players[1].Total())
	return g
}

// deal splits shoe between the players, Player 1 taking the top half.
func (g *Game) deal(shoe *deck.Stack) {
	g.cards = shoe.Len()
	half := shoe.Len() / 2
	g.players[0].ReceiveDeal(shoe.DrawN(half))
	g.players[1].ReceiveDeal(shoe.DrawN(shoe.Len()))
}

// PlayRound plays one round. It returns false, and does nothing, once the
// game is over.
func (g *Game) PlayRound() (RoundRecord, bool) {
	if g.state == Over {
		return RoundRecord{}, false
	}

	g.round++
	g.roundWinner = NoSide

	if rec, ended := g.drawAll(1, 0); ended {
		return rec, true
	}

	wars := 0
	winner := g.compare()
	for winner == NoSide {
		if wars >= g.warLimit {
			g.logger.Warn("War limit reached, round is a stalemate", "round", g.round, "wars", wars)
			return g.resolve(NoSide, OutcomeStalemate, wars), true
		}
		wars++
		g.bus.Publish(NewWarEvent(g.id, g.round, wars))

		if rec, ended := g.drawAll(WarCards, wars); ended {
			return rec, true
		}
		winner = g.compare()
	}

	return g.resolve(winner, OutcomeWin, wars), true
}

// PlayRounds plays up to n rounds, stopping early when the game ends, and
// returns the number of rounds played.
func (g *Game) PlayRounds(n int) int {
	played := 0
	for ; played < n && g.state != Over; played++ {
		g.PlayRound()
	}
	return played
}

// PlayToEnd plays until the game is over or limit rounds have been played in
// total. A limit of zero or less means no limit.
func (g *Game) PlayToEnd(limit int) {
	for g.state != Over && (limit <= 0 || g.round < limit) {
		g.PlayRound()
	}
}

// drawAll asks both players for n cards. Both players always attempt the
// draw, so an exhausted player's last cards are in play for the record.
func (g *Game) drawAll(n, wars int) (RoundRecord, bool) {
	r1 := g.players[0].RequestDraw(n)
	r2 := g.players[1].RequestDraw(n)

	switch {
	case r1 == Exhausted && r2 == Exhausted:
		return g.end(NoSide, OutcomeDoubleExhaustion, wars), true
	case r1 == Exhausted:
		return g.end(Player2, OutcomeExhaustion, wars), true
	case r2 == Exhausted:
		return g.end(Player1, OutcomeExhaustion, wars), true
	}
	return RoundRecord{}, false
}

// compare returns the side whose top card in play ranks higher, or NoSide on
// a tie.
func (g *Game) compare() Side {
	c1, ok1 := g.players[0].Top()
	c2, ok2 := g.players[1].Top()
	if !ok1 || !ok2 {
		return NoSide
	}
	switch {
	case c1.Beats(c2):
		return Player1
	case c2.Beats(c1):
		return Player2
	default:
		return NoSide
	}
}

// resolve settles the cards in play and appends the round to the log. With a
// winner both active piles go to the winner's discard, Player 1's first;
// without one each player takes their own cards back.
func (g *Game) resolve(winner Side, outcome Outcome, wars int) RoundRecord {
	p1, p2 := g.players[0], g.players[1]
	g.roundWinner = winner

	rec := RoundRecord{
		Number:  g.round,
		Active:  [2][]deck.Card{p1.Active(), p2.Active()},
		Winner:  winner,
		Outcome: outcome,
		Wars:    wars,
	}

	if winner == NoSide {
		p1.reclaimActive()
		p2.reclaimActive()
	} else {
		w := g.players[winner.index()]
		w.CollectWinnings(p1.active)
		w.CollectWinnings(p2.active)
	}
	rec.Totals = [2]int{p1.Total(), p2.Total()}

	g.log = append(g.log, rec)
	g.logger.Debug("Round resolved",
		"round", rec.Number,
		"winner", winner,
		"outcome", outcome,
		"wars", wars,
		"p1", rec.Totals[0],
		"p2", rec.Totals[1])
	g.bus.Publish(NewRoundEndEvent(g.id, rec.clone()))
	return rec.clone()
}

// end resolves the final round and moves the game to Over.
func (g *Game) end(winner Side, outcome Outcome, wars int) RoundRecord {
	rec := g.resolve(winner, outcome, wars)
	g.winner = winner
	g.state = Over
	g.logger.Info("Game over", "id", g.id, "winner", winner, "rounds", g.round, "outcome", outcome)
	g.bus.Publish(NewGameOverEvent(g.id, winner, g.round, outcome))
	return rec
}

// Subscribe registers an event subscriber
func (g *Game) Subscribe(sub EventSubscriber) { g.bus.Subscribe(sub) }

// Unsubscribe removes an event subscriber
func (g *Game) Unsubscribe(sub EventSubscriber) { g.bus.Unsubscribe(sub) }

// ID returns the game identifier
func (g *Game) ID() string { return g.id }

// Seed returns the seed the game's RNG was derived from
func (g *Game) Seed() int64 { return g.seed }

// Round returns the number of rounds started so far
func (g *Game) Round() int { return g.round }

// RoundWinner returns the winner of the latest round, NoSide before the first
// round or after a stalemate or drawn game.
func (g *Game) RoundWinner() Side { return g.roundWinner }

// Winner returns the game winner, NoSide while in progress or after a draw.
func (g *Game) Winner() Side { return g.winner }

// State returns whether the game is still in progress
func (g *Game) State() State { return g.state }

// IsOver reports whether the game has ended
func (g *Game) IsOver() bool { return g.state == Over }

// Player returns the player for side
func (g *Game) Player(side Side) *Player {
	if side != Player1 && side != Player2 {
		return nil
	}
	return g.players[side.index()]
}

// CardCount returns the number of cards in play across the whole game
func (g *Game) CardCount() int { return g.cards }

// Log returns a copy of the round log
func (g *Game) Log() []RoundRecord {
	out := make([]RoundRecord, len(g.log))
	for i, rec := range g.log {
		out[i] = rec.clone()
	}
	return out
}

// LastRecord returns the most recent round record
func (g *Game) LastRecord() (RoundRecord, bool) {
	if len(g.log) == 0 {
		return RoundRecord{}, false
	}
	return g.log[len(g.log)-1].clone(), true
}

// Snapshot returns a read-only view of the game for display layers
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          g.id,
		Seed:        g.seed,
		Round:       g.round,
		RoundWinner: g.roundWinner,
		Winner:      g.winner,
		State:       g.state,
	}
	for i, p := range g.players {
		snap.Players[i] = PlayerView{
			Side:    p.side,
			Deck:    p.DeckSize(),
			Discard: p.DiscardSize(),
			Active:  p.ActiveSize(),
		}
	}
	if rec, ok := g.LastRecord(); ok {
		snap.Last = &rec
	}
	return snap
}
