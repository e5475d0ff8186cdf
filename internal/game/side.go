package game

// Side identifies one of the two players, or neither.
type Side int

const (
	NoSide Side = iota
	Player1
	Player2
)

// String returns the display name of the side
func (s Side) String() string {
	switch s {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "NA"
	}
}

// MarshalText renders the side by name in JSON transcripts.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Opponent returns the other player. NoSide has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoSide
	}
}

func (s Side) index() int {
	return int(s) - 1
}

// Outcome describes how a round ended.
type Outcome int

const (
	// OutcomeWin is a round won on rank, directly or through wars.
	OutcomeWin Outcome = iota
	// OutcomeExhaustion ends the game: one player could not draw.
	OutcomeExhaustion
	// OutcomeDoubleExhaustion ends the game as a draw: both players failed
	// the same draw.
	OutcomeDoubleExhaustion
	// OutcomeStalemate is a round whose war hit MaxWarIterations.
	OutcomeStalemate
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeExhaustion:
		return "exhaustion"
	case OutcomeDoubleExhaustion:
		return "double-exhaustion"
	case OutcomeStalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name in JSON transcripts.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Ends reports whether the outcome finishes the game.
func (o Outcome) Ends() bool {
	return o == OutcomeExhaustion || o == OutcomeDoubleExhaustion
}

// State of a game
type State int

const (
	InProgress State = iota
	Over
)

// String returns the string representation of a state
func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "in-progress"
}

// DrawResult reports whether a player satisfied a draw request.
type DrawResult int

const (
	// Drawn means every requested card moved into the active pile.
	Drawn DrawResult = iota
	// Exhausted means the player ran out; everything they had left is now
	// in their active pile.
	Exhausted
)

// String returns the string representation of a draw result
func (r DrawResult) String() string {
	if r == Exhausted {
		return "exhausted"
	}
	return "drawn"
}
