package game

import "github.com/charmbracelet/log"

// LogSubscriber writes game events to a structured logger
type LogSubscriber struct {
	logger *log.Logger
}

// NewLogSubscriber creates a subscriber logging under the "events" prefix
func NewLogSubscriber(logger *log.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger.WithPrefix("events")}
}

// OnEvent implements EventSubscriber
func (s *LogSubscriber) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case RoundEndEvent:
		s.logger.Debug("Round",
			"game", e.GameID,
			"round", e.Record.Number,
			"winner", e.Record.Winner,
			"outcome", e.Record.Outcome,
			"wars", e.Record.Wars,
			"p1", e.Record.Totals[0],
			"p2", e.Record.Totals[1])
	case WarEvent:
		s.logger.Debug("War", "game", e.GameID, "round", e.Round, "iteration", e.Iteration)
	case GameOverEvent:
		s.logger.Info("Game finished",
			"game", e.GameID,
			"winner", e.Winner,
			"rounds", e.Rounds,
			"outcome", e.Outcome)
	}
}
