package game

import "time"

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundEnd EventType = "round_end"
	EventTypeWar      EventType = "war"
	EventTypeGameOver EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundEndEvent is published after a round is resolved and logged
type RoundEndEvent struct {
	GameID    string
	Record    RoundRecord
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(gameID string, rec RoundRecord) RoundEndEvent {
	return RoundEndEvent{GameID: gameID, Record: rec, timestamp: time.Now()}
}

// WarEvent is published each time a tie sends the players to war
type WarEvent struct {
	GameID    string
	Round     int
	Iteration int
	timestamp time.Time
}

func (e WarEvent) EventType() EventType { return EventTypeWar }
func (e WarEvent) Timestamp() time.Time { return e.timestamp }

// NewWarEvent creates a new war event
func NewWarEvent(gameID string, round, iteration int) WarEvent {
	return WarEvent{GameID: gameID, Round: round, Iteration: iteration, timestamp: time.Now()}
}

// GameOverEvent is published once, when a player is exhausted
type GameOverEvent struct {
	GameID    string
	Winner    Side
	Rounds    int
	Outcome   Outcome
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(gameID string, winner Side, rounds int, outcome Outcome) GameOverEvent {
	return GameOverEvent{
		GameID:    gameID,
		Winner:    winner,
		Rounds:    rounds,
		Outcome:   outcome,
		timestamp: time.Now(),
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on the
// publishing goroutine, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers cannot be compared and are never removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(EventSubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
