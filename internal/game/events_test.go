package game

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type recordingSubscriber struct {
	events []GameEvent
}

func (r *recordingSubscriber) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func TestEventBusSubscribeUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	a, b := &recordingSubscriber{}, &recordingSubscriber{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Publish(NewWarEvent("g", 1, 1))
	bus.Unsubscribe(a)
	bus.Publish(NewWarEvent("g", 1, 2))

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 2)
}

func TestEventBusIgnoresFuncUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	fn := EventSubscriberFunc(func(GameEvent) { calls++ })
	bus.Subscribe(fn)
	bus.Unsubscribe(fn)

	bus.Publish(NewWarEvent("g", 1, 1))
	assert.Equal(t, 1, calls)
}

func TestGamePublishesRoundEvents(t *testing.T) {
	rec := &recordingSubscriber{}
	g := riggedGame("Ah2c", "Kd", WithID("g-1"), WithSubscriber(rec))

	g.PlayToEnd(0)

	var types []EventType
	for _, e := range rec.events {
		types = append(types, e.EventType())
		assert.False(t, e.Timestamp().IsZero())
	}
	assert.Equal(t, []EventType{EventTypeRoundEnd, EventTypeRoundEnd, EventTypeGameOver}, types)

	over := rec.events[2].(GameOverEvent)
	assert.Equal(t, "g-1", over.GameID)
	assert.Equal(t, Player1, over.Winner)
	assert.Equal(t, 2, over.Rounds)
	assert.Equal(t, OutcomeExhaustion, over.Outcome)

	first := rec.events[0].(RoundEndEvent)
	assert.Equal(t, 1, first.Record.Number)
}

func TestLogSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := riggedGame("5h 2c3c4cKh", "5d 2d3d", WithSubscriber(NewLogSubscriber(logger)))
	g.PlayRound()

	out := buf.String()
	assert.Contains(t, out, "War")
	assert.Contains(t, out, "Round")
	assert.Contains(t, out, "Game finished")
	assert.Contains(t, out, "exhaustion")
}
