package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hireboard/internal/models"
)

func transition(id string, target models.ColumnID) Transition {
	return Transition{
		CandidateID: id,
		Card:        models.Candidate{ID: id, Name: "Alice Johnson", Role: "Frontend Dev"},
		Source:      models.ColumnNew,
		Target:      target,
	}
}

func TestBus_ObserversRunInOrder(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.Subscribe(func(Transition) { calls = append(calls, "first") })
	bus.Subscribe(func(Transition) { calls = append(calls, "second") })

	bus.Publish(transition("c1", models.ColumnOffer))

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0

	unsubscribe := bus.Subscribe(func(Transition) { count++ })
	bus.Publish(transition("c1", models.ColumnOffer))
	unsubscribe()
	bus.Publish(transition("c1", models.ColumnOffer))

	assert.Equal(t, 1, count)
}

func TestBus_ObserverMaySubscribe(t *testing.T) {
	bus := NewBus()
	late := 0

	bus.Subscribe(func(Transition) {
		bus.Subscribe(func(Transition) { late++ })
	})

	bus.Publish(transition("c1", models.ColumnOffer))
	bus.Publish(transition("c1", models.ColumnOffer))

	assert.Equal(t, 1, late)
}

func TestBus_Channel(t *testing.T) {
	bus := NewBus()
	ch, unsubscribe := bus.Channel(1)

	bus.Publish(transition("c1", models.ColumnInterview))
	bus.Publish(transition("c2", models.ColumnInterview)) // dropped, buffer is full

	got := <-ch
	assert.Equal(t, "c1", got.CandidateID)
	assert.Equal(t, models.ColumnInterview, got.Target)

	unsubscribe()
	_, open := <-ch
	require.False(t, open)
}

func TestEvent_Matches(t *testing.T) {
	assert.True(t, Event{BoardKey: "candidates"}.Matches("candidates"))
	assert.True(t, Event{}.Matches("candidates"))
	assert.True(t, Event{BoardKey: "candidates"}.Matches(""))
	assert.False(t, Event{BoardKey: "other"}.Matches("candidates"))
}
