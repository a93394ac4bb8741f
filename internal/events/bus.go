package events

import (
	"log/slog"
	"sync"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// Transition is emitted once per completed cross-column drop
type Transition struct {
	CandidateID string           `json:"candidate_id"`
	Card        models.Candidate `json:"card"`
	Source      models.ColumnID  `json:"source"`
	Target      models.ColumnID  `json:"target"`
}

// Observer reacts to a column transition. Observers run on the publisher's
// goroutine and must not block.
type Observer func(Transition)

// TransitionPublisher is the side of the bus the drag controller sees
type TransitionPublisher interface {
	Publish(t Transition)
}

// Compile-time verification that *Bus implements TransitionPublisher
var _ TransitionPublisher = (*Bus)(nil)

// Bus fans column transitions out to observers and channel subscribers
type Bus struct {
	mu        sync.RWMutex
	observers map[int]Observer
	channels  map[int]chan Transition
	order     []int
	nextID    int
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		observers: make(map[int]Observer),
		channels:  make(map[int]chan Transition),
	}
}

// Subscribe registers an observer. Observers are called in registration
// order. The returned func removes it.
func (b *Bus) Subscribe(fn Observer) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.observers[id] = fn
	b.order = append(b.order, id)

	return func() { b.remove(id) }
}

// Channel returns a buffered channel of transitions. A full channel drops
// the transition rather than block the publisher.
func (b *Bus) Channel(buffer int) (<-chan Transition, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Transition, max(buffer, 1))
	b.channels[id] = ch
	b.order = append(b.order, id)

	return ch, func() { b.remove(id) }
}

// Publish delivers t to every subscriber. Channels are fed first, then
// observers run in registration order outside the lock, so an observer may
// subscribe or unsubscribe.
func (b *Bus) Publish(t Transition) {
	b.mu.RLock()
	observers := make([]Observer, 0, len(b.observers))
	for _, id := range b.order {
		if fn, ok := b.observers[id]; ok {
			observers = append(observers, fn)
			continue
		}
		if ch, ok := b.channels[id]; ok {
			select {
			case ch <- t:
			default:
				slog.Warn("transition subscriber is full, dropping", "candidate_id", t.CandidateID)
			}
		}
	}
	b.mu.RUnlock()

	for _, fn := range observers {
		fn(t)
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.observers, id)
	if ch, ok := b.channels[id]; ok {
		delete(b.channels, id)
		close(ch)
	}
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i:i], b.order[i+1:]...)
			break
		}
	}
}
