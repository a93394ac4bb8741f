package events

import "time"

// ProtocolVersion is bumped whenever the socket wire format changes
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Event is a cross-process board change notification
type Event struct {
	Type EventType
	// BoardKey is the cache key that went stale. Empty means every board.
	BoardKey string `json:",omitempty"`
	// CandidateID is set when a single candidate moved
	CandidateID string    `json:",omitempty"`
	Timestamp   time.Time // When the event occurred
	SequenceID  int64     // Monotonically increasing sequence number for ordering
}

// SubscribeMessage is sent by clients to pick which board they follow
type SubscribeMessage struct {
	BoardKey string // "" = all boards
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int
	Type      string            // "event", "subscribe", "ping", "pong", "ack"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}

// Matches reports whether a subscriber following key should see e
func (e Event) Matches(key string) bool {
	return e.BoardKey == "" || key == "" || e.BoardKey == key
}
