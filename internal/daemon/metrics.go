package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics counts daemon traffic. All fields are updated atomically.
type Metrics struct {
	eventsSent       atomic.Int64
	eventsReceived   atomic.Int64
	broadcasts       atomic.Int64
	connectedClients atomic.Int32
	startTime        time.Time
}

// NewMetrics creates a zeroed Metrics starting now
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// IncEventsSent counts one message delivered to a client queue
func (m *Metrics) IncEventsSent() { m.eventsSent.Add(1) }

// IncEventsReceived counts one board event published by a client
func (m *Metrics) IncEventsReceived() { m.eventsReceived.Add(1) }

// IncRefreshesTotal counts one event fanned out to subscribers
func (m *Metrics) IncRefreshesTotal() { m.broadcasts.Add(1) }

// SetConnectedClients records the current client count
func (m *Metrics) SetConnectedClients(count int32) { m.connectedClients.Store(count) }

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	EventsSent       int64     `json:"events_sent"`
	EventsReceived   int64     `json:"events_received"`
	Broadcasts       int64     `json:"broadcasts"`
	ConnectedClients int32     `json:"connected_clients"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// Snapshot returns the current counter values
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		EventsSent:       m.eventsSent.Load(),
		EventsReceived:   m.eventsReceived.Load(),
		Broadcasts:       m.broadcasts.Load(),
		ConnectedClients: m.connectedClients.Load(),
		StartTime:        m.startTime,
		Uptime:           time.Since(m.startTime).Round(time.Second).String(),
	}
}
