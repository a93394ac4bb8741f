package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrQueueFull is returned by SendEvent when the outgoing queue is saturated
var ErrQueueFull = errors.New("event queue full")

// ErrNotConnected is returned when a message is sent before Connect
var ErrNotConnected = errors.New("not connected to daemon")

// Client is a connection to the hireboard daemon. It batches outgoing
// board_changed events, delivers incoming ones, and reconnects on failure.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	eventQueue chan Event
	debounce   time.Duration
	closed     bool
	batching   bool

	maxRetries int
	baseDelay  time.Duration

	boardKey string

	lastSequence int64

	ctx    context.Context
	cancel context.CancelFunc

	batcherDone chan struct{}
}

// NewClient creates a new event client but does not connect.
// The debounce window defaults to 100ms and can be tuned with
// HIREBOARD_EVENT_DEBOUNCE_MS.
func NewClient(socketPath string) (*Client, error) {
	if socketPath == "" {
		return nil, fmt.Errorf("socket path is required")
	}

	debounceMs := 100
	if envVal := os.Getenv("HIREBOARD_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}, nil
}

// Connect dials the daemon socket and subscribes to the current board key
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	msg := Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{BoardKey: c.boardKey},
	}
	if err := c.encoder.Encode(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Warn("error closing connection", "error", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	// reconnects reuse the running batcher
	if !c.batching {
		c.batching = true
		go c.startBatcher()
	}

	return nil
}

// SendEvent queues an event to be sent to the daemon. Events are batched
// within the debounce window. It never blocks.
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrNotConnected
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// startBatcher flushes at most one board_changed event per debounce tick.
// Events for different boards collapse into one event for all boards.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var (
		pending     bool
		boardKey    string
		candidateID string
	)

	merge := func(evt Event) {
		if !pending {
			pending = true
			boardKey = evt.BoardKey
			candidateID = evt.CandidateID
			return
		}
		if evt.BoardKey != boardKey {
			boardKey = ""
		}
		if evt.CandidateID != candidateID {
			candidateID = ""
		}
	}

	flushPending := func() {
		if !pending {
			return
		}
		err := c.sendToSocket(Event{
			Type:        EventBoardChanged,
			BoardKey:    boardKey,
			CandidateID: candidateID,
			Timestamp:   time.Now(),
		})
		if err != nil && !isConnectionError(err) {
			slog.Warn("failed to send batched event", "error", err)
		}
		pending = false
	}

	for {
		select {
		case <-c.ctx.Done():
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flushPending()
				return
			}
			merge(event)

		drain:
			for {
				select {
				case evt, ok := <-c.eventQueue:
					if !ok {
						break drain
					}
					merge(evt)
				default:
					break drain
				}
			}

		case <-ticker.C:
			flushPending()
		}
	}
}

func (c *Client) sendToSocket(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	return c.encoder.Encode(Message{
		Version: ProtocolVersion,
		Type:    "event",
		Event:   &event,
	})
}

// Listen starts listening for events from the daemon. The returned channel
// is closed when ctx is done or reconnection gives up.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		err := c.readEvents(ctx, eventChan)
		if err == nil || ctx.Err() != nil || c.isClosed() {
			return
		}

		slog.Info("daemon connection lost, reconnecting", "error", err)
		if !c.reconnect(ctx) {
			slog.Warn("giving up on daemon", "attempts", c.maxRetries)
			return
		}
	}
}

func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return ErrNotConnected
		}
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil || msg.Event.SequenceID <= c.lastSequence {
				continue
			}
			c.lastSequence = msg.Event.SequenceID
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return ctx.Err()
			}

		case "ping":
			if err := c.sendToSocket(Event{Type: EventPong}); err != nil && !isConnectionError(err) {
				slog.Warn("failed to send pong", "error", err)
			}
		}
	}
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, ErrNotConnected) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset")
}

// reconnect retries Connect with exponential backoff: 1s, 2s, 4s, ...
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil && !isConnectionError(err) {
					slog.Debug("error closing connection during reconnect", "error", err)
				}
				c.conn = nil
			}
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				slog.Info("reconnected to daemon", "attempt", i+1)
				return true
			}

			slog.Debug("reconnection attempt failed", "attempt", i+1, "max", c.maxRetries, "next_delay", delay*2)
			delay *= 2
		}
	}

	return false
}

// Subscribe switches the board key this client follows. "" follows all.
func (c *Client) Subscribe(boardKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.boardKey = boardKey

	if c.conn == nil {
		return ErrNotConnected
	}

	return c.encoder.Encode(Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{BoardKey: boardKey},
	})
}

// Close flushes pending events, closes the connection and stops all
// goroutines. It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.eventQueue)
	batching := c.batching
	c.mu.Unlock()

	if batching {
		<-c.batcherDone
	}
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}

	return nil
}
