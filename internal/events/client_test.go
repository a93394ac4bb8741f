package events

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDaemon records messages from clients and lets tests push messages back
type mockDaemon struct {
	socketPath string
	received   chan Message
	conns      chan *json.Encoder
}

func setupMockDaemon(t *testing.T) *mockDaemon {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "test.sock")
	listener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	d := &mockDaemon{
		socketPath: socketPath,
		received:   make(chan Message, 20),
		conns:      make(chan *json.Encoder, 4),
	}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			d.conns <- json.NewEncoder(conn)

			go func(c net.Conn) {
				defer func() { _ = c.Close() }()
				decoder := json.NewDecoder(c)
				for {
					var msg Message
					if err := decoder.Decode(&msg); err != nil {
						return
					}
					d.received <- msg
				}
			}(conn)
		}
	}()

	return d
}

func (d *mockDaemon) next(t *testing.T) Message {
	t.Helper()
	select {
	case msg := <-d.received:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for client message")
		return Message{}
	}
}

func connectClient(t *testing.T, socketPath string) *Client {
	t.Helper()
	t.Setenv("HIREBOARD_EVENT_DEBOUNCE_MS", "50")

	client, err := NewClient(socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))
	return client
}

func TestNewClient_RequiresPath(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestClient_ConnectSubscribes(t *testing.T) {
	d := setupMockDaemon(t)
	connectClient(t, d.socketPath)

	msg := d.next(t)
	assert.Equal(t, "subscribe", msg.Type)
	assert.Equal(t, ProtocolVersion, msg.Version)
	require.NotNil(t, msg.Subscribe)
	assert.Equal(t, "", msg.Subscribe.BoardKey)
}

func TestClient_ConnectFailsWithoutDaemon(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "missing.sock"))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Error(t, client.Connect(context.Background()))
}

func TestClient_BatchesEvents(t *testing.T) {
	d := setupMockDaemon(t)
	client := connectClient(t, d.socketPath)
	d.next(t) // subscribe

	require.NoError(t, client.SendEvent(BoardChanged("candidates", "c1")))
	require.NoError(t, client.SendEvent(BoardChanged("candidates", "c2")))
	require.NoError(t, client.SendEvent(BoardChanged("candidates", "c3")))

	msg := d.next(t)
	require.Equal(t, "event", msg.Type)
	require.NotNil(t, msg.Event)
	assert.Equal(t, EventBoardChanged, msg.Event.Type)
	assert.Equal(t, "candidates", msg.Event.BoardKey)
	assert.Empty(t, msg.Event.CandidateID, "a batch of several moves names no single candidate")
}

func TestClient_SubscribeChangesBoard(t *testing.T) {
	d := setupMockDaemon(t)
	client := connectClient(t, d.socketPath)
	d.next(t)

	require.NoError(t, client.Subscribe("candidates"))

	msg := d.next(t)
	assert.Equal(t, "subscribe", msg.Type)
	assert.Equal(t, "candidates", msg.Subscribe.BoardKey)
}

func TestClient_SubscribeBeforeConnect(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "x.sock"))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.ErrorIs(t, client.Subscribe("candidates"), ErrNotConnected)
}

func TestClient_ListenDropsOldSequences(t *testing.T) {
	d := setupMockDaemon(t)
	client := connectClient(t, d.socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := client.Listen(ctx)
	require.NoError(t, err)

	var enc *json.Encoder
	select {
	case enc = <-d.conns:
	case <-time.After(2 * time.Second):
		t.Fatal("client never connected")
	}

	for _, seq := range []int64{1, 1, 2} {
		require.NoError(t, enc.Encode(Message{
			Version: ProtocolVersion,
			Type:    "event",
			Event:   &Event{Type: EventBoardChanged, BoardKey: "candidates", SequenceID: seq},
		}))
	}

	var got []int64
	for len(got) < 2 {
		select {
		case e := <-ch:
			got = append(got, e.SequenceID)
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout, got %v", got)
		}
	}
	assert.Equal(t, []int64{1, 2}, got)
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	d := setupMockDaemon(t)
	client := connectClient(t, d.socketPath)

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close())
	assert.ErrorIs(t, client.SendEvent(BoardChanged("candidates", "c1")), ErrNotConnected)
}
