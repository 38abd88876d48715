package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/logging"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/metrics"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/ratelimiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Init()                                                                   {}
func (nopLogger) Debug(logging.Category, logging.SubCategory, string, map[logging.ExtraKey]any) {}
func (nopLogger) Debugf(string, ...any)                                                   {}
func (nopLogger) Info(logging.Category, logging.SubCategory, string, map[logging.ExtraKey]any)  {}
func (nopLogger) Infof(string, ...any)                                                    {}
func (nopLogger) Warn(logging.Category, logging.SubCategory, string, map[logging.ExtraKey]any)  {}
func (nopLogger) Warnf(string, ...any)                                                    {}
func (nopLogger) Error(logging.Category, logging.SubCategory, string, map[logging.ExtraKey]any) {}
func (nopLogger) Errorf(string, ...any)                                                   {}
func (nopLogger) Fatal(logging.Category, logging.SubCategory, string, map[logging.ExtraKey]any) {}
func (nopLogger) Fatalf(string, ...any)                                                   {}

// fakeConn records everything written to it. ReadMessage is not used by
// these tests; HandleInbound is driven directly.
type fakeConn struct {
	mu         sync.Mutex
	frames     [][]byte
	jsonValues []any
	failWrites bool
	closed     bool
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	return 0, nil, errors.New("not readable")
}

func (f *fakeConn) WriteRaw(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrites {
		return errors.New("broken pipe")
	}

	f.frames = append(f.frames, data)
	return nil
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrites {
		return errors.New("broken pipe")
	}

	f.jsonValues = append(f.jsonValues, v)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func (f *fakeConn) events(t *testing.T) []map[string]any {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	events := make([]map[string]any, 0, len(f.frames))
	for _, frame := range f.frames {
		var event map[string]any
		require.NoError(t, json.Unmarshal(frame, &event))
		events = append(events, event)
	}

	return events
}

func (f *fakeConn) eventTypes(t *testing.T) []string {
	t.Helper()

	types := make([]string, 0)
	for _, event := range f.events(t) {
		eventType, _ := event["type"].(string)
		types = append(types, eventType)
	}

	return types
}

func newTestHub() *Hub {
	gate := ratelimiter.NewCooldownGate(ratelimiter.DefaultChatCooldown, nil)
	return NewHub(gate, nopLogger{}, metrics.NewHub(prometheus.NewRegistry()))
}

func join(hub *Hub, roomID, userID string) *fakeConn {
	conn := &fakeConn{}
	hub.Join(roomID, userID, &Client{conn: conn, RoomID: roomID, UserID: userID})
	return conn
}

func TestHubPresence(t *testing.T) {
	t.Run("join announces to the room but not the joiner", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		assert.Equal(t, []string{"user_joined"}, alice.eventTypes(t))
		assert.Empty(t, bob.eventTypes(t), "joiner must not see their own arrival")

		events := alice.events(t)
		assert.Equal(t, "bob", events[0]["user_id"])
		assert.NotEmpty(t, events[0]["timestamp"])
	})

	t.Run("leave announces to remaining members", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		join(hub, "room-1", "bob")

		hub.Leave("room-1", "bob")

		types := alice.eventTypes(t)
		assert.Equal(t, []string{"user_joined", "user_left"}, types)
		assert.Equal(t, 1, hub.MemberCount("room-1"))
	})

	t.Run("last leave is silent and prunes the room", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")

		hub.Leave("room-1", "alice")
		hub.Leave("room-1", "alice")

		assert.Empty(t, alice.eventTypes(t))
		assert.Equal(t, 0, hub.MemberCount("room-1"))
	})
}

func TestHubBroadcast(t *testing.T) {
	t.Run("all members receive the event", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		hub.Broadcast("room-1", map[string]any{"type": "announcement"}, "")

		assert.Contains(t, alice.eventTypes(t), "announcement")
		assert.Contains(t, bob.eventTypes(t), "announcement")
	})

	t.Run("excluded user is skipped", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		hub.Broadcast("room-1", map[string]any{"type": "announcement"}, "alice")

		assert.NotContains(t, alice.eventTypes(t), "announcement")
		assert.Contains(t, bob.eventTypes(t), "announcement")
	})

	t.Run("failed delivery evicts the channel and announces the departure", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")
		bob.failWrites = true

		hub.Broadcast("room-1", map[string]any{"type": "announcement"}, "")

		assert.Equal(t, 1, hub.MemberCount("room-1"))
		assert.ElementsMatch(t, []string{"alice"}, hub.Members("room-1"))

		types := alice.eventTypes(t)
		assert.Contains(t, types, "user_left", "survivors must learn about the eviction")
	})

	t.Run("one dead channel does not block the others", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")
		carol := join(hub, "room-1", "carol")
		bob.failWrites = true

		hub.Broadcast("room-1", map[string]any{"type": "announcement"}, "")

		assert.Contains(t, alice.eventTypes(t), "announcement")
		assert.Contains(t, carol.eventTypes(t), "announcement")
		assert.Equal(t, 2, hub.MemberCount("room-1"))
	})
}

func TestHubHandleInbound(t *testing.T) {
	t.Run("chat is stamped and echoed to everyone including the sender", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		hub.HandleInbound("room-1", "alice", []byte(`{"type":"chat","message":"hi"}`))

		for _, conn := range []*fakeConn{alice, bob} {
			events := conn.events(t)
			require.NotEmpty(t, events)

			last := events[len(events)-1]
			assert.Equal(t, "chat", last["type"])
			assert.Equal(t, "hi", last["message"])
			assert.Equal(t, "alice", last["user_id"])
			assert.NotEmpty(t, last["timestamp"])
		}
	})

	t.Run("second chat within the cooldown is rejected privately", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		hub.HandleInbound("room-1", "alice", []byte(`{"type":"chat","message":"one"}`))
		hub.HandleInbound("room-1", "alice", []byte(`{"type":"chat","message":"two"}`))

		bobTypes := bob.eventTypes(t)
		assert.Equal(t, 1, countOf(bobTypes, "chat"), "second chat must not reach the room")

		require.Len(t, alice.jsonValues, 1, "sender gets a private notice")
		notice, ok := alice.jsonValues[0].(RateLimitEvent)
		require.True(t, ok)
		assert.Equal(t, TypeRateLimit, notice.Type)
	})

	t.Run("rejected chat does not extend the cooldown window", func(t *testing.T) {
		hub := newTestHub()
		alice := join(hub, "room-1", "alice")

		hub.HandleInbound("room-1", "alice", []byte(`{"type":"chat","message":"one"}`))
		hub.HandleInbound("room-1", "alice", []byte(`{"type":"chat","message":"two"}`))

		assert.Len(t, alice.jsonValues, 1)
		assert.Equal(t, 1, countOf(alice.eventTypes(t), "chat"))
	})

	t.Run("emoji shares the chat cooldown", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")

		hub.HandleInbound("room-1", "alice", []byte(`{"type":"chat","message":"one"}`))
		hub.HandleInbound("room-1", "alice", []byte(`{"type":"emoji","emoji":"🎉"}`))

		assert.Equal(t, 0, countOf(alice.eventTypes(t), "emoji"))
		assert.Len(t, alice.jsonValues, 1)
	})

	t.Run("video_sync bypasses the cooldown", func(t *testing.T) {
		hub := newTestHub()

		join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		hub.HandleInbound("room-1", "alice", []byte(`{"type":"video_sync","action":"pause","position":42}`))
		hub.HandleInbound("room-1", "alice", []byte(`{"type":"video_sync","action":"play","position":42}`))

		assert.Equal(t, 2, countOf(bob.eventTypes(t), "video_sync"))

		events := bob.events(t)
		first := events[len(events)-2]
		assert.Equal(t, "pause", first["action"])
		assert.Equal(t, float64(42), first["position"])
		assert.Equal(t, "alice", first["user_id"])
	})

	t.Run("malformed payloads are dropped silently", func(t *testing.T) {
		hub := newTestHub()

		alice := join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		hub.HandleInbound("room-1", "alice", []byte(`{not json`))
		hub.HandleInbound("room-1", "alice", []byte(`"just a string"`))

		assert.Empty(t, bob.eventTypes(t))
		assert.Empty(t, alice.jsonValues)
	})

	t.Run("unknown payload types are stamped and relayed", func(t *testing.T) {
		hub := newTestHub()

		join(hub, "room-1", "alice")
		bob := join(hub, "room-1", "bob")

		hub.HandleInbound("room-1", "alice", []byte(`{"type":"poll","question":"snacks?"}`))

		events := bob.events(t)
		require.NotEmpty(t, events)

		last := events[len(events)-1]
		assert.Equal(t, "poll", last["type"])
		assert.Equal(t, "alice", last["user_id"])
	})
}

func countOf(values []string, want string) int {
	n := 0
	for _, v := range values {
		if v == want {
			n++
		}
	}
	return n
}
