package ws

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/logging"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/metrics"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/ratelimiter"
)

// Hub is the realtime room coordination core: it owns the channel registry,
// applies the chat cooldown gate and fans events out to room members. One
// hub instance is constructed at process start and handed to every handler
// that needs it.
type Hub struct {
	registry *Registry
	gate     *ratelimiter.CooldownGate
	logger   logging.Logger
	metrics  *metrics.Hub
}

func NewHub(gate *ratelimiter.CooldownGate, logger logging.Logger, m *metrics.Hub) *Hub {
	return &Hub{
		registry: NewRegistry(),
		gate:     gate,
		logger:   logger,
		metrics:  m,
	}
}

// Join registers the channel and announces the arrival to the rest of the
// room. The joiner does not receive its own user_joined event.
func (h *Hub) Join(roomID, userID string, client *Client) {
	replaced := h.registry.Join(roomID, userID, client)
	if !replaced {
		h.metrics.ActiveConnections.Inc()
	}

	h.logger.Info(logging.Realtime, logging.Presence, "user joined room", map[logging.ExtraKey]any{
		logging.RoomID: roomID,
		logging.UserID: userID,
	})

	h.Broadcast(roomID, NewUserJoined(userID), userID)
}

// Leave deregisters the channel and, if the room still has members,
// announces the departure. Safe to call more than once for the same pair;
// only the call that actually removes the entry broadcasts.
func (h *Hub) Leave(roomID, userID string) {
	if !h.registry.Leave(roomID, userID) {
		return
	}

	h.metrics.ActiveConnections.Dec()

	h.logger.Info(logging.Realtime, logging.Presence, "user left room", map[logging.ExtraKey]any{
		logging.RoomID: roomID,
		logging.UserID: userID,
	})

	if h.registry.Count(roomID) > 0 {
		h.Broadcast(roomID, NewUserLeft(userID), "")
	}
}

// Broadcast serializes the event once and delivers it to every channel in
// the room except excludeUser. Delivery attempts are independent; a channel
// that fails to accept the write is treated as dead and goes through the
// same leave routine as an explicit disconnect.
func (h *Hub) Broadcast(roomID string, event any, excludeUser string) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error(logging.Realtime, logging.Broadcast, "event not serializable", map[logging.ExtraKey]any{
			logging.RoomID:       roomID,
			logging.ErrorMessage: err.Error(),
		})
		return
	}

	h.metrics.BroadcastsTotal.Inc()

	var dead []roomMember
	for _, member := range h.registry.snapshot(roomID, excludeUser) {
		h.metrics.DeliveriesTotal.Inc()
		if err := member.client.send(data); err != nil {
			dead = append(dead, member)
		}
	}

	for _, member := range dead {
		h.metrics.EvictionsTotal.Inc()
		h.logger.Warn(logging.Realtime, logging.Broadcast, "delivery failed, evicting channel", map[logging.ExtraKey]any{
			logging.RoomID: roomID,
			logging.UserID: member.userID,
		})
		h.Leave(roomID, member.userID)
	}
}

// HandleInbound processes one payload received on a channel. Payloads that
// do not parse as a JSON object are dropped silently. Chat and emoji
// payloads pass the cooldown gate first; everything that survives is
// stamped with the sender and an RFC3339 timestamp and broadcast room-wide,
// sender included.
func (h *Hub) HandleInbound(roomID, userID string, raw []byte) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return
	}

	payloadType, _ := payload["type"].(string)

	switch payloadType {
	case TypeChat, TypeEmoji:
		if !h.gate.Allow(userID) {
			h.metrics.RateLimitedTotal.Inc()
			h.notifyRateLimited(roomID, userID)
			return
		}
	case TypeVideoSync:
		action, _ := payload["action"].(string)
		position, _ := payload["position"].(float64)
		h.SyncVideo(roomID, userID, action, int(position))
		return
	}

	payload["user_id"] = userID
	payload["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	h.Broadcast(roomID, payload, "")
}

// SyncVideo broadcasts a playback state change to the whole room so every
// member can reconcile position. Never rate limited.
func (h *Hub) SyncVideo(roomID, userID, action string, position int) {
	h.logger.Debug(logging.Realtime, logging.VideoSync, "video state sync", map[logging.ExtraKey]any{
		logging.RoomID: roomID,
		logging.UserID: userID,
	})

	h.Broadcast(roomID, NewVideoSync(userID, action, position), "")
}

// notifyRateLimited sends a private warning to the sender only. Best
// effort: a delivery failure here is swallowed, not treated as a dead
// channel.
func (h *Hub) notifyRateLimited(roomID, userID string) {
	client, ok := h.registry.client(roomID, userID)
	if !ok {
		return
	}

	seconds := int(h.gate.Cooldown().Seconds())
	notice := NewRateLimitNotice(fmt.Sprintf("You are sending messages too fast. Wait %d seconds.", seconds))
	_ = client.sendJSON(notice)
}

// Members returns a snapshot of user ids connected to the room.
func (h *Hub) Members(roomID string) []string {
	return h.registry.Members(roomID)
}

// MemberCount returns the number of channels currently in the room.
func (h *Hub) MemberCount(roomID string) int {
	return h.registry.Count(roomID)
}
