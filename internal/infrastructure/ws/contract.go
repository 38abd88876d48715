package ws

import "time"

// Outbound events are flat JSON objects carrying a `type` discriminator,
// the acting user and an RFC3339 timestamp. Inbound chat/emoji/video_sync
// payloads are stamped with the same two fields before fan-out, so the
// echoed payload matches this shape as well.

type PresenceEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

type RateLimitEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type VideoSyncEvent struct {
	Type      string `json:"type"`
	Action    string `json:"action"`
	Position  int    `json:"position"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

func NewUserJoined(userID string) PresenceEvent {
	return PresenceEvent{
		Type:      TypeUserJoined,
		UserID:    userID,
		Timestamp: eventTimestamp(),
	}
}

func NewUserLeft(userID string) PresenceEvent {
	return PresenceEvent{
		Type:      TypeUserLeft,
		UserID:    userID,
		Timestamp: eventTimestamp(),
	}
}

func NewRateLimitNotice(message string) RateLimitEvent {
	return RateLimitEvent{
		Type:    TypeRateLimit,
		Message: message,
	}
}

func NewVideoSync(userID, action string, position int) VideoSyncEvent {
	return VideoSyncEvent{
		Type:      TypeVideoSync,
		Action:    action,
		Position:  position,
		UserID:    userID,
		Timestamp: eventTimestamp(),
	}
}

func eventTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
