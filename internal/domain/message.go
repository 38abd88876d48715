package domain

import (
	"context"
	"time"
)

// Message kinds mirror the realtime payload classes that get persisted.
const (
	MessageKindChat  = "chat"
	MessageKindEmoji = "emoji"
)

// ChatMessage is a persisted chat or emoji row.
type ChatMessage struct {
	RoomID    string    `json:"room_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Kind      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageRepository interface {
	AddChat(ctx context.Context, roomID, userID, message string) error
	AddEmoji(ctx context.Context, roomID, userID, emoji string) error
	// History returns the room's merged chat and emoji rows, newest first,
	// capped at limit.
	History(ctx context.Context, roomID string, limit int) ([]ChatMessage, error)
}
