package domain

import (
	"context"
	"errors"
	"time"
)

var ErrRoomNotFound = errors.New("room not found")

// Room is a named watch session. Live membership is owned by the hub, not
// by this record.
type Room struct {
	RoomID  string    `json:"id"`
	Title   string    `json:"title"`
	StartAt time.Time `json:"start_time_utc"`
	HostID  string    `json:"host_user_id"`
}

type RoomRepository interface {
	// Upsert creates the room or refreshes its title and start time.
	Upsert(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, roomID string) (*Room, error)
	// List returns rooms newest start time first.
	List(ctx context.Context) ([]Room, error)
}
