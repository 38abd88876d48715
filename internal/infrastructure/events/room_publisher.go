package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/messaging"
)

const (
	routingRoomCreated  = "room.created"
	routingRoomReminder = "room.reminder"
	routingRoomWinner   = "room.winner"
)

type roomCreatedEvent struct {
	Room domain.Room `json:"room"`
}

type reminderEvent struct {
	RoomID  string    `json:"room_id"`
	Title   string    `json:"title"`
	StartAt time.Time `json:"start_at"`
	UserIDs []string  `json:"user_ids"`
}

type winnerEvent struct {
	RoomID string        `json:"room_id"`
	Winner domain.Winner `json:"winner"`
}

// RoomPublisher fans room lifecycle events out to the message broker.
// A nil publisher is valid and drops every event, which keeps the broker
// optional in local setups.
type RoomPublisher struct {
	rabbitmq *messaging.RabbitMQ
}

func NewRoomPublisher(rabbitmq *messaging.RabbitMQ) *RoomPublisher {
	if rabbitmq == nil {
		return nil
	}
	return &RoomPublisher{rabbitmq: rabbitmq}
}

func (p *RoomPublisher) PublishRoomCreated(ctx context.Context, room domain.Room) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(roomCreatedEvent{Room: room})
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, routingRoomCreated, body)
}

func (p *RoomPublisher) PublishReminder(ctx context.Context, room domain.Room, userIDs []string) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(reminderEvent{
		RoomID:  room.RoomID,
		Title:   room.Title,
		StartAt: room.StartAt,
		UserIDs: userIDs,
	})
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, routingRoomReminder, body)
}

func (p *RoomPublisher) PublishWinnerDecided(ctx context.Context, roomID string, winner domain.Winner) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(winnerEvent{RoomID: roomID, Winner: winner})
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, routingRoomWinner, body)
}
