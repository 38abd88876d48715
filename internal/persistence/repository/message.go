package repository

import (
	"context"
	"fmt"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/db"
)

const (
	addChatSQL = `
INSERT INTO chat (room_id, user_id, message)
VALUES ($1, $2, $3);`

	addEmojiSQL = `
INSERT INTO emojis (room_id, user_id, emoji)
VALUES ($1, $2, $3);`

	historySQL = `
SELECT room_id, user_id, message, 'chat' AS kind, created_at FROM chat WHERE room_id = $1
UNION ALL
SELECT room_id, user_id, emoji, 'emoji' AS kind, created_at FROM emojis WHERE room_id = $1
ORDER BY created_at DESC
LIMIT $2;`
)

type messageRepository struct {
	db db.DBTX
}

func NewMessageRepository(db db.DBTX) domain.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) AddChat(ctx context.Context, roomID, userID, message string) error {
	_, err := r.db.ExecContext(ctx, addChatSQL, roomID, userID, message)
	if err != nil {
		return fmt.Errorf("failed to add chat message: %w", err)
	}
	return nil
}

func (r *messageRepository) AddEmoji(ctx context.Context, roomID, userID, emoji string) error {
	_, err := r.db.ExecContext(ctx, addEmojiSQL, roomID, userID, emoji)
	if err != nil {
		return fmt.Errorf("failed to add emoji: %w", err)
	}
	return nil
}

func (r *messageRepository) History(ctx context.Context, roomID string, limit int) ([]domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, historySQL, roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.RoomID, &msg.UserID, &msg.Content, &msg.Kind, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return messages, nil
}
