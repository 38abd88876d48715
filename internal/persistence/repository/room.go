package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/db"
)

const (
	upsertRoomSQL = `
INSERT INTO rooms (room_id, title, start_at, host_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (room_id)
DO UPDATE SET
    title = EXCLUDED.title,
    start_at = EXCLUDED.start_at;`

	getRoomSQL = `
SELECT room_id, title, start_at, host_id FROM rooms WHERE room_id = $1;`

	listRoomsSQL = `
SELECT room_id, title, start_at, host_id FROM rooms ORDER BY start_at DESC;`
)

type roomRepository struct {
	db db.DBTX
}

func NewRoomRepository(db db.DBTX) domain.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Upsert(ctx context.Context, room *domain.Room) error {
	_, err := r.db.ExecContext(ctx, upsertRoomSQL, room.RoomID, room.Title, room.StartAt, room.HostID)
	if err != nil {
		return fmt.Errorf("failed to upsert room: %w", err)
	}
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, roomID string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.QueryRowContext(ctx, getRoomSQL, roomID).Scan(
		&room.RoomID, &room.Title, &room.StartAt, &room.HostID,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.RoomID, &room.Title, &room.StartAt, &room.HostID); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return rooms, nil
}
