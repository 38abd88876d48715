package migration

import (
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
    user_id    VARCHAR PRIMARY KEY,
    name       VARCHAR NOT NULL,
    avatar     VARCHAR NOT NULL DEFAULT ''
);`,

	`CREATE TABLE IF NOT EXISTS catalog (
    content_id    VARCHAR PRIMARY KEY,
    title         VARCHAR NOT NULL,
    type          VARCHAR NOT NULL,
    duration_min  INTEGER NOT NULL,
    tags          VARCHAR NOT NULL DEFAULT ''
);`,

	`CREATE TABLE IF NOT EXISTS rooms (
    room_id   VARCHAR     PRIMARY KEY,
    title     VARCHAR     NOT NULL,
    start_at  TIMESTAMPTZ NOT NULL,
    host_id   VARCHAR     NOT NULL
);`,

	`CREATE TABLE IF NOT EXISTS candidates (
    room_id     VARCHAR NOT NULL,
    content_id  VARCHAR NOT NULL,

    PRIMARY KEY (room_id, content_id)
);`,

	`CREATE TABLE IF NOT EXISTS votes (
    room_id     VARCHAR NOT NULL,
    user_id     VARCHAR NOT NULL,
    content_id  VARCHAR NOT NULL,

    PRIMARY KEY (room_id, user_id)
);`,

	`CREATE TABLE IF NOT EXISTS expenses (
    expense_id  VARCHAR          PRIMARY KEY,
    room_id     VARCHAR          NOT NULL,
    user_id     VARCHAR          NOT NULL,
    amount      DOUBLE PRECISION NOT NULL,
    note        VARCHAR          NOT NULL DEFAULT '',
    weight      DOUBLE PRECISION NOT NULL DEFAULT 1.0
);`,

	`CREATE INDEX IF NOT EXISTS expenses_room_idx ON expenses (room_id);`,

	`CREATE TABLE IF NOT EXISTS chat (
    id          SERIAL      PRIMARY KEY,
    room_id     VARCHAR     NOT NULL,
    user_id     VARCHAR     NOT NULL,
    message     VARCHAR     NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,

	`CREATE INDEX IF NOT EXISTS chat_room_created_idx ON chat (room_id, created_at DESC);`,

	`CREATE TABLE IF NOT EXISTS emojis (
    id          SERIAL      PRIMARY KEY,
    room_id     VARCHAR     NOT NULL,
    user_id     VARCHAR     NOT NULL,
    emoji       VARCHAR     NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,

	`CREATE INDEX IF NOT EXISTS emojis_room_created_idx ON emojis (room_id, created_at DESC);`,
}

// Migrate creates every table and index the service relies on. Statements
// are idempotent, so running it on every start is safe.
func Migrate(db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
