package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/db"
)

const (
	castVoteSQL = `
INSERT INTO votes (room_id, user_id, content_id)
VALUES ($1, $2, $3)
ON CONFLICT (room_id, user_id)
DO UPDATE SET content_id = EXCLUDED.content_id;`

	countVotersSQL = `
SELECT COUNT(DISTINCT user_id) FROM votes WHERE room_id = $1;`

	tallySQL = `
SELECT content_id, COUNT(*) AS vote_count
FROM votes
WHERE room_id = $1
GROUP BY content_id
ORDER BY vote_count DESC, content_id ASC;`

	leadingCandidateSQL = `
SELECT v.content_id, cat.title, cat.type, cat.duration_min, COUNT(*) AS vote_count
FROM votes v
JOIN catalog cat ON v.content_id = cat.content_id
WHERE v.room_id = $1
GROUP BY v.content_id, cat.title, cat.type, cat.duration_min
ORDER BY vote_count DESC, v.content_id ASC
LIMIT 1;`

	listCandidatesSQL = `
SELECT c.content_id, cat.title, cat.type, cat.duration_min, cat.tags
FROM candidates c
JOIN catalog cat ON c.content_id = cat.content_id
WHERE c.room_id = $1
ORDER BY cat.title;`

	addCandidateSQL = `
INSERT INTO candidates (room_id, content_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING;`
)

type voteRepository struct {
	db db.DBTX
}

func NewVoteRepository(db db.DBTX) domain.VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Cast(ctx context.Context, vote domain.Vote) error {
	_, err := r.db.ExecContext(ctx, castVoteSQL, vote.RoomID, vote.UserID, vote.ContentID)
	if err != nil {
		return fmt.Errorf("failed to cast vote: %w", err)
	}
	return nil
}

func (r *voteRepository) CountVoters(ctx context.Context, roomID string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countVotersSQL, roomID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count voters: %w", err)
	}
	return count, nil
}

func (r *voteRepository) Tally(ctx context.Context, roomID string) ([]domain.TallyEntry, error) {
	rows, err := r.db.QueryContext(ctx, tallySQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally votes: %w", err)
	}
	defer rows.Close()

	var tally []domain.TallyEntry
	for rows.Next() {
		var entry domain.TallyEntry
		if err := rows.Scan(&entry.ContentID, &entry.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan tally entry: %w", err)
		}
		tally = append(tally, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tally, nil
}

func (r *voteRepository) LeadingCandidate(ctx context.Context, roomID string) (*domain.Winner, error) {
	var winner domain.Winner
	err := r.db.QueryRowContext(ctx, leadingCandidateSQL, roomID).Scan(
		&winner.ContentID, &winner.Title, &winner.Type, &winner.DurationMin, &winner.Votes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leading candidate: %w", err)
	}

	return &winner, nil
}

func (r *voteRepository) ListCandidates(ctx context.Context, roomID string) ([]domain.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, listCandidatesSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ContentID, &c.Title, &c.Type, &c.DurationMin, &c.Tags); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return candidates, nil
}

func (r *voteRepository) AddCandidates(ctx context.Context, roomID string, contentIDs []string) error {
	for _, contentID := range contentIDs {
		if _, err := r.db.ExecContext(ctx, addCandidateSQL, roomID, contentID); err != nil {
			return fmt.Errorf("failed to add candidate %s: %w", contentID, err)
		}
	}
	return nil
}
