package domain

import "context"

// Vote is one member's current pick in a room. At most one row exists per
// (room, voter): casting again replaces, never accumulates.
type Vote struct {
	RoomID    string `json:"room_id"`
	ContentID string `json:"content_id"`
	UserID    string `json:"user_id"`
}

// TallyEntry is a per-candidate vote count.
type TallyEntry struct {
	ContentID string `json:"content_id"`
	Votes     int    `json:"votes"`
}

// Winner is the leading candidate decorated with catalog metadata.
type Winner struct {
	ContentID   string `json:"content_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	DurationMin int    `json:"duration_min"`
	Votes       int    `json:"votes"`
}

// Candidate is a catalog item offered for voting in a room.
type Candidate struct {
	ContentID   string `json:"content_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	DurationMin int    `json:"duration_min"`
	Tags        string `json:"tags"`
}

type VoteRepository interface {
	// Cast inserts or replaces the voter's row for the room.
	Cast(ctx context.Context, vote Vote) error
	// CountVoters returns the number of distinct users who voted in the room.
	CountVoters(ctx context.Context, roomID string) (int, error)
	// Tally returns per-candidate counts, highest first.
	Tally(ctx context.Context, roomID string) ([]TallyEntry, error)
	// LeadingCandidate returns the top candidate, ties broken by candidate
	// id order, or nil when the room has no votes.
	LeadingCandidate(ctx context.Context, roomID string) (*Winner, error)
	ListCandidates(ctx context.Context, roomID string) ([]Candidate, error)
	AddCandidates(ctx context.Context, roomID string, contentIDs []string) error
}

// QuorumReached reports whether a winner may be declared: the room needs at
// least two present members and every one of them must have voted. The two
// inputs come from separate reads (live membership and persisted votes) and
// may be mutually stale; that is acceptable.
func QuorumReached(memberCount, votersSoFar int) bool {
	if memberCount < 2 {
		return false
	}

	return votersSoFar >= memberCount
}
