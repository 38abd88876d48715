package votes

import "github.com/Kagankakao/tv-plus-social-watch/internal/domain"

type castVoteRequest struct {
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	ContentID string `json:"content_id"`
}

type addCandidatesRequest struct {
	ContentIDs []string `json:"content_ids"`
}

type addCandidatesResponse struct {
	RoomID     string   `json:"room_id"`
	ContentIDs []string `json:"content_ids"`
}

type winnerResponse struct {
	Status      string         `json:"status"`
	MemberCount int            `json:"member_count"`
	Voters      int            `json:"voters"`
	Winner      *domain.Winner `json:"winner,omitempty"`
}
