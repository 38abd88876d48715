package rooms

import (
	"time"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
)

type createRoomRequest struct {
	RoomID       string    `json:"id"`
	Title        string    `json:"title"`
	StartAt      time.Time `json:"start_time_utc"`
	HostID       string    `json:"host_user_id"`
	CandidateIDs []string  `json:"candidate_ids"`
}

type roomSummaryResponse struct {
	Room    domain.Room         `json:"room"`
	Tally   []domain.TallyEntry `json:"tally"`
	Leading *domain.Winner      `json:"leading,omitempty"`
	Online  []string            `json:"online"`
}

type roomStatusResponse struct {
	RoomID      string   `json:"room_id"`
	Members     []string `json:"members"`
	MemberCount int      `json:"member_count"`
}

type remindResponse struct {
	RoomID    string    `json:"room_id"`
	Title     string    `json:"title"`
	StartAt   time.Time `json:"start_time_utc"`
	Recipient []string  `json:"recipients"`
	Message   string    `json:"message"`
}
