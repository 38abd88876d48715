package votes

import (
	"net/http"
	"strings"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/events"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/json"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/logging"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/ws"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	voteRepository domain.VoteRepository
	hub            *ws.Hub
	roomPublisher  *events.RoomPublisher
	logger         logging.Logger
}

func NewHandler(
	voteRepository domain.VoteRepository,
	hub *ws.Hub,
	roomPublisher *events.RoomPublisher,
	logger logging.Logger,
) *Handler {
	return &Handler{
		voteRepository: voteRepository,
		hub:            hub,
		roomPublisher:  roomPublisher,
		logger:         logger,
	}
}

func (h *Handler) CastVoteHandler(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if strings.TrimSpace(req.RoomID) == "" || strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.ContentID) == "" {
		json.WriteBadRequestError(w, "room_id, user_id and content_id are required")
		return
	}

	vote := domain.Vote{
		RoomID:    req.RoomID,
		UserID:    req.UserID,
		ContentID: req.ContentID,
	}

	if err := h.voteRepository.Cast(r.Context(), vote); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, vote)
}

func (h *Handler) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	candidates, err := h.voteRepository.ListCandidates(r.Context(), roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	if candidates == nil {
		candidates = []domain.Candidate{}
	}

	json.Write(w, http.StatusOK, candidates)
}

func (h *Handler) AddCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	var req addCandidatesRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if len(req.ContentIDs) == 0 {
		json.WriteBadRequestError(w, "content_ids must not be empty")
		return
	}

	if err := h.voteRepository.AddCandidates(r.Context(), roomID, req.ContentIDs); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusCreated, addCandidatesResponse{
		RoomID:     roomID,
		ContentIDs: req.ContentIDs,
	})
}

func (h *Handler) GetTallyHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	tally, err := h.voteRepository.Tally(r.Context(), roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	if tally == nil {
		tally = []domain.TallyEntry{}
	}

	json.Write(w, http.StatusOK, tally)
}

// GetWinnerHandler declares a winner once the room's quorum is met: at
// least two members connected and a vote on record from every one of
// them. Until then callers get a pending status with the current counts.
func (h *Handler) GetWinnerHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	ctx := r.Context()
	memberCount := h.hub.MemberCount(roomID)

	voters, err := h.voteRepository.CountVoters(ctx, roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	if !domain.QuorumReached(memberCount, voters) {
		json.Write(w, http.StatusOK, winnerResponse{
			Status:      "pending",
			MemberCount: memberCount,
			Voters:      voters,
		})
		return
	}

	winner, err := h.voteRepository.LeadingCandidate(ctx, roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}
	if winner == nil {
		json.Write(w, http.StatusOK, winnerResponse{
			Status:      "pending",
			MemberCount: memberCount,
			Voters:      voters,
		})
		return
	}

	if err := h.roomPublisher.PublishWinnerDecided(ctx, roomID, *winner); err != nil {
		h.logger.Warn(logging.RabbitMQ, logging.ExternalService, "winner event not published", map[logging.ExtraKey]any{
			logging.RoomID:       roomID,
			logging.ErrorMessage: err.Error(),
		})
	}

	json.Write(w, http.StatusOK, winnerResponse{
		Status:      "decided",
		MemberCount: memberCount,
		Voters:      voters,
		Winner:      winner,
	})
}
