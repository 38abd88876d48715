package rooms

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/events"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/json"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/logging"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	roomRepository domain.RoomRepository
	voteRepository domain.VoteRepository
	hub            *ws.Hub
	roomPublisher  *events.RoomPublisher
	logger         logging.Logger
}

func NewHandler(
	roomRepository domain.RoomRepository,
	voteRepository domain.VoteRepository,
	hub *ws.Hub,
	roomPublisher *events.RoomPublisher,
	logger logging.Logger,
) *Handler {
	return &Handler{
		roomRepository: roomRepository,
		voteRepository: voteRepository,
		hub:            hub,
		roomPublisher:  roomPublisher,
		logger:         logger,
	}
}

func (h *Handler) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		json.WriteBadRequestError(w, "title is required")
		return
	}
	if strings.TrimSpace(req.HostID) == "" {
		json.WriteBadRequestError(w, "host_user_id is required")
		return
	}

	roomID := strings.TrimSpace(req.RoomID)
	if roomID == "" {
		roomID = "room_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}

	startAt := req.StartAt
	if startAt.IsZero() {
		startAt = time.Now().UTC()
	}

	room := domain.Room{
		RoomID:  roomID,
		Title:   strings.TrimSpace(req.Title),
		StartAt: startAt.UTC(),
		HostID:  req.HostID,
	}

	ctx := r.Context()
	if err := h.roomRepository.Upsert(ctx, &room); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	if len(req.CandidateIDs) > 0 {
		if err := h.voteRepository.AddCandidates(ctx, room.RoomID, req.CandidateIDs); err != nil {
			json.WriteInternalError(w, err)
			return
		}
	}

	if err := h.roomPublisher.PublishRoomCreated(ctx, room); err != nil {
		h.logger.Warn(logging.RabbitMQ, logging.ExternalService, "room created event not published", map[logging.ExtraKey]any{
			logging.RoomID:       room.RoomID,
			logging.ErrorMessage: err.Error(),
		})
	}

	json.Write(w, http.StatusCreated, room)
}

func (h *Handler) ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomRepository.List(r.Context())
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	if rooms == nil {
		rooms = []domain.Room{}
	}

	json.Write(w, http.StatusOK, rooms)
}

// GetRoomSummaryHandler returns the room row together with its current
// tallies, the leading candidate so far and who is connected right now.
func (h *Handler) GetRoomSummaryHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	ctx := r.Context()
	room, err := h.roomRepository.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			json.WriteNotFoundError(w, err, "No such room")
			return
		}
		json.WriteInternalError(w, err)
		return
	}

	tally, err := h.voteRepository.Tally(ctx, roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}
	if tally == nil {
		tally = []domain.TallyEntry{}
	}

	leading, err := h.voteRepository.LeadingCandidate(ctx, roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, roomSummaryResponse{
		Room:    *room,
		Tally:   tally,
		Leading: leading,
		Online:  h.hub.Members(roomID),
	})
}

// GetRoomStatusHandler reports live membership only. It never touches the
// database, so it works for rooms that were never persisted.
func (h *Handler) GetRoomStatusHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	members := h.hub.Members(roomID)

	json.Write(w, http.StatusOK, roomStatusResponse{
		RoomID:      roomID,
		Members:     members,
		MemberCount: len(members),
	})
}

// RemindRoomHandler builds a start-time reminder for everyone connected to
// the room. When a broker is configured the payload also goes out on the
// reminders queue; the HTTP response carries it either way.
func (h *Handler) RemindRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	ctx := r.Context()
	room, err := h.roomRepository.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			json.WriteNotFoundError(w, err, "No such room")
			return
		}
		json.WriteInternalError(w, err)
		return
	}

	members := h.hub.Members(roomID)

	if err := h.roomPublisher.PublishReminder(ctx, *room, members); err != nil {
		h.logger.Warn(logging.RabbitMQ, logging.ExternalService, "reminder not published", map[logging.ExtraKey]any{
			logging.RoomID:       roomID,
			logging.ErrorMessage: err.Error(),
		})
	}

	json.Write(w, http.StatusOK, remindResponse{
		RoomID:    room.RoomID,
		Title:     room.Title,
		StartAt:   room.StartAt,
		Recipient: members,
		Message:   "Watch party \"" + room.Title + "\" is starting soon.",
	})
}

// JoinRoomHandler upgrades to a websocket and parks the request goroutine
// in the read loop until the channel closes.
func (h *Handler) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")
	userID := chi.URLParam(r, "userId")

	if roomID == "" || userID == "" {
		json.WriteBadRequestError(w, "room and user ids are required")
		return
	}

	conn, err := ws.Upgrade(w, r)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.logger.Warn(logging.Realtime, logging.Presence, "websocket upgrade failed", map[logging.ExtraKey]any{
			logging.RoomID:       roomID,
			logging.UserID:       userID,
			logging.ErrorMessage: err.Error(),
		})
		return
	}

	client := ws.NewClient(conn, roomID, userID)
	h.hub.Join(roomID, userID, client)
	client.ReadLoop(h.hub)
}
