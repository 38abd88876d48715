package chat

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/json"
	"github.com/go-chi/chi/v5"
)

const defaultHistoryLimit = 50

type Handler struct {
	messageRepository domain.MessageRepository
}

func NewHandler(messageRepository domain.MessageRepository) *Handler {
	return &Handler{messageRepository: messageRepository}
}

// GetHistoryHandler returns the room's persisted chat and emoji rows,
// newest first. The ?limit query caps the result, defaulting to 50.
func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			json.WriteBadRequestError(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	messages, err := h.messageRepository.History(r.Context(), roomID, limit)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	json.Write(w, http.StatusOK, messages)
}

func (h *Handler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if strings.TrimSpace(req.RoomID) == "" || strings.TrimSpace(req.UserID) == "" {
		json.WriteBadRequestError(w, "room_id and user_id are required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		json.WriteBadRequestError(w, "message must not be empty")
		return
	}

	if err := h.messageRepository.AddChat(r.Context(), req.RoomID, req.UserID, req.Message); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusCreated, postResponse{Status: "stored", Kind: domain.MessageKindChat})
}

func (h *Handler) PostEmojiHandler(w http.ResponseWriter, r *http.Request) {
	var req postEmojiRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if strings.TrimSpace(req.RoomID) == "" || strings.TrimSpace(req.UserID) == "" {
		json.WriteBadRequestError(w, "room_id and user_id are required")
		return
	}
	if strings.TrimSpace(req.Emoji) == "" {
		json.WriteBadRequestError(w, "emoji must not be empty")
		return
	}

	if err := h.messageRepository.AddEmoji(r.Context(), req.RoomID, req.UserID, req.Emoji); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusCreated, postResponse{Status: "stored", Kind: domain.MessageKindEmoji})
}
