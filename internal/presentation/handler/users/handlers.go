package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/json"
)

type Handler struct {
	userRepository domain.UserRepository
}

func NewHandler(userRepository domain.UserRepository) *Handler {
	return &Handler{userRepository: userRepository}
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	user, err := domain.NewUser(req.Name, req.Avatar)
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := h.userRepository.Create(r.Context(), user); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusCreated, userResponse{
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		json.WriteBadRequestError(w, "user_id is required")
		return
	}

	user, err := h.userRepository.GetByID(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			json.WriteNotFoundError(w, err, "No such user")
			return
		}
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, userResponse{
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepository.List(r.Context())
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, userResponse{
			UserID: user.ID,
			Name:   user.Name,
			Avatar: user.Avatar,
		})
	}

	json.Write(w, http.StatusOK, resp)
}
