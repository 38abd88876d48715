package expenses

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/json"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

type Handler struct {
	expenseRepository domain.ExpenseRepository
}

func NewHandler(expenseRepository domain.ExpenseRepository) *Handler {
	return &Handler{expenseRepository: expenseRepository}
}

func (h *Handler) AddExpenseHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	var req addExpenseRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		json.WriteBadRequestError(w, "user_id is required")
		return
	}
	if req.Amount <= 0 {
		json.WriteBadRequestError(w, "amount must be positive")
		return
	}
	if req.Weight < 0 {
		json.WriteBadRequestError(w, "weight must not be negative")
		return
	}

	weight := req.Weight
	if weight == 0 {
		weight = 1.0
	}

	expense := domain.NewExpense(roomID, req.UserID, req.Amount, req.Note, weight)
	if err := h.expenseRepository.Add(r.Context(), expense); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusCreated, expense)
}

func (h *Handler) ListExpensesHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	expenses, err := h.expenseRepository.ListByRoom(r.Context(), roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	if expenses == nil {
		expenses = []domain.Expense{}
	}

	json.Write(w, http.StatusOK, expenses)
}

// GetBalancesHandler settles the room: who paid what, each member's
// weighted share and the resulting net, plus room totals. Money fields
// go out as two-decimal strings.
func (h *Handler) GetBalancesHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")

	expenses, err := h.expenseRepository.ListByRoom(r.Context(), roomID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	balances := domain.ComputeBalances(expenses)

	total := lo.SumBy(expenses, func(e domain.Expense) float64 { return e.Amount })

	lines := make([]balanceLine, 0, len(balances))
	for _, b := range balances {
		lines = append(lines, balanceLine{
			UserID: b.UserID,
			Paid:   money(b.Paid),
			Owed:   money(b.Owed),
			Net:    money(b.Net),
		})
	}

	json.Write(w, http.StatusOK, balancesResponse{
		RoomID:   roomID,
		Total:    money(total),
		Balances: lines,
	})
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
