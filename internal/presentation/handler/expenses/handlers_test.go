package expenses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpenseRepository struct {
	expenses []domain.Expense
	added    []domain.Expense
}

func (s *stubExpenseRepository) Add(_ context.Context, expense *domain.Expense) error {
	s.added = append(s.added, *expense)
	return nil
}

func (s *stubExpenseRepository) ListByRoom(_ context.Context, _ string) ([]domain.Expense, error) {
	return s.expenses, nil
}

func newRouter(repo domain.ExpenseRepository) http.Handler {
	h := NewHandler(repo)

	r := chi.NewRouter()
	r.Get("/api/rooms/{roomId}/balances", h.GetBalancesHandler)
	r.Post("/api/rooms/{roomId}/expenses", h.AddExpenseHandler)
	return r
}

func TestGetBalancesHandler(t *testing.T) {
	t.Run("balances come back as two-decimal strings", func(t *testing.T) {
		repo := &stubExpenseRepository{expenses: []domain.Expense{
			{UserID: "alice", Amount: 100, Weight: 1.0},
			{UserID: "bob", Amount: 0, Weight: 1.0},
		}}

		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms/room-1/balances", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp balancesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "room-1", resp.RoomID)
		assert.Equal(t, "100.00", resp.Total)
		require.Len(t, resp.Balances, 2)
		assert.Equal(t, "50.00", resp.Balances[0].Owed)
		assert.Equal(t, "50.00", resp.Balances[0].Net)
		assert.Equal(t, "-50.00", resp.Balances[1].Net)
	})

	t.Run("empty room settles to zero", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(&stubExpenseRepository{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms/room-1/balances", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp balancesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "0.00", resp.Total)
		assert.Empty(t, resp.Balances)
	})
}

func TestAddExpenseHandler(t *testing.T) {
	t.Run("weight defaults to one", func(t *testing.T) {
		repo := &stubExpenseRepository{}

		body := strings.NewReader(`{"user_id":"alice","amount":42.5,"note":"pizza"}`)
		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms/room-1/expenses", body))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, repo.added, 1)
		assert.Equal(t, 1.0, repo.added[0].Weight)
		assert.Equal(t, "room-1", repo.added[0].RoomID)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		repo := &stubExpenseRepository{}

		body := strings.NewReader(`{"user_id":"alice","amount":0}`)
		rec := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms/room-1/expenses", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, repo.added)
	})
}
