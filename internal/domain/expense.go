package domain

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// Expense is one payment made by a room member. Weight is the payer's
// cost-sharing multiplier, not an amount; it defaults to 1.0.
type Expense struct {
	ExpenseID string  `json:"expense_id"`
	RoomID    string  `json:"room_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
	Weight    float64 `json:"weight"`
}

// Balance is one user's settlement line: what they paid, their weighted
// fair share, and the difference. Positive net means the group owes them.
type Balance struct {
	UserID string  `json:"user_id"`
	Paid   float64 `json:"paid"`
	Owed   float64 `json:"owed"`
	Net    float64 `json:"net"`
}

type ExpenseRepository interface {
	Add(ctx context.Context, expense *Expense) error
	ListByRoom(ctx context.Context, roomID string) ([]Expense, error)
}

// NewExpense stamps a millisecond-resolution id onto a new expense row.
func NewExpense(roomID, userID string, amount float64, note string, weight float64) *Expense {
	return &Expense{
		ExpenseID: "exp_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		RoomID:    roomID,
		UserID:    userID,
		Amount:    amount,
		Note:      note,
		Weight:    weight,
	}
}

// ComputeBalances settles a room's expenses. With total spend T and total
// weight W (taken as 1 when zero), each user's share is T × (weight / W)
// and their net is paid − share. Pure over the supplied rows; an empty
// input yields an empty result. Output is sorted by user id.
func ComputeBalances(expenses []Expense) []Balance {
	if len(expenses) == 0 {
		return []Balance{}
	}

	paidByUser := make(map[string]float64)
	weightByUser := make(map[string]float64)
	for _, e := range expenses {
		paidByUser[e.UserID] += e.Amount
		weightByUser[e.UserID] += e.Weight
	}

	total := lo.SumBy(expenses, func(e Expense) float64 { return e.Amount })
	totalWeight := lo.SumBy(expenses, func(e Expense) float64 { return e.Weight })
	if totalWeight == 0 {
		totalWeight = 1.0
	}

	balances := make([]Balance, 0, len(paidByUser))
	for userID, weight := range weightByUser {
		paid := paidByUser[userID]
		owed := total * (weight / totalWeight)

		balances = append(balances, Balance{
			UserID: userID,
			Paid:   paid,
			Owed:   owed,
			Net:    paid - owed,
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].UserID < balances[j].UserID
	})

	return balances
}
