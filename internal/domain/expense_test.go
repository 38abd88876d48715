package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBalances(t *testing.T) {
	t.Run("no expenses yields an empty settlement", func(t *testing.T) {
		balances := ComputeBalances(nil)

		assert.NotNil(t, balances)
		assert.Empty(t, balances)
	})

	t.Run("weighted shares settle to zero", func(t *testing.T) {
		expenses := []Expense{
			{UserID: "alice", Amount: 120, Weight: 1.0},
			{UserID: "bob", Amount: 60, Weight: 0.5},
		}

		balances := ComputeBalances(expenses)
		require.Len(t, balances, 2)

		// Total 180, total weight 1.5: alice owes 120, bob owes 60.
		assert.Equal(t, "alice", balances[0].UserID)
		assert.InDelta(t, 120, balances[0].Paid, 1e-9)
		assert.InDelta(t, 120, balances[0].Owed, 1e-9)
		assert.InDelta(t, 0, balances[0].Net, 1e-9)

		assert.Equal(t, "bob", balances[1].UserID)
		assert.InDelta(t, 60, balances[1].Paid, 1e-9)
		assert.InDelta(t, 60, balances[1].Owed, 1e-9)
		assert.InDelta(t, 0, balances[1].Net, 1e-9)
	})

	t.Run("equal weights split the total evenly", func(t *testing.T) {
		expenses := []Expense{
			{UserID: "alice", Amount: 100, Weight: 1.0},
			{UserID: "bob", Amount: 0, Weight: 1.0},
		}

		balances := ComputeBalances(expenses)
		require.Len(t, balances, 2)

		assert.InDelta(t, 50, balances[0].Net, 1e-9, "alice is owed half")
		assert.InDelta(t, -50, balances[1].Net, 1e-9, "bob owes half")
	})

	t.Run("nets always sum to zero when weights are positive", func(t *testing.T) {
		expenses := []Expense{
			{UserID: "alice", Amount: 75.5, Weight: 2.0},
			{UserID: "bob", Amount: 20, Weight: 1.0},
			{UserID: "carol", Amount: 33.25, Weight: 0.5},
		}

		balances := ComputeBalances(expenses)

		var sum float64
		for _, b := range balances {
			sum += b.Net
		}
		assert.InDelta(t, 0, sum, 1e-9)
	})

	t.Run("zero total weight divides by one instead", func(t *testing.T) {
		expenses := []Expense{
			{UserID: "alice", Amount: 40, Weight: 0},
		}

		balances := ComputeBalances(expenses)
		require.Len(t, balances, 1)

		assert.InDelta(t, 0, balances[0].Owed, 1e-9)
		assert.InDelta(t, 40, balances[0].Net, 1e-9)
	})

	t.Run("multiple expenses per user accumulate", func(t *testing.T) {
		expenses := []Expense{
			{UserID: "alice", Amount: 30, Weight: 0.5},
			{UserID: "alice", Amount: 20, Weight: 0.5},
			{UserID: "bob", Amount: 50, Weight: 1.0},
		}

		balances := ComputeBalances(expenses)
		require.Len(t, balances, 2)

		assert.InDelta(t, 50, balances[0].Paid, 1e-9)
		assert.InDelta(t, 50, balances[0].Owed, 1e-9)
	})

	t.Run("output is sorted by user id", func(t *testing.T) {
		expenses := []Expense{
			{UserID: "zoe", Amount: 10, Weight: 1},
			{UserID: "amir", Amount: 10, Weight: 1},
			{UserID: "mara", Amount: 10, Weight: 1},
		}

		balances := ComputeBalances(expenses)
		require.Len(t, balances, 3)

		assert.Equal(t, "amir", balances[0].UserID)
		assert.Equal(t, "mara", balances[1].UserID)
		assert.Equal(t, "zoe", balances[2].UserID)
	})
}

func TestNewExpense(t *testing.T) {
	expense := NewExpense("room-1", "alice", 42.5, "pizza", 1.0)

	assert.Regexp(t, `^exp_\d+$`, expense.ExpenseID)
	assert.Equal(t, "room-1", expense.RoomID)
	assert.Equal(t, "alice", expense.UserID)
	assert.Equal(t, 42.5, expense.Amount)
	assert.Equal(t, "pizza", expense.Note)
	assert.Equal(t, 1.0, expense.Weight)
}
