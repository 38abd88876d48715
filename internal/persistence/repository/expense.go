package repository

import (
	"context"
	"fmt"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/db"
)

const (
	addExpenseSQL = `
INSERT INTO expenses (expense_id, room_id, user_id, amount, note, weight)
VALUES ($1, $2, $3, $4, $5, $6);`

	listExpensesSQL = `
SELECT expense_id, room_id, user_id, amount, note, weight
FROM expenses
WHERE room_id = $1
ORDER BY expense_id;`
)

type expenseRepository struct {
	db db.DBTX
}

func NewExpenseRepository(db db.DBTX) domain.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Add(ctx context.Context, expense *domain.Expense) error {
	_, err := r.db.ExecContext(ctx, addExpenseSQL,
		expense.ExpenseID, expense.RoomID, expense.UserID, expense.Amount, expense.Note, expense.Weight,
	)
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx, listExpensesSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ExpenseID, &e.RoomID, &e.UserID, &e.Amount, &e.Note, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return expenses, nil
}
