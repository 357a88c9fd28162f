package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/expense"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, company_id, user_id, spent_at, category, memo, amount, receipt_path, created_at, updated_at`

func (r *expenseRepository) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO expenses (id, company_id, user_id, spent_at, category, memo, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.CompanyID, e.UserID, e.SpentAt, string(e.Category), e.Memo, e.Amount,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, companyID, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE company_id = $1 AND id = $2
	`

	e, err := scanExpense(q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) ListByMonth(ctx context.Context, companyID, month string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE company_id = $1 AND spent_at LIKE $2 || '-%'
		ORDER BY spent_at, created_at
	`

	rows, err := q.Query(ctx, query, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (r *expenseRepository) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) SetReceiptPath(ctx context.Context, companyID, id, path string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE expenses
		SET receipt_path = $3, updated_at = NOW()
		WHERE company_id = $1 AND id = $2
	`, companyID, id, path)
	if err != nil {
		return fmt.Errorf("failed to set receipt path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) TotalsByMonth(ctx context.Context, companyID, month string) ([]expense.CategoryTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE company_id = $1 AND spent_at LIKE $2 || '-%'
		GROUP BY category
		ORDER BY category
	`

	rows, err := q.Query(ctx, query, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}
	defer rows.Close()

	var totals []expense.CategoryTotal
	for rows.Next() {
		var t expense.CategoryTotal
		var category string
		if err := rows.Scan(&category, &t.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense total: %w", err)
		}
		t.Category = expense.Category(category)
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	var category string
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.UserID, &e.SpentAt, &category, &e.Memo, &e.Amount, &e.ReceiptPath,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return expense.Expense{}, err
	}
	e.Category = expense.Category(category)
	return e, nil
}
