package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, companyID, id string) (Expense, error)
	ListByMonth(ctx context.Context, companyID, month string) ([]Expense, error)
	Delete(ctx context.Context, companyID, id string) error
	SetReceiptPath(ctx context.Context, companyID, id, path string) error
	TotalsByMonth(ctx context.Context, companyID, month string) ([]CategoryTotal, error)
}
