package expense

import "context"

type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	ListMonth(ctx context.Context, month string) ([]ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
	AttachReceipt(ctx context.Context, id, filename string, data []byte) (ExpenseResponse, error)
	GetMonthTotals(ctx context.Context, month string) (MonthTotalsResponse, error)
}
