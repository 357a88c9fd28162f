package payroll

import "context"

// PayrollRepository defines data access for payroll batches.
// All methods scope by companyID to prevent cross-company data access.
type PayrollRepository interface {
	CreateRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	BulkInsert(ctx context.Context, records []PayrollRecord) (int64, error)
	ListByMonth(ctx context.Context, companyID, payMonth string) ([]PayrollRecord, error)
	DeleteByMonth(ctx context.Context, companyID, payMonth string) (int64, error)
	GetMonthSummary(ctx context.Context, companyID, payMonth string) (MonthSummary, error)
}
