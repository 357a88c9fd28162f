package payroll

import "context"

type PayrollService interface {
	// ImportSpreadsheet runs the upload pipeline: extract sheet rows,
	// translate headers, normalize, filter, bulk insert what survives.
	ImportSpreadsheet(ctx context.Context, payMonth string, templateType TemplateType, data []byte) (ImportResult, error)

	// CreateRecord handles manual form entry; totals are derived through the
	// salary calculator before persistence.
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	ListRecords(ctx context.Context, payMonth string) ([]RecordResponse, error)
	DeletePeriod(ctx context.Context, payMonth string) (int64, error)
	GetMonthSummary(ctx context.Context, payMonth string) (MonthSummaryResponse, error)
}
