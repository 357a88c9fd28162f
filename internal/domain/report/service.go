package report

import "context"

type ReportService interface {
	// GetWaterfall assembles the monthly income statement: contract revenue,
	// minus payroll, minus expenses per category, with running subtotals.
	GetWaterfall(ctx context.Context, month string) (WaterfallResponse, error)
}
