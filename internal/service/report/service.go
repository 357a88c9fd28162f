package report

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/client"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/expense"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/report"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	db           *database.DB
	contractRepo client.ContractRepository
	payrollRepo  payroll.PayrollRepository
	expenseRepo  expense.ExpenseRepository
}

func NewReportService(
	db *database.DB,
	contractRepo client.ContractRepository,
	payrollRepo payroll.PayrollRepository,
	expenseRepo expense.ExpenseRepository,
) report.ReportService {
	return &ReportServiceImpl{
		db:           db,
		contractRepo: contractRepo,
		payrollRepo:  payrollRepo,
		expenseRepo:  expenseRepo,
	}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *ReportServiceImpl) GetWaterfall(ctx context.Context, month string) (report.WaterfallResponse, error) {
	if !validator.IsValidPayMonth(month) {
		return report.WaterfallResponse{}, payroll.ErrInvalidPayMonth
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return report.WaterfallResponse{}, err
	}

	revenue, err := s.contractRepo.ActiveRevenueByMonth(ctx, companyID, month)
	if err != nil {
		return report.WaterfallResponse{}, err
	}

	payrollSummary, err := s.payrollRepo.GetMonthSummary(ctx, companyID, month)
	if err != nil {
		return report.WaterfallResponse{}, err
	}

	expenseTotals, err := s.expenseRepo.TotalsByMonth(ctx, companyID, month)
	if err != nil {
		return report.WaterfallResponse{}, err
	}

	return buildWaterfall(month, revenue, payrollSummary.TotalAmount, expenseTotals), nil
}

// buildWaterfall lays out the steps in a fixed order: revenue first, then
// payroll, then expense categories in the order the repo returned them.
// Each step carries the running subtotal so the chart renders directly.
func buildWaterfall(month string, revenue, payrollTotal int64, expenses []expense.CategoryTotal) report.WaterfallResponse {
	resp := report.WaterfallResponse{Month: month}
	running := int64(0)

	push := func(label string, amount int64) {
		running += amount
		resp.Steps = append(resp.Steps, report.WaterfallStep{
			Label:    label,
			Amount:   amount,
			Subtotal: running,
		})
	}

	push("revenue", revenue)
	push("payroll", -payrollTotal)
	for _, t := range expenses {
		push("expense:"+string(t.Category), -t.Amount)
	}

	resp.Net = running
	return resp
}
