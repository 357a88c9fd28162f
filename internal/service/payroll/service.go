package payroll

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/spreadsheet"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	db          *database.DB
	payrollRepo payroll.PayrollRepository
}

func NewPayrollService(db *database.DB, payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:          db,
		payrollRepo: payrollRepo,
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

// ========== SPREADSHEET IMPORT ==========

func (s *PayrollServiceImpl) ImportSpreadsheet(ctx context.Context, payMonth string, templateType payroll.TemplateType, data []byte) (payroll.ImportResult, error) {
	if !validator.IsValidPayMonth(payMonth) {
		return payroll.ImportResult{}, payroll.ErrInvalidPayMonth
	}
	if !templateType.Valid() {
		return payroll.ImportResult{}, payroll.ErrInvalidTemplateType
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ImportResult{}, err
	}

	sheetRows, err := spreadsheet.ReadSheet(data, 0)
	if err != nil {
		return payroll.ImportResult{}, fmt.Errorf("%w: %s", payroll.ErrInvalidFileFormat, err)
	}

	raws := ExtractRawRows(sheetRows)
	rows, skipped := BuildRows(raws)
	if len(rows) == 0 {
		return payroll.ImportResult{}, payroll.ErrNoValidRows
	}

	records := make([]payroll.PayrollRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(companyID, payMonth, templateType, row))
	}

	inserted, err := s.payrollRepo.BulkInsert(ctx, records)
	if err != nil {
		return payroll.ImportResult{}, fmt.Errorf("failed to insert payroll batch: %w", err)
	}

	return payroll.ImportResult{
		PayMonth:    payMonth,
		RowsRead:    len(raws),
		RowsSkipped: skipped,
		Inserted:    int(inserted),
	}, nil
}

// ========== MANUAL ENTRY ==========

func (s *PayrollServiceImpl) CreateRecord(ctx context.Context, req payroll.CreateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	result := CalculateSalary(SalaryInput{
		BaseSalary:          req.BaseSalary,
		NonTaxable:          req.NonTaxable,
		BaseWorkDays:        req.BaseWorkDays,
		AbsentDays:          req.AbsentDays,
		Bonus:               req.Bonus,
		Allowance:           req.Allowance,
		IncomeTax:           req.IncomeTax,
		LocalTax:            req.LocalTax,
		NationalPension:     req.NationalPension,
		HealthInsurance:     req.HealthInsurance,
		EmploymentInsurance: req.EmploymentInsurance,
		LongtermCare:        req.LongtermCare,
		DeductionOther:      req.DeductionOther,
	})

	record := payroll.PayrollRecord{
		CompanyID:    companyID,
		PayMonth:     req.PayMonth,
		TemplateType: payroll.TemplateType(req.TemplateType),

		UserName: req.UserName,
		DeptName: req.DeptName,
		Position: req.Position,

		BaseSalary:        req.BaseSalary,
		NonTaxable:        req.NonTaxable,
		FixedOTPay:        req.FixedOTPay,
		AnnualLeavePay:    req.AnnualLeavePay,
		MealAllowance:     req.MealAllowance,
		CarAllowance:      req.CarAllowance,
		ResearchAllowance: req.ResearchAllowance,
		Bonus:             req.Bonus,
		Allowance:         req.Allowance,

		BaseWorkDays: req.BaseWorkDays,
		AbsentDays:   req.AbsentDays,

		IncomeTax:           req.IncomeTax,
		LocalTax:            req.LocalTax,
		NationalPension:     req.NationalPension,
		HealthInsurance:     req.HealthInsurance,
		EmploymentInsurance: req.EmploymentInsurance,
		LongtermCare:        req.LongtermCare,
		DeductionOther:      req.DeductionOther,

		TotalAmount:    result.TotalAmount,
		TotalDeduction: result.TaxTotal + result.InsuranceTotal + req.DeductionOther,
		NetAmount:      result.NetAmount,
	}

	created, err := s.payrollRepo.CreateRecord(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

// ========== LISTING / PERIOD MANAGEMENT ==========

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, payMonth string) ([]payroll.RecordResponse, error) {
	if !validator.IsValidPayMonth(payMonth) {
		return nil, payroll.ErrInvalidPayMonth
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByMonth(ctx, companyID, payMonth)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, nil
}

func (s *PayrollServiceImpl) DeletePeriod(ctx context.Context, payMonth string) (int64, error) {
	if !validator.IsValidPayMonth(payMonth) {
		return 0, payroll.ErrInvalidPayMonth
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.payrollRepo.DeleteByMonth(ctx, companyID, payMonth)
}

func (s *PayrollServiceImpl) GetMonthSummary(ctx context.Context, payMonth string) (payroll.MonthSummaryResponse, error) {
	if !validator.IsValidPayMonth(payMonth) {
		return payroll.MonthSummaryResponse{}, payroll.ErrInvalidPayMonth
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.MonthSummaryResponse{}, err
	}

	summary, err := s.payrollRepo.GetMonthSummary(ctx, companyID, payMonth)
	if err != nil {
		return payroll.MonthSummaryResponse{}, err
	}

	return payroll.MonthSummaryResponse{
		PayMonth:       summary.PayMonth,
		HeadCount:      summary.HeadCount,
		TotalAmount:    summary.TotalAmount,
		TotalDeduction: summary.TotalDeduction,
		NetAmount:      summary.NetAmount,
	}, nil
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.PayrollRecord) payroll.RecordResponse {
	return payroll.RecordResponse{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		PayMonth:     r.PayMonth,
		TemplateType: string(r.TemplateType),

		UserName: r.UserName,
		DeptName: r.DeptName,
		Position: r.Position,

		BaseSalary:        r.BaseSalary,
		NonTaxable:        r.NonTaxable,
		FixedOTPay:        r.FixedOTPay,
		AnnualLeavePay:    r.AnnualLeavePay,
		MealAllowance:     r.MealAllowance,
		CarAllowance:      r.CarAllowance,
		ResearchAllowance: r.ResearchAllowance,
		Bonus:             r.Bonus,
		Allowance:         r.Allowance,

		BaseWorkDays: r.BaseWorkDays,
		AbsentDays:   r.AbsentDays,

		IncomeTax:           r.IncomeTax,
		LocalTax:            r.LocalTax,
		NationalPension:     r.NationalPension,
		HealthInsurance:     r.HealthInsurance,
		EmploymentInsurance: r.EmploymentInsurance,
		LongtermCare:        r.LongtermCare,
		DeductionOther:      r.DeductionOther,

		TotalAmount:    r.TotalAmount,
		TotalDeduction: r.TotalDeduction,
		NetAmount:      r.NetAmount,
	}
}
