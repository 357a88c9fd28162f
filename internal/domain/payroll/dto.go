package payroll

import (
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

// ========== IMPORT DTOs ==========

// ImportResult summarizes one spreadsheet upload.
type ImportResult struct {
	PayMonth    string `json:"pay_month"`
	RowsRead    int    `json:"rows_read"`
	RowsSkipped int    `json:"rows_skipped"`
	Inserted    int    `json:"inserted"`
}

// ========== RECORD DTOs ==========

type CreateRecordRequest struct {
	PayMonth     string `json:"pay_month"`
	TemplateType string `json:"payroll_type"`

	UserName string `json:"user_name"`
	DeptName string `json:"dept_name,omitempty"`
	Position string `json:"position,omitempty"`

	BaseSalary        int64 `json:"base_salary"`
	NonTaxable        int64 `json:"non_taxable"`
	FixedOTPay        int64 `json:"fixed_ot_pay"`
	AnnualLeavePay    int64 `json:"annual_leave_pay"`
	MealAllowance     int64 `json:"meal_allowance"`
	CarAllowance      int64 `json:"car_allowance"`
	ResearchAllowance int64 `json:"research_allowance"`
	Bonus             int64 `json:"bonus"`
	Allowance         int64 `json:"allowance"`

	BaseWorkDays int `json:"base_work_days"`
	AbsentDays   int `json:"absent_days"`

	IncomeTax           int64 `json:"income_tax"`
	LocalTax            int64 `json:"local_tax"`
	NationalPension     int64 `json:"national_pension"`
	HealthInsurance     int64 `json:"health_insurance"`
	EmploymentInsurance int64 `json:"employment_insurance"`
	LongtermCare        int64 `json:"longterm_care"`
	DeductionOther      int64 `json:"deduction_other"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserName) {
		errs = append(errs, validator.ValidationError{Field: "user_name", Message: "is required"})
	}
	if !validator.IsValidPayMonth(r.PayMonth) {
		errs = append(errs, validator.ValidationError{Field: "pay_month", Message: "must be in YYYY-MM format"})
	}
	if !TemplateType(r.TemplateType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "payroll_type", Message: "must be 'A' or 'B'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	PayMonth     string `json:"pay_month"`
	TemplateType string `json:"payroll_type"`

	UserName string `json:"user_name"`
	DeptName string `json:"dept_name,omitempty"`
	Position string `json:"position,omitempty"`

	BaseSalary        int64 `json:"base_salary"`
	NonTaxable        int64 `json:"non_taxable"`
	FixedOTPay        int64 `json:"fixed_ot_pay"`
	AnnualLeavePay    int64 `json:"annual_leave_pay"`
	MealAllowance     int64 `json:"meal_allowance"`
	CarAllowance      int64 `json:"car_allowance"`
	ResearchAllowance int64 `json:"research_allowance"`
	Bonus             int64 `json:"bonus"`
	Allowance         int64 `json:"allowance"`

	BaseWorkDays int `json:"base_work_days"`
	AbsentDays   int `json:"absent_days"`

	IncomeTax           int64 `json:"income_tax"`
	LocalTax            int64 `json:"local_tax"`
	NationalPension     int64 `json:"national_pension"`
	HealthInsurance     int64 `json:"health_insurance"`
	EmploymentInsurance int64 `json:"employment_insurance"`
	LongtermCare        int64 `json:"longterm_care"`
	DeductionOther      int64 `json:"deduction_other"`

	TotalAmount    int64 `json:"total_amount"`
	TotalDeduction int64 `json:"total_deduction"`
	NetAmount      int64 `json:"net_amount"`
}

type MonthSummaryResponse struct {
	PayMonth       string `json:"pay_month"`
	HeadCount      int    `json:"head_count"`
	TotalAmount    int64  `json:"total_amount"`
	TotalDeduction int64  `json:"total_deduction"`
	NetAmount      int64  `json:"net_amount"`
}
