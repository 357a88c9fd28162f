package payroll

import "time"

// PayrollRecord - one employee's pay for one month. Spreadsheet imports
// create these in bulk with the sheet's own totals; manual entry derives the
// totals through the salary calculator. Records are never patched field by
// field: corrections replace the whole (company, month) batch.
type PayrollRecord struct {
	ID           string
	CompanyID    string
	PayMonth     string // "YYYY-MM"
	TemplateType TemplateType

	UserName string
	DeptName string
	Position string

	BaseSalary        int64
	NonTaxable        int64
	FixedOTPay        int64
	AnnualLeavePay    int64
	MealAllowance     int64
	CarAllowance      int64
	ResearchAllowance int64
	Bonus             int64
	Allowance         int64

	BaseWorkDays int
	AbsentDays   int

	IncomeTax           int64
	LocalTax            int64
	NationalPension     int64
	HealthInsurance     int64
	EmploymentInsurance int64
	LongtermCare        int64
	DeductionOther      int64

	TotalAmount    int64
	TotalDeduction int64
	NetAmount      int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthSummary - aggregate over one (company, pay month) batch.
type MonthSummary struct {
	PayMonth       string
	HeadCount      int
	TotalAmount    int64
	TotalDeduction int64
	NetAmount      int64
}
