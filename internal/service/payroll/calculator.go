package payroll

import "github.com/shopspring/decimal"

// SalaryInput holds the itemized figures from the manual entry form.
// Absent fields default to zero; the calculator itself never rejects input,
// sanity checks belong to the caller.
type SalaryInput struct {
	BaseSalary   int64
	NonTaxable   int64
	BaseWorkDays int
	AbsentDays   int

	Bonus     int64
	Allowance int64

	IncomeTax int64
	LocalTax  int64

	NationalPension     int64
	HealthInsurance     int64
	EmploymentInsurance int64
	LongtermCare        int64

	DeductionOther int64
}

type SalaryResult struct {
	RecognizedAmount int64
	TotalAmount      int64
	TaxTotal         int64
	InsuranceTotal   int64
	NetAmount        int64
}

// CalculateSalary derives pay totals from itemized inputs.
//
// The attendance ratio is (base_work_days - absent_days) / base_work_days,
// or zero when no base work days are set. The ratio is deliberately not
// clamped: more absences than work days drives the recognized amount
// negative, and that passes through as-is. Recognized pay floors toward
// negative infinity, so a negative product rounds down, not toward zero.
func CalculateSalary(in SalaryInput) SalaryResult {
	ratio := decimal.Zero
	if in.BaseWorkDays > 0 {
		ratio = decimal.NewFromInt(int64(in.BaseWorkDays - in.AbsentDays)).
			Div(decimal.NewFromInt(int64(in.BaseWorkDays)))
	}

	recognized := decimal.NewFromInt(in.BaseSalary + in.NonTaxable).
		Mul(ratio).
		Floor().
		IntPart()

	totalAmount := recognized + in.Bonus + in.Allowance
	taxTotal := in.IncomeTax + in.LocalTax
	insuranceTotal := in.NationalPension + in.HealthInsurance + in.EmploymentInsurance + in.LongtermCare
	netAmount := totalAmount - taxTotal - insuranceTotal - in.DeductionOther

	return SalaryResult{
		RecognizedAmount: recognized,
		TotalAmount:      totalAmount,
		TaxTotal:         taxTotal,
		InsuranceTotal:   insuranceTotal,
		NetAmount:        netAmount,
	}
}
