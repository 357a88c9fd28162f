package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSalary_FullExample(t *testing.T) {
	t.Parallel()

	result := CalculateSalary(SalaryInput{
		BaseSalary:          3000000,
		NonTaxable:          0,
		BaseWorkDays:        30,
		AbsentDays:          0,
		Bonus:               100000,
		Allowance:           50000,
		IncomeTax:           50000,
		LocalTax:            5000,
		NationalPension:     120000,
		HealthInsurance:     90000,
		EmploymentInsurance: 20000,
		LongtermCare:        10000,
		DeductionOther:      0,
	})

	assert.Equal(t, int64(3000000), result.RecognizedAmount)
	assert.Equal(t, int64(3150000), result.TotalAmount)
	assert.Equal(t, int64(55000), result.TaxTotal)
	assert.Equal(t, int64(240000), result.InsuranceTotal)
	assert.Equal(t, int64(2855000), result.NetAmount)
}

func TestCalculateSalary_AttendanceRatio(t *testing.T) {
	t.Parallel()

	// 5 absences out of 20 work days prorates pay to 75%.
	result := CalculateSalary(SalaryInput{
		BaseSalary:   2000000,
		BaseWorkDays: 20,
		AbsentDays:   5,
	})

	assert.Equal(t, int64(1500000), result.RecognizedAmount)
	assert.Equal(t, int64(1500000), result.TotalAmount)
}

func TestCalculateSalary_ZeroWorkDays(t *testing.T) {
	t.Parallel()

	result := CalculateSalary(SalaryInput{
		BaseSalary:   2000000,
		BaseWorkDays: 0,
	})

	assert.Equal(t, int64(0), result.RecognizedAmount)
}

func TestCalculateSalary_OverAbsenceIsNotClamped(t *testing.T) {
	t.Parallel()

	// More absences than work days drives the ratio negative and the
	// recognized amount with it.
	result := CalculateSalary(SalaryInput{
		BaseSalary:   1000000,
		BaseWorkDays: 20,
		AbsentDays:   25,
	})

	assert.Equal(t, int64(-250000), result.RecognizedAmount)
	assert.Equal(t, int64(-250000), result.TotalAmount)
	assert.Equal(t, int64(-250000), result.NetAmount)
}

func TestCalculateSalary_NegativeProductFloorsDown(t *testing.T) {
	t.Parallel()

	// -1/3 of 300000 is -100000 after flooring toward negative infinity;
	// rounding toward zero would give -99999.
	result := CalculateSalary(SalaryInput{
		BaseSalary:   300000,
		BaseWorkDays: 3,
		AbsentDays:   4,
	})

	assert.Equal(t, int64(-100000), result.RecognizedAmount)
}

func TestCalculateSalary_NetInvariant(t *testing.T) {
	t.Parallel()

	inputs := []SalaryInput{
		{BaseSalary: 2500000, BaseWorkDays: 22, AbsentDays: 3, Bonus: 300000, IncomeTax: 80000, NationalPension: 110000, DeductionOther: 15000},
		{BaseSalary: 1800000, NonTaxable: 200000, BaseWorkDays: 20, Allowance: 100000, LocalTax: 8000, HealthInsurance: 70000},
		{},
	}

	for _, in := range inputs {
		result := CalculateSalary(in)
		assert.Equal(t, result.TotalAmount-result.TaxTotal-result.InsuranceTotal-in.DeductionOther, result.NetAmount)
	}
}
