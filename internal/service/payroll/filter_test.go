package payroll

import (
	"testing"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func employeeRow(name string) payroll.NormalizedRow {
	return payroll.NormalizedRow{
		payroll.FieldUserName:   payroll.TextCell(name),
		payroll.FieldBaseSalary: payroll.NumberCell(3000000),
	}
}

func TestKeepRow_DropsEmptyName(t *testing.T) {
	t.Parallel()

	assert.False(t, KeepRow(payroll.NormalizedRow{}))
	assert.False(t, KeepRow(employeeRow("")))
	assert.False(t, KeepRow(employeeRow("   ")))
}

func TestKeepRow_DropsSummaryRows(t *testing.T) {
	t.Parallel()

	assert.False(t, KeepRow(employeeRow("합계")))
	assert.False(t, KeepRow(employeeRow("부서합계")))
	assert.False(t, KeepRow(employeeRow("총계")))
	assert.False(t, KeepRow(employeeRow("월별 총계 (12월)")))
}

func TestKeepRow_DropsFooterTimestamps(t *testing.T) {
	t.Parallel()

	assert.False(t, KeepRow(employeeRow("2025-12-27")))
	assert.False(t, KeepRow(employeeRow("2025.1.3")))
	assert.False(t, KeepRow(employeeRow("2025/12/27")))
	assert.False(t, KeepRow(employeeRow("14:30:00")))
	assert.False(t, KeepRow(employeeRow("9:05:12")))

	// Dates embedded in longer strings are names, not footers.
	assert.True(t, KeepRow(employeeRow("출력 2025-12-27")))
}

func TestKeepRow_DropsRowsWithoutAmounts(t *testing.T) {
	t.Parallel()

	assert.False(t, KeepRow(payroll.NormalizedRow{
		payroll.FieldUserName:    payroll.TextCell("김철수"),
		payroll.FieldTotalAmount: payroll.NumberCell(0),
		payroll.FieldBaseSalary:  payroll.NumberCell(0),
	}))

	// Name only, no amount columns at all.
	assert.False(t, KeepRow(payroll.NormalizedRow{
		payroll.FieldUserName: payroll.TextCell("김철수"),
	}))

	// A raw, unparsed amount does not count as a monetary figure.
	assert.False(t, KeepRow(payroll.NormalizedRow{
		payroll.FieldUserName:   payroll.TextCell("김철수"),
		payroll.FieldBaseSalary: payroll.RawCell("N/A"),
	}))

	assert.True(t, KeepRow(payroll.NormalizedRow{
		payroll.FieldUserName:    payroll.TextCell("김철수"),
		payroll.FieldTotalAmount: payroll.NumberCell(0),
		payroll.FieldBaseSalary:  payroll.NumberCell(3000000),
	}))

	assert.True(t, KeepRow(payroll.NormalizedRow{
		payroll.FieldUserName:    payroll.TextCell("김철수"),
		payroll.FieldTotalAmount: payroll.NumberCell(3150000),
	}))
}
