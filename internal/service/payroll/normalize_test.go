package payroll

import (
	"testing"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateHeader_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	for alias, want := range headerAliases {
		field, ok := TranslateHeader("  " + alias + "  ")
		require.True(t, ok, "alias %q should translate", alias)
		assert.Equal(t, want, field)
	}
}

func TestTranslateHeader_UnknownLabel(t *testing.T) {
	t.Parallel()

	_, ok := TranslateHeader("비고")
	assert.False(t, ok)
	_, ok = TranslateHeader("")
	assert.False(t, ok)
}

func TestNormalizeRow_DropsUnknownColumns(t *testing.T) {
	t.Parallel()

	row := NormalizeRow(payroll.RawRow{
		"성명":     payroll.TextCell("김철수"),
		"미지정컬럼":  payroll.TextCell("anything"),
		"서명":     payroll.TextCell(""),
	})

	assert.Len(t, row, 1)
	assert.Equal(t, "김철수", row[payroll.FieldUserName].String())
}

func TestNormalizeRow_KeepsNumericCells(t *testing.T) {
	t.Parallel()

	row := NormalizeRow(payroll.RawRow{
		"급여": payroll.NumberCell(3000000),
	})

	v, ok := row[payroll.FieldBaseSalary].Number()
	require.True(t, ok)
	assert.Equal(t, float64(3000000), v)
}

func TestNormalizeRow_ParsesNumericStrings(t *testing.T) {
	t.Parallel()

	row := NormalizeRow(payroll.RawRow{
		"급여":   payroll.TextCell("3,000,000"),
		"소득세":  payroll.TextCell(" 50000 "),
	})

	v, ok := row[payroll.FieldBaseSalary].Number()
	require.True(t, ok)
	assert.Equal(t, float64(3000000), v)

	v, ok = row[payroll.FieldIncomeTax].Number()
	require.True(t, ok)
	assert.Equal(t, float64(50000), v)
}

func TestNormalizeRow_UnparsableNumericValuePassesThrough(t *testing.T) {
	t.Parallel()

	row := NormalizeRow(payroll.RawRow{
		"급여": payroll.TextCell("N/A"),
	})

	cell := row[payroll.FieldBaseSalary]
	assert.Equal(t, payroll.CellRaw, cell.Kind)
	assert.Equal(t, "N/A", cell.String())
	_, ok := cell.Number()
	assert.False(t, ok)
}

func TestNormalizeRow_TextFieldCopiedUnchanged(t *testing.T) {
	t.Parallel()

	row := NormalizeRow(payroll.RawRow{
		"부서": payroll.TextCell("경영지원팀"),
		"직급": payroll.NumberCell(3),
	})

	assert.Equal(t, "경영지원팀", row[payroll.FieldDeptName].String())

	// Numeric cells in text columns stay numbers rather than being
	// stringified.
	v, ok := row[payroll.FieldPosition].Number()
	assert.True(t, ok)
	assert.Equal(t, float64(3), v)
}

func TestNormalizeRow_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NormalizeRow(payroll.RawRow{}))
}
