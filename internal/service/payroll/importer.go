package payroll

import (
	"strings"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
)

// Payroll template sheets reserve the first six rows for title and legend
// boilerplate. Row 6 (0-indexed) holds the column headers, data starts right
// below it.
const (
	headerRowIndex    = 6
	firstDataRowIndex = 7
)

// ExtractRawRows pairs each data row with the sheet's header labels. Rows
// above the header and blank header columns are ignored. Output order
// follows sheet order.
func ExtractRawRows(rows [][]string) []payroll.RawRow {
	if len(rows) <= headerRowIndex {
		return nil
	}

	headers := rows[headerRowIndex]

	var out []payroll.RawRow
	for _, cells := range rows[firstDataRowIndex:] {
		raw := make(payroll.RawRow, len(headers))
		for i, label := range headers {
			if strings.TrimSpace(label) == "" || i >= len(cells) {
				continue
			}
			raw[label] = payroll.TextCell(cells[i])
		}
		out = append(out, raw)
	}

	return out
}

// BuildRows runs the normalize -> filter chain over raw rows, preserving
// input order so repeated runs over the same sheet produce identical output.
func BuildRows(raws []payroll.RawRow) (kept []payroll.NormalizedRow, skipped int) {
	for _, raw := range raws {
		row := NormalizeRow(raw)
		if !KeepRow(row) {
			skipped++
			continue
		}
		kept = append(kept, row)
	}
	return kept, skipped
}

// recordFromRow maps a surviving normalized row onto a payroll record. The
// sheet's own totals are copied verbatim; the import path trusts them and
// does not re-derive or cross-check.
func recordFromRow(companyID, payMonth string, templateType payroll.TemplateType, row payroll.NormalizedRow) payroll.PayrollRecord {
	return payroll.PayrollRecord{
		CompanyID:    companyID,
		PayMonth:     payMonth,
		TemplateType: templateType,

		UserName: strings.TrimSpace(row[payroll.FieldUserName].String()),
		DeptName: strings.TrimSpace(row[payroll.FieldDeptName].String()),
		Position: strings.TrimSpace(row[payroll.FieldPosition].String()),

		BaseSalary:        rowAmount(row, payroll.FieldBaseSalary),
		NonTaxable:        rowAmount(row, payroll.FieldNonTaxable),
		FixedOTPay:        rowAmount(row, payroll.FieldFixedOTPay),
		AnnualLeavePay:    rowAmount(row, payroll.FieldAnnualLeavePay),
		MealAllowance:     rowAmount(row, payroll.FieldMealAllowance),
		CarAllowance:      rowAmount(row, payroll.FieldCarAllowance),
		ResearchAllowance: rowAmount(row, payroll.FieldResearchAllowance),
		Bonus:             rowAmount(row, payroll.FieldBonus),
		Allowance:         rowAmount(row, payroll.FieldAllowance),

		BaseWorkDays: int(rowAmount(row, payroll.FieldBaseWorkDays)),
		AbsentDays:   int(rowAmount(row, payroll.FieldAbsentDays)),

		IncomeTax:           rowAmount(row, payroll.FieldIncomeTax),
		LocalTax:            rowAmount(row, payroll.FieldLocalTax),
		NationalPension:     rowAmount(row, payroll.FieldNationalPension),
		HealthInsurance:     rowAmount(row, payroll.FieldHealthInsurance),
		EmploymentInsurance: rowAmount(row, payroll.FieldEmploymentInsurance),
		LongtermCare:        rowAmount(row, payroll.FieldLongtermCare),
		DeductionOther:      rowAmount(row, payroll.FieldDeductionOther),

		TotalAmount:    rowAmount(row, payroll.FieldTotalAmount),
		TotalDeduction: rowAmount(row, payroll.FieldTotalDeduction),
		NetAmount:      rowAmount(row, payroll.FieldNetAmount),
	}
}

// rowAmount reads a numeric field, defaulting to zero when the cell is
// absent or never parsed into a number.
func rowAmount(row payroll.NormalizedRow, field payroll.Field) int64 {
	v, ok := row[field].Number()
	if !ok {
		return 0
	}
	return int64(v)
}
