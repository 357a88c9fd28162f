package payroll

import (
	"regexp"
	"strings"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
)

// Spreadsheet exports routinely append one to three trailer rows below the
// last employee: grand totals, an export timestamp, a signature line. Nothing
// structural marks them, so KeepRow is the only defense. Each check below is
// an independent sufficient reason to discard.

var (
	datePattern = regexp.MustCompile(`^\d{4}[-./]\d{1,2}[-./]\d{1,2}$`)
	timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
)

// Subtotal / grand-total row markers as they appear in the name column.
var summaryKeywords = []string{"합계", "총계"}

// KeepRow decides whether a normalized row is genuine payroll data.
func KeepRow(row payroll.NormalizedRow) bool {
	name := strings.TrimSpace(row[payroll.FieldUserName].String())

	// A real employee row always carries a name.
	if name == "" {
		return false
	}

	// Subtotal and grand-total trailer rows.
	for _, kw := range summaryKeywords {
		if strings.Contains(name, kw) {
			return false
		}
	}

	// Footer timestamps leak into the name column when the trailer row has
	// no leading label.
	if datePattern.MatchString(name) || timePattern.MatchString(name) {
		return false
	}

	// A genuine row carries at least one positive monetary figure; all-zero
	// rows are sheet noise.
	if amountMissing(row, payroll.FieldTotalAmount) && amountMissing(row, payroll.FieldBaseSalary) {
		return false
	}

	return true
}

// amountMissing reports whether the field is absent, non-numeric, or zero.
func amountMissing(row payroll.NormalizedRow, field payroll.Field) bool {
	cell, ok := row[field]
	if !ok {
		return true
	}
	v, ok := cell.Number()
	return !ok || v == 0
}
