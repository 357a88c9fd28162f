package payroll

import (
	"math"
	"strconv"
	"strings"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
)

// NormalizeRow translates one raw spreadsheet row into canonical fields.
// Columns whose header is not in the alias table are dropped without error:
// template revisions add and remove decorative columns all the time and an
// upload must survive that. For numeric fields, string cells are parsed;
// values that do not parse are kept raw instead of being zeroed so the row
// filter can still recognize anomalies like footer timestamps.
//
// Pure function: no side effects, never fails, output may be empty.
func NormalizeRow(raw payroll.RawRow) payroll.NormalizedRow {
	out := make(payroll.NormalizedRow, len(raw))

	for label, cell := range raw {
		field, ok := TranslateHeader(label)
		if !ok {
			continue
		}

		if field.Kind() == payroll.KindNumeric {
			out[field] = coerceNumeric(cell)
			continue
		}

		out[field] = cell
	}

	return out
}

func coerceNumeric(cell payroll.Cell) payroll.Cell {
	if _, ok := cell.Number(); ok {
		return cell
	}

	if v, ok := parseNumber(cell.String()); ok {
		return payroll.NumberCell(v)
	}

	return payroll.RawCell(cell.String())
}

// parseNumber parses a numeric-looking cell string. Thousands separators and
// surrounding whitespace are tolerated since formatted exports carry them.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
