package payroll

import "strconv"

// CellKind enum
type CellKind string

const (
	// CellNumber is a cell whose value is (or was parsed into) a finite number.
	CellNumber CellKind = "number"
	// CellText is a string cell for a text field.
	CellText CellKind = "text"
	// CellRaw preserves a value that was expected to be numeric but did not
	// parse. The original string is kept so later stages can still inspect it.
	CellRaw CellKind = "raw"
)

// Cell is the tagged value a spreadsheet cell normalizes into.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
}

func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Num: v} }
func TextCell(s string) Cell    { return Cell{Kind: CellText, Str: s} }
func RawCell(s string) Cell     { return Cell{Kind: CellRaw, Str: s} }

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	if c.Kind == CellNumber {
		return c.Num, true
	}
	return 0, false
}

// String renders the cell for display and for the name-column heuristics.
func (c Cell) String() string {
	if c.Kind == CellNumber {
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	}
	return c.Str
}

// RawRow is one spreadsheet row before header translation: surface-form
// column label mapped to whatever the sheet held in that cell.
type RawRow map[string]Cell

// NormalizedRow maps canonical fields to their (possibly still raw) values.
type NormalizedRow map[Field]Cell
