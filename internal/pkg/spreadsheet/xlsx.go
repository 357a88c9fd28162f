package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSheet extracts every row of the sheet at the given index from XLSX
// bytes. Cell values are returned unformatted, so numeric cells come back
// without thousands separators or currency formatting applied.
func ReadSheet(data []byte, sheetIndex int) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	name := file.GetSheetName(sheetIndex)
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheet at index %d", sheetIndex)
	}

	rows, err := file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	return rows, nil
}
