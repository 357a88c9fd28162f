package payroll

import "errors"

var (
	// ErrNoValidRows means every candidate data row was discarded by the row
	// filter; the upload carried nothing importable.
	ErrNoValidRows = errors.New("no valid payroll rows to import")
	// ErrInvalidFileFormat means the upload could not be parsed as a workbook.
	ErrInvalidFileFormat = errors.New("file is not a valid spreadsheet")

	ErrInvalidTemplateType = errors.New("invalid payroll template type")
	ErrInvalidPayMonth     = errors.New("invalid pay month, expected YYYY-MM")
	ErrRecordNotFound      = errors.New("payroll record not found")
)
