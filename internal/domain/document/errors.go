package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileTooLarge     = errors.New("document file too large")
	ErrEmptyFile        = errors.New("document file is empty")
)
