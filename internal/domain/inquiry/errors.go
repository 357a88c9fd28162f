package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrAlreadyAnswered = errors.New("inquiry already answered")
)
