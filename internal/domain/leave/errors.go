package leave

import "errors"

var (
	ErrLeaveNotFound     = errors.New("leave not found")
	ErrQuotaExceeded     = errors.New("annual leave quota exceeded")
	ErrInvalidTransition = errors.New("invalid leave status transition")
	ErrInvalidDateRange  = errors.New("invalid leave date range")
)
