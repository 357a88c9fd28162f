package attendance

import "errors"

var (
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNotClockedIn       = errors.New("no open attendance for today")
	ErrAttendanceNotFound = errors.New("attendance not found")
)
