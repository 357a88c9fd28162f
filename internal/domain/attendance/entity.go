package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
)

type Attendance struct {
	ID        string
	CompanyID string
	UserID    string
	WorkDate  string // YYYY-MM-DD
	ClockIn   time.Time
	ClockOut  *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthSummary aggregates one user's attendance for one month.
type MonthSummary struct {
	Month     string // YYYY-MM
	WorkDays  int
	LateCount int
}
