package attendance

import "time"

type AttendanceResponse struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	WorkDate string     `json:"work_date"`
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
	Status   string     `json:"status"`
}

type MonthSummaryResponse struct {
	Month     string `json:"month"`
	WorkDays  int    `json:"work_days"`
	LateCount int    `json:"late_count"`
}
