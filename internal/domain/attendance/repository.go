package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetOpenByUserAndDate(ctx context.Context, companyID, userID, workDate string) (Attendance, error)
	SetClockOut(ctx context.Context, id string) (Attendance, error)
	ListByMonth(ctx context.Context, companyID, userID, month string) ([]Attendance, error)
	GetMonthSummary(ctx context.Context, companyID, userID, month string) (MonthSummary, error)
}
