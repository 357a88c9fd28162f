package attendance

import "context"

type AttendanceService interface {
	ClockIn(ctx context.Context) (AttendanceResponse, error)
	ClockOut(ctx context.Context) (AttendanceResponse, error)
	ListMonth(ctx context.Context, month string) ([]AttendanceResponse, error)
	GetMonthSummary(ctx context.Context, month string) (MonthSummaryResponse, error)
}
