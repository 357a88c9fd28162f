package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/attendance"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

// lateThreshold marks a clock-in as late when it lands after 09:00 local time.
const lateThreshold = 9 * time.Hour

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return companyID, userID, nil
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	workDate := now.Format("2006-01-02")

	_, err = s.attendanceRepo.GetOpenByUserAndDate(ctx, companyID, userID, workDate)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if now.Sub(midnight) > lateThreshold {
		status = attendance.StatusLate
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		CompanyID: companyID,
		UserID:    userID,
		WorkDate:  workDate,
		ClockIn:   now,
		Status:    status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(created), nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	workDate := s.now().Format("2006-01-02")

	open, err := s.attendanceRepo.GetOpenByUserAndDate(ctx, companyID, userID, workDate)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if open.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	closed, err := s.attendanceRepo.SetClockOut(ctx, open.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(closed), nil
}

func (s *AttendanceServiceImpl) ListMonth(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidPayMonth(month) {
		return nil, fmt.Errorf("invalid month %q, want YYYY-MM", month)
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, companyID, userID, month)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, mapToAttendanceResponse(a))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) GetMonthSummary(ctx context.Context, month string) (attendance.MonthSummaryResponse, error) {
	if !validator.IsValidPayMonth(month) {
		return attendance.MonthSummaryResponse{}, fmt.Errorf("invalid month %q, want YYYY-MM", month)
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	summary, err := s.attendanceRepo.GetMonthSummary(ctx, companyID, userID, month)
	if err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	return attendance.MonthSummaryResponse{
		Month:     summary.Month,
		WorkDays:  summary.WorkDays,
		LateCount: summary.LateCount,
	}, nil
}

func mapToAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		WorkDate: a.WorkDate,
		ClockIn:  a.ClockIn,
		ClockOut: a.ClockOut,
		Status:   string(a.Status),
	}
}
