package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/attendance"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, company_id, user_id, work_date, clock_in, clock_out, status, created_at, updated_at`

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (id, company_id, user_id, work_date, clock_in, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.CompanyID, a.UserID, a.WorkDate, a.ClockIn, string(a.Status),
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetOpenByUserAndDate(ctx context.Context, companyID, userID, workDate string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE company_id = $1 AND user_id = $2 AND work_date = $3
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, companyID, userID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) SetClockOut(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = NOW(), updated_at = NOW()
		WHERE id = $1 AND clock_out IS NULL
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to clock out: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ListByMonth(ctx context.Context, companyID, userID, month string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE company_id = $1 AND user_id = $2 AND work_date LIKE $3 || '-%'
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, companyID, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) GetMonthSummary(ctx context.Context, companyID, userID, month string) (attendance.MonthSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'late')
		FROM attendances
		WHERE company_id = $1 AND user_id = $2 AND work_date LIKE $3 || '-%'
	`

	summary := attendance.MonthSummary{Month: month}
	err := q.QueryRow(ctx, query, companyID, userID, month).Scan(&summary.WorkDays, &summary.LateCount)
	if err != nil {
		return attendance.MonthSummary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return summary, nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var status string
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.UserID, &a.WorkDate, &a.ClockIn, &a.ClockOut, &status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	a.Status = attendance.Status(status)
	return a, nil
}
