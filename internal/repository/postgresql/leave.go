package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/leave"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, company_id, user_id, type, start_date, end_date, days, reason, status, created_at, updated_at`

func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leaves (id, company_id, user_id, type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.CompanyID, l.UserID, string(l.Type), l.StartDate, l.EndDate, l.Days, l.Reason, string(l.Status),
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, companyID, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE company_id = $1 AND id = $2
	`

	l, err := scanLeave(q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, companyID, userID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE company_id = $1 AND user_id = $2
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, companyID, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leaves
		SET status = $3, updated_at = NOW()
		WHERE company_id = $1 AND id = $2
	`, companyID, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepository) UsedDaysInYear(ctx context.Context, companyID, userID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leaves
		WHERE company_id = $1 AND user_id = $2
		  AND type = 'annual' AND status = 'approved'
		  AND start_date LIKE $3 || '-%'
	`

	var used int
	err := q.QueryRow(ctx, query, companyID, userID, fmt.Sprintf("%04d", year)).Scan(&used)
	if err != nil {
		return 0, fmt.Errorf("failed to sum used leave days: %w", err)
	}

	return used, nil
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	var typ, status string
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.UserID, &typ, &l.StartDate, &l.EndDate, &l.Days, &l.Reason, &status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, err
	}
	l.Type = leave.Type(typ)
	l.Status = leave.Status(status)
	return l, nil
}
