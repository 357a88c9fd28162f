package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/inquiry"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type inquiryRepository struct {
	db *database.DB
}

func NewInquiryRepository(db *database.DB) inquiry.InquiryRepository {
	return &inquiryRepository{db: db}
}

const inquiryColumns = `id, name, email, company, message, status, answer, answered_at, created_at`

func (r *inquiryRepository) Create(ctx context.Context, i inquiry.Inquiry) (inquiry.Inquiry, error) {
	q := GetQuerier(ctx, r.db)

	if i.ID == "" {
		i.ID = uuid.New().String()
	}

	query := `
		INSERT INTO inquiries (id, name, email, company, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		i.ID, i.Name, i.Email, i.Company, i.Message, string(i.Status),
	).Scan(&i.CreatedAt)
	if err != nil {
		return inquiry.Inquiry{}, fmt.Errorf("failed to create inquiry: %w", err)
	}

	return i, nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id string) (inquiry.Inquiry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		WHERE id = $1
	`

	i, err := scanInquiry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inquiry.Inquiry{}, inquiry.ErrInquiryNotFound
		}
		return inquiry.Inquiry{}, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return i, nil
}

func (r *inquiryRepository) List(ctx context.Context) ([]inquiry.Inquiry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []inquiry.Inquiry
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, i)
	}

	return inquiries, rows.Err()
}

func (r *inquiryRepository) SetAnswer(ctx context.Context, id, answer string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE inquiries
		SET answer = $2, status = 'answered', answered_at = NOW()
		WHERE id = $1
	`, id, answer)
	if err != nil {
		return fmt.Errorf("failed to answer inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inquiry.ErrInquiryNotFound
	}

	return nil
}

func scanInquiry(row pgx.Row) (inquiry.Inquiry, error) {
	var i inquiry.Inquiry
	var status string
	err := row.Scan(
		&i.ID, &i.Name, &i.Email, &i.Company, &i.Message, &status, &i.Answer, &i.AnsweredAt,
		&i.CreatedAt,
	)
	if err != nil {
		return inquiry.Inquiry{}, err
	}
	i.Status = inquiry.Status(status)
	return i, nil
}
