package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/document"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	query := `
		INSERT INTO documents (id, company_id, uploaded_by, name, path, content_type, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		d.ID, d.CompanyID, d.UploadedBy, d.Name, d.Path, d.ContentType, d.Size,
	).Scan(&d.CreatedAt)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return d, nil
}

func (r *documentRepository) GetByID(ctx context.Context, companyID, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, uploaded_by, name, path, content_type, size, created_at
		FROM documents
		WHERE company_id = $1 AND id = $2
	`

	var d document.Document
	err := q.QueryRow(ctx, query, companyID, id).Scan(
		&d.ID, &d.CompanyID, &d.UploadedBy, &d.Name, &d.Path, &d.ContentType, &d.Size, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return d, nil
}

func (r *documentRepository) ListByCompany(ctx context.Context, companyID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, uploaded_by, name, path, content_type, size, created_at
		FROM documents
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		var d document.Document
		err := rows.Scan(&d.ID, &d.CompanyID, &d.UploadedBy, &d.Name, &d.Path, &d.ContentType, &d.Size, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}

	return documents, rows.Err()
}

func (r *documentRepository) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}
