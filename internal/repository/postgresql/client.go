package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/client"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query := `
		INSERT INTO clients (id, company_id, name, contact, memo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.ID, c.CompanyID, c.Name, c.Contact, c.Memo).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) GetByID(ctx context.Context, companyID, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, contact, memo, created_at, updated_at
		FROM clients
		WHERE company_id = $1 AND id = $2
	`

	var c client.Client
	err := q.QueryRow(ctx, query, companyID, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Contact, &c.Memo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) ListByCompany(ctx context.Context, companyID string) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, contact, memo, created_at, updated_at
		FROM clients
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Contact, &c.Memo, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *clientRepository) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clients WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}
