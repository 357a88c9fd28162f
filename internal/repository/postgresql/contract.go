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

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) client.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, company_id, client_id, title, amount, start_date, end_date, status, created_at, updated_at`

func (r *contractRepository) Create(ctx context.Context, c client.Contract) (client.Contract, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query := `
		INSERT INTO contracts (id, company_id, client_id, title, amount, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID, c.CompanyID, c.ClientID, c.Title, c.Amount, c.StartDate, c.EndDate, string(c.Status),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return client.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return c, nil
}

func (r *contractRepository) GetByID(ctx context.Context, companyID, id string) (client.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE company_id = $1 AND id = $2
	`

	c, err := scanContract(q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Contract{}, client.ErrContractNotFound
		}
		return client.Contract{}, fmt.Errorf("failed to get contract: %w", err)
	}

	return c, nil
}

func (r *contractRepository) ListByCompany(ctx context.Context, companyID string) ([]client.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE company_id = $1
		ORDER BY start_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []client.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

func (r *contractRepository) UpdateStatus(ctx context.Context, companyID, id string, status client.ContractStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE contracts
		SET status = $3, updated_at = NOW()
		WHERE company_id = $1 AND id = $2
	`, companyID, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update contract status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrContractNotFound
	}

	return nil
}

// ActiveRevenueByMonth sums the amounts of contracts whose date range covers
// any day of the given month. Month is YYYY-MM.
func (r *contractRepository) ActiveRevenueByMonth(ctx context.Context, companyID, month string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM contracts
		WHERE company_id = $1
		  AND status IN ('active', 'done')
		  AND start_date <= $2 || '-31'
		  AND end_date >= $2 || '-01'
	`

	var total int64
	err := q.QueryRow(ctx, query, companyID, month).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum contract revenue: %w", err)
	}

	return total, nil
}

func scanContract(row pgx.Row) (client.Contract, error) {
	var c client.Contract
	var status string
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.ClientID, &c.Title, &c.Amount, &c.StartDate, &c.EndDate, &status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return client.Contract{}, err
	}
	c.Status = client.ContractStatus(status)
	return c, nil
}
