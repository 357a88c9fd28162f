package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, companyID, id string) (Client, error)
	ListByCompany(ctx context.Context, companyID string) ([]Client, error)
	Delete(ctx context.Context, companyID, id string) error
}

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, companyID, id string) (Contract, error)
	ListByCompany(ctx context.Context, companyID string) ([]Contract, error)
	UpdateStatus(ctx context.Context, companyID, id string, status ContractStatus) error
	ActiveRevenueByMonth(ctx context.Context, companyID, month string) (int64, error)
}
