package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, d Document) (Document, error)
	GetByID(ctx context.Context, companyID, id string) (Document, error)
	ListByCompany(ctx context.Context, companyID string) ([]Document, error)
	Delete(ctx context.Context, companyID, id string) error
}
