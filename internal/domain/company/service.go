package company

import "context"

type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetMy(ctx context.Context) (CompanyResponse, error)
	List(ctx context.Context) ([]CompanyResponse, error)
	UpdateMy(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
}
