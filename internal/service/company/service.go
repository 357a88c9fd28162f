package company

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/company"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type CompanyServiceImpl struct {
	db          *database.DB
	companyRepo company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:          db,
		companyRepo: companyRepo,
	}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:     req.Name,
		Username: req.Username,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(created), nil
}

func (s *CompanyServiceImpl) GetMy(ctx context.Context) (company.CompanyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(c), nil
}

func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, mapToCompanyResponse(c))
	}
	return result, nil
}

func (s *CompanyServiceImpl) UpdateMy(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.companyRepo.Update(ctx, companyID, req); err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(c), nil
}

func mapToCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Username: c.Username,
		LogoPath: c.LogoPath,
	}
}
