package client

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/client"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type ClientServiceImpl struct {
	db           *database.DB
	clientRepo   client.ClientRepository
	contractRepo client.ContractRepository
}

func NewClientService(db *database.DB, clientRepo client.ClientRepository, contractRepo client.ContractRepository) client.ClientService {
	return &ClientServiceImpl{
		db:           db,
		clientRepo:   clientRepo,
		contractRepo: contractRepo,
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

// ========== CLIENTS ==========

func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		CompanyID: companyID,
		Name:      req.Name,
		Contact:   req.Contact,
		Memo:      req.Memo,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return mapToClientResponse(created), nil
}

func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]client.ClientResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, mapToClientResponse(c))
	}
	return result, nil
}

func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.clientRepo.Delete(ctx, companyID, id)
}

// ========== CONTRACTS ==========

func (s *ClientServiceImpl) CreateContract(ctx context.Context, req client.CreateContractRequest) (client.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ContractResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return client.ContractResponse{}, err
	}

	// The client ref must belong to the same company.
	if _, err := s.clientRepo.GetByID(ctx, companyID, req.ClientID); err != nil {
		return client.ContractResponse{}, err
	}

	created, err := s.contractRepo.Create(ctx, client.Contract{
		CompanyID: companyID,
		ClientID:  req.ClientID,
		Title:     req.Title,
		Amount:    req.Amount,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    client.ContractDraft,
	})
	if err != nil {
		return client.ContractResponse{}, err
	}

	return mapToContractResponse(created), nil
}

func (s *ClientServiceImpl) ListContracts(ctx context.Context) ([]client.ContractResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]client.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		result = append(result, mapToContractResponse(c))
	}
	return result, nil
}

func (s *ClientServiceImpl) TransitionContract(ctx context.Context, id string, status string) (client.ContractResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return client.ContractResponse{}, err
	}

	c, err := s.contractRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return client.ContractResponse{}, err
	}

	to := client.ContractStatus(status)
	if !c.Status.CanTransitionTo(to) {
		return client.ContractResponse{}, client.ErrInvalidTransition
	}

	if err := s.contractRepo.UpdateStatus(ctx, companyID, id, to); err != nil {
		return client.ContractResponse{}, err
	}
	c.Status = to

	return mapToContractResponse(c), nil
}

// ========== HELPERS ==========

func mapToClientResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Contact: c.Contact,
		Memo:    c.Memo,
	}
}

func mapToContractResponse(c client.Contract) client.ContractResponse {
	return client.ContractResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Title:     c.Title,
		Amount:    c.Amount,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Status:    string(c.Status),
	}
}
