package client

import "context"

type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	ListClients(ctx context.Context) ([]ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error

	CreateContract(ctx context.Context, req CreateContractRequest) (ContractResponse, error)
	ListContracts(ctx context.Context) ([]ContractResponse, error)
	TransitionContract(ctx context.Context, id string, status string) (ContractResponse, error)
}
