package client

import "time"

type Client struct {
	ID        string
	CompanyID string
	Name      string
	Contact   string
	Memo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContractStatus string

const (
	ContractDraft      ContractStatus = "draft"
	ContractActive     ContractStatus = "active"
	ContractDone       ContractStatus = "done"
	ContractTerminated ContractStatus = "terminated"
)

// contractTransitions encodes the allowed status moves:
// draft → active, active → done or terminated.
var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractDraft:  {ContractActive},
	ContractActive: {ContractDone, ContractTerminated},
}

func (s ContractStatus) CanTransitionTo(to ContractStatus) bool {
	for _, allowed := range contractTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Contract struct {
	ID        string
	CompanyID string
	ClientID  string
	Title     string
	Amount    int64 // KRW
	StartDate string
	EndDate   string
	Status    ContractStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
