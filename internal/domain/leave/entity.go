package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

type Type string

const (
	TypeAnnual Type = "annual"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
)

type Leave struct {
	ID        string
	CompanyID string
	UserID    string
	Type      Type
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Days      int
	Reason    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quota is the per-user annual leave allowance for one year.
type Quota struct {
	UserID string
	Year   int
	Total  int
	Used   int
}

func (q Quota) Remaining() int {
	return q.Total - q.Used
}
