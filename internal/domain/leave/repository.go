package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, companyID, id string) (Leave, error)
	ListByUser(ctx context.Context, companyID, userID string) ([]Leave, error)
	UpdateStatus(ctx context.Context, companyID, id string, status Status) error
	UsedDaysInYear(ctx context.Context, companyID, userID string, year int) (int, error)
}
