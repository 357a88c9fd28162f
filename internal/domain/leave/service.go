package leave

import "context"

type LeaveService interface {
	Request(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	ListMine(ctx context.Context) ([]YearGroup, error)
}
