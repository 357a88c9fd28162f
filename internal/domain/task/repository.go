package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, companyID, id string) (Task, error)
	ListByCompany(ctx context.Context, companyID string) ([]Task, error)
	Update(ctx context.Context, companyID, id string, req UpdateTaskRequest) error
	Move(ctx context.Context, companyID, id string, status Status, position int) error
	Delete(ctx context.Context, companyID, id string) error
	NextPosition(ctx context.Context, companyID string, status Status) (int, error)
}
