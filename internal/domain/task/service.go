package task

import "context"

type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	GetBoard(ctx context.Context) (Board, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	Move(ctx context.Context, id string, req MoveTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}
