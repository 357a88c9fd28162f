package task

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/task"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type TaskServiceImpl struct {
	db       *database.DB
	taskRepo task.TaskRepository
}

func NewTaskService(db *database.DB, taskRepo task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{
		db:       db,
		taskRepo: taskRepo,
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

func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	// New tasks land at the bottom of the todo column.
	position, err := s.taskRepo.NextPosition(ctx, companyID, task.StatusTodo)
	if err != nil {
		return task.TaskResponse{}, err
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		CompanyID:  companyID,
		Title:      req.Title,
		Body:       req.Body,
		Status:     task.StatusTodo,
		Position:   position,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return mapToTaskResponse(created), nil
}

func (s *TaskServiceImpl) GetBoard(ctx context.Context) (task.Board, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return task.Board{}, err
	}

	tasks, err := s.taskRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return task.Board{}, err
	}

	var board task.Board
	for _, t := range tasks {
		resp := mapToTaskResponse(t)
		switch t.Status {
		case task.StatusTodo:
			board.Todo = append(board.Todo, resp)
		case task.StatusDoing:
			board.Doing = append(board.Doing, resp)
		case task.StatusDone:
			board.Done = append(board.Done, resp)
		}
	}
	return board, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.taskRepo.Update(ctx, companyID, id, req); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return mapToTaskResponse(t), nil
}

func (s *TaskServiceImpl) Move(ctx context.Context, id string, req task.MoveTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.taskRepo.Move(ctx, companyID, id, task.Status(req.Status), req.Position); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return mapToTaskResponse(t), nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.taskRepo.Delete(ctx, companyID, id)
}

func mapToTaskResponse(t task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		Body:       t.Body,
		Status:     string(t.Status),
		Position:   t.Position,
		AssigneeID: t.AssigneeID,
		DueDate:    t.DueDate,
	}
}
