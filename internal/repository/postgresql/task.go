package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/task"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, company_id, title, body, status, position, assignee_id, due_date, created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	query := `
		INSERT INTO tasks (id, company_id, title, body, status, position, assignee_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.CompanyID, t.Title, t.Body, string(t.Status), t.Position, t.AssigneeID, t.DueDate,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) GetByID(ctx context.Context, companyID, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE company_id = $1 AND id = $2
	`

	t, err := scanTask(q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) ListByCompany(ctx context.Context, companyID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE company_id = $1
		ORDER BY status, position, created_at
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, companyID, id string, req task.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    body = COALESCE($4, body),
		    assignee_id = COALESCE($5, assignee_id),
		    due_date = COALESCE($6, due_date),
		    updated_at = NOW()
		WHERE company_id = $1 AND id = $2
	`, companyID, id, req.Title, req.Body, req.AssigneeID, req.DueDate)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// Move shifts the column siblings at or below the target position down by
// one, then drops the task into the slot. Runs inside one transaction via
// the ambient querier.
func (r *taskRepository) Move(ctx context.Context, companyID, id string, status task.Status, position int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE tasks
		SET position = position + 1, updated_at = NOW()
		WHERE company_id = $1 AND status = $2 AND position >= $3 AND id <> $4
	`, companyID, string(status), position, id)
	if err != nil {
		return fmt.Errorf("failed to shift task positions: %w", err)
	}

	tag, err := q.Exec(ctx, `
		UPDATE tasks
		SET status = $3, position = $4, updated_at = NOW()
		WHERE company_id = $1 AND id = $2
	`, companyID, id, string(status), position)
	if err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) NextPosition(ctx context.Context, companyID string, status task.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var next int
	err := q.QueryRow(ctx, `
		SELECT COALESCE(MAX(position) + 1, 0)
		FROM tasks
		WHERE company_id = $1 AND status = $2
	`, companyID, string(status)).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next task position: %w", err)
	}

	return next, nil
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var status string
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.Title, &t.Body, &status, &t.Position, &t.AssigneeID, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return task.Task{}, err
	}
	t.Status = task.Status(status)
	return t, nil
}
