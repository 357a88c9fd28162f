package task

import "github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"

type CreateTaskRequest struct {
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	AssigneeID *string `json:"assignee_id,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.DueDate != nil && !validator.IsValidDate(*r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	Title      *string `json:"title,omitempty"`
	Body       *string `json:"body,omitempty"`
	AssigneeID *string `json:"assignee_id,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
}

type MoveTaskRequest struct {
	Status   string `json:"status"`
	Position int    `json:"position"`
}

func (r *MoveTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of todo, doing, done"})
	}
	if r.Position < 0 {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Body       string  `json:"body,omitempty"`
	Status     string  `json:"status"`
	Position   int     `json:"position"`
	AssigneeID *string `json:"assignee_id,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
}

// Board is the full kanban view, one ordered column per status.
type Board struct {
	Todo  []TaskResponse `json:"todo"`
	Doing []TaskResponse `json:"doing"`
	Done  []TaskResponse `json:"done"`
}
