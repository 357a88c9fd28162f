package task

import "time"

type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

func Statuses() []string {
	return []string{string(StatusTodo), string(StatusDoing), string(StatusDone)}
}

type Task struct {
	ID         string
	CompanyID  string
	Title      string
	Body       string
	Status     Status
	Position   int
	AssigneeID *string
	DueDate    *string // YYYY-MM-DD
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
