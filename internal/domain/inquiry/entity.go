package inquiry

import "time"

type Status string

const (
	StatusOpen     Status = "open"
	StatusAnswered Status = "answered"
)

type Inquiry struct {
	ID         string
	Name       string
	Email      string
	Company    string
	Message    string
	Status     Status
	Answer     *string
	AnsweredAt *time.Time
	CreatedAt  time.Time
}
