package inquiry

import (
	"time"

	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

func (r *CreateInquiryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnswerInquiryRequest struct {
	Answer string `json:"answer"`
}

func (r *AnswerInquiryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Answer) {
		errs = append(errs, validator.ValidationError{Field: "answer", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InquiryResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Company    string     `json:"company,omitempty"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
