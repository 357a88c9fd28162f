package leave

import (
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TypeAnnual), string(TypeSick), string(TypeUnpaid)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of annual, sick, unpaid"})
	}
	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status"`
}

// YearGroup is one bucket of the by-year leave view.
type YearGroup struct {
	Year     int             `json:"year"`
	UsedDays int             `json:"used_days"`
	Leaves   []LeaveResponse `json:"leaves"`
}
