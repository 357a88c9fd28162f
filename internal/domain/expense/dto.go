package expense

import "github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"

type CreateExpenseRequest struct {
	SpentAt  string `json:"spent_at"`
	Category string `json:"category"`
	Memo     string `json:"memo"`
	Amount   int64  `json:"amount"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.SpentAt) {
		errs = append(errs, validator.ValidationError{Field: "spent_at", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Category, Categories()) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "unknown category"})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	SpentAt     string  `json:"spent_at"`
	Category    string  `json:"category"`
	Memo        string  `json:"memo,omitempty"`
	Amount      int64   `json:"amount"`
	ReceiptPath *string `json:"receipt_path,omitempty"`
}

type CategoryTotalResponse struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

type MonthTotalsResponse struct {
	Month      string                  `json:"month"`
	Total      int64                   `json:"total"`
	Categories []CategoryTotalResponse `json:"categories"`
}
