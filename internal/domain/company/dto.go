package company

import "github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"

type CreateCompanyRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidCompanyUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 chars of letters, digits, '.', '_' or '-'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name,omitempty"`
	LogoPath *string `json:"logo_path,omitempty"`
}

type CompanyResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	LogoPath *string `json:"logo_path,omitempty"`
}
