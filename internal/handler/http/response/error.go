package response

import (
	"errors"
	"net/http"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/attendance"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/auth"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/client"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/company"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/document"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/expense"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/inquiry"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/leave"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/task"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/user"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth / user domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrUsernameExists):
		Conflict(w, "Company username already taken")
	case errors.Is(err, company.ErrInvalidUsername):
		BadRequest(w, "Invalid company username", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoValidRows):
		BadRequest(w, "Spreadsheet contains no valid payroll rows", nil)
	case errors.Is(err, payroll.ErrInvalidFileFormat):
		BadRequest(w, "File is not a readable spreadsheet", nil)
	case errors.Is(err, payroll.ErrInvalidTemplateType):
		BadRequest(w, "Unknown payroll template type", nil)
	case errors.Is(err, payroll.ErrInvalidPayMonth):
		BadRequest(w, "Pay month must be YYYY-MM", nil)
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No open attendance for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrQuotaExceeded):
		BadRequest(w, "Annual leave quota exceeded", nil)
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Leave already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrInvalidCategory):
		BadRequest(w, "Unknown expense category", nil)
	case errors.Is(err, expense.ErrReceiptTooLarge):
		BadRequest(w, "Receipt file too large", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidStatus):
		BadRequest(w, "Unknown task status", nil)

	// Client / contract domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, client.ErrInvalidTransition):
		Conflict(w, "Contract status transition not allowed")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, "Document file too large", nil)
	case errors.Is(err, document.ErrEmptyFile):
		BadRequest(w, "Document file is empty", nil)

	// Inquiry domain errors
	case errors.Is(err, inquiry.ErrInquiryNotFound):
		NotFound(w, "Inquiry not found")
	case errors.Is(err, inquiry.ErrAlreadyAnswered):
		Conflict(w, "Inquiry already answered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
