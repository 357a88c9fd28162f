package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/offisbridge/backoffice-backend-go/internal/handler/http/response"
)

// maxSpreadsheetSize caps uploaded payroll workbooks at 20 MiB.
const maxSpreadsheetSize = 20 << 20

type PayrollHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	CreateRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	DeletePeriod(w http.ResponseWriter, r *http.Request)
	GetMonthSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== SPREADSHEET IMPORT ==========

// Import expects multipart form data: a `file` part with the workbook plus
// `pay_month` and `payroll_type` fields.
func (h *payrollHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSpreadsheetSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	payMonth := r.FormValue("pay_month")
	templateType := payroll.TemplateType(r.FormValue("payroll_type"))

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Spreadsheet file is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSpreadsheetSize))
	if err != nil {
		response.BadRequest(w, "Failed to read spreadsheet file", nil)
		return
	}

	result, err := h.payrollService.ImportSpreadsheet(r.Context(), payMonth, templateType, data)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll imported", result)
}

// ========== RECORDS ==========

func (h *payrollHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created", result)
}

func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	payMonth := r.URL.Query().Get("pay_month")

	result, err := h.payrollService.ListRecords(r.Context(), payMonth)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	payMonth := r.URL.Query().Get("pay_month")

	deleted, err := h.payrollService.DeletePeriod(r.Context(), payMonth)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period deleted", map[string]int64{"deleted": deleted})
}

func (h *payrollHandlerImpl) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	payMonth := r.URL.Query().Get("pay_month")

	result, err := h.payrollService.GetMonthSummary(r.Context(), payMonth)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
