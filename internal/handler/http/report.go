package http

import (
	"net/http"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/report"
	"github.com/offisbridge/backoffice-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetWaterfall(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) GetWaterfall(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.reportService.GetWaterfall(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
