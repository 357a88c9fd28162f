package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/inquiry"
	"github.com/offisbridge/backoffice-backend-go/internal/handler/http/response"
)

type InquiryHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Answer(w http.ResponseWriter, r *http.Request)
}

type inquiryHandlerImpl struct {
	inquiryService inquiry.InquiryService
}

func NewInquiryHandler(inquiryService inquiry.InquiryService) InquiryHandler {
	return &inquiryHandlerImpl{inquiryService: inquiryService}
}

func (h *inquiryHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req inquiry.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.inquiryService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Inquiry received", result)
}

func (h *inquiryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.inquiryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *inquiryHandlerImpl) Answer(w http.ResponseWriter, r *http.Request) {
	var req inquiry.AnswerInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.inquiryService.Answer(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
