package inquiry

import (
	"context"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/inquiry"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type InquiryServiceImpl struct {
	db          *database.DB
	inquiryRepo inquiry.InquiryRepository
}

func NewInquiryService(db *database.DB, inquiryRepo inquiry.InquiryRepository) inquiry.InquiryService {
	return &InquiryServiceImpl{
		db:          db,
		inquiryRepo: inquiryRepo,
	}
}

// Submit is the only unauthenticated write in the system, so it takes no
// claims from the context.
func (s *InquiryServiceImpl) Submit(ctx context.Context, req inquiry.CreateInquiryRequest) (inquiry.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return inquiry.InquiryResponse{}, err
	}

	created, err := s.inquiryRepo.Create(ctx, inquiry.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
		Status:  inquiry.StatusOpen,
	})
	if err != nil {
		return inquiry.InquiryResponse{}, err
	}

	return mapToInquiryResponse(created), nil
}

func (s *InquiryServiceImpl) List(ctx context.Context) ([]inquiry.InquiryResponse, error) {
	inquiries, err := s.inquiryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]inquiry.InquiryResponse, 0, len(inquiries))
	for _, i := range inquiries {
		result = append(result, mapToInquiryResponse(i))
	}
	return result, nil
}

func (s *InquiryServiceImpl) Answer(ctx context.Context, id string, req inquiry.AnswerInquiryRequest) (inquiry.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return inquiry.InquiryResponse{}, err
	}

	i, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return inquiry.InquiryResponse{}, err
	}
	if i.Status == inquiry.StatusAnswered {
		return inquiry.InquiryResponse{}, inquiry.ErrAlreadyAnswered
	}

	if err := s.inquiryRepo.SetAnswer(ctx, id, req.Answer); err != nil {
		return inquiry.InquiryResponse{}, err
	}

	answered, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return inquiry.InquiryResponse{}, err
	}

	return mapToInquiryResponse(answered), nil
}

func mapToInquiryResponse(i inquiry.Inquiry) inquiry.InquiryResponse {
	return inquiry.InquiryResponse{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Company:    i.Company,
		Message:    i.Message,
		Status:     string(i.Status),
		Answer:     i.Answer,
		AnsweredAt: i.AnsweredAt,
		CreatedAt:  i.CreatedAt,
	}
}
