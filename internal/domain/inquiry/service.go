package inquiry

import "context"

type InquiryService interface {
	// Submit handles the unauthenticated public funnel.
	Submit(ctx context.Context, req CreateInquiryRequest) (InquiryResponse, error)
	List(ctx context.Context) ([]InquiryResponse, error)
	Answer(ctx context.Context, id string, req AnswerInquiryRequest) (InquiryResponse, error)
}
