package inquiry

import "context"

type InquiryRepository interface {
	Create(ctx context.Context, i Inquiry) (Inquiry, error)
	GetByID(ctx context.Context, id string) (Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	SetAnswer(ctx context.Context, id, answer string) error
}
