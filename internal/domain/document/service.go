package document

import (
	"context"
	"io"
)

type DocumentService interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (DocumentResponse, error)
	List(ctx context.Context) ([]DocumentResponse, error)
	Download(ctx context.Context, id string) (Document, io.ReadCloser, error)
	Delete(ctx context.Context, id string) error
}
