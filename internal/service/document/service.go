package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/document"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/storage"
)

// maxDocumentSize caps uploaded documents at 50 MiB.
const maxDocumentSize = 50 << 20

type DocumentServiceImpl struct {
	db           *database.DB
	documentRepo document.DocumentRepository
	fileStorage  storage.FileStorage
}

func NewDocumentService(db *database.DB, documentRepo document.DocumentRepository, fileStorage storage.FileStorage) document.DocumentService {
	return &DocumentServiceImpl{
		db:           db,
		documentRepo: documentRepo,
		fileStorage:  fileStorage,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return companyID, userID, nil
}

func (s *DocumentServiceImpl) Upload(ctx context.Context, name, contentType string, data []byte) (document.DocumentResponse, error) {
	if len(data) == 0 {
		return document.DocumentResponse{}, document.ErrEmptyFile
	}
	if len(data) > maxDocumentSize {
		return document.DocumentResponse{}, document.ErrFileTooLarge
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	id := uuid.New().String()
	path := fmt.Sprintf("documents/%s/%s%s", companyID, id, filepath.Ext(name))

	stored, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), path, contentType)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to store document: %w", err)
	}

	created, err := s.documentRepo.Create(ctx, document.Document{
		ID:          id,
		CompanyID:   companyID,
		UploadedBy:  userID,
		Name:        name,
		Path:        stored,
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		// The row failed, drop the orphaned file.
		_ = s.fileStorage.Delete(ctx, stored)
		return document.DocumentResponse{}, err
	}

	return mapToDocumentResponse(created), nil
}

func (s *DocumentServiceImpl) List(ctx context.Context) ([]document.DocumentResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]document.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		result = append(result, mapToDocumentResponse(d))
	}
	return result, nil
}

func (s *DocumentServiceImpl) Download(ctx context.Context, id string) (document.Document, io.ReadCloser, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return document.Document{}, nil, err
	}

	d, err := s.documentRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return document.Document{}, nil, err
	}

	reader, err := s.fileStorage.Download(ctx, d.Path)
	if err != nil {
		return document.Document{}, nil, fmt.Errorf("failed to read document: %w", err)
	}

	return d, reader, nil
}

func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	d, err := s.documentRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, companyID, id); err != nil {
		return err
	}

	// Best effort: the metadata row is already gone.
	_ = s.fileStorage.Delete(ctx, d.Path)

	return nil
}

func mapToDocumentResponse(d document.Document) document.DocumentResponse {
	return document.DocumentResponse{
		ID:          d.ID,
		Name:        d.Name,
		ContentType: d.ContentType,
		Size:        d.Size,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
	}
}
