package expense

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/expense"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/storage"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
)

// maxReceiptSize caps uploaded receipt files at 10 MiB.
const maxReceiptSize = 10 << 20

type ExpenseServiceImpl struct {
	db          *database.DB
	expenseRepo expense.ExpenseRepository
	fileStorage storage.FileStorage
}

func NewExpenseService(db *database.DB, expenseRepo expense.ExpenseRepository, fileStorage storage.FileStorage) expense.ExpenseService {
	return &ExpenseServiceImpl{
		db:          db,
		expenseRepo: expenseRepo,
		fileStorage: fileStorage,
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

func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		CompanyID: companyID,
		UserID:    userID,
		SpentAt:   req.SpentAt,
		Category:  expense.Category(req.Category),
		Memo:      req.Memo,
		Amount:    req.Amount,
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return mapToExpenseResponse(created), nil
}

func (s *ExpenseServiceImpl) ListMonth(ctx context.Context, month string) ([]expense.ExpenseResponse, error) {
	if !validator.IsValidPayMonth(month) {
		return nil, fmt.Errorf("invalid month %q, want YYYY-MM", month)
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByMonth(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	result := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, mapToExpenseResponse(e))
	}
	return result, nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	e, err := s.expenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.Delete(ctx, companyID, id); err != nil {
		return err
	}

	// Best effort: the expense row is already gone.
	if e.ReceiptPath != nil {
		_ = s.fileStorage.Delete(ctx, *e.ReceiptPath)
	}

	return nil
}

func (s *ExpenseServiceImpl) AttachReceipt(ctx context.Context, id, filename string, data []byte) (expense.ExpenseResponse, error) {
	if len(data) > maxReceiptSize {
		return expense.ExpenseResponse{}, expense.ErrReceiptTooLarge
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if _, err := s.expenseRepo.GetByID(ctx, companyID, id); err != nil {
		return expense.ExpenseResponse{}, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	path := fmt.Sprintf("receipts/%s/%s%s", companyID, id, filepath.Ext(filename))

	stored, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), path, contentType)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to store receipt: %w", err)
	}

	if err := s.expenseRepo.SetReceiptPath(ctx, companyID, id, stored); err != nil {
		return expense.ExpenseResponse{}, err
	}

	e, err := s.expenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return mapToExpenseResponse(e), nil
}

func (s *ExpenseServiceImpl) GetMonthTotals(ctx context.Context, month string) (expense.MonthTotalsResponse, error) {
	if !validator.IsValidPayMonth(month) {
		return expense.MonthTotalsResponse{}, fmt.Errorf("invalid month %q, want YYYY-MM", month)
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return expense.MonthTotalsResponse{}, err
	}

	totals, err := s.expenseRepo.TotalsByMonth(ctx, companyID, month)
	if err != nil {
		return expense.MonthTotalsResponse{}, err
	}

	resp := expense.MonthTotalsResponse{Month: month}
	for _, t := range totals {
		resp.Total += t.Amount
		resp.Categories = append(resp.Categories, expense.CategoryTotalResponse{
			Category: string(t.Category),
			Amount:   t.Amount,
		})
	}
	return resp, nil
}

func mapToExpenseResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		SpentAt:     e.SpentAt,
		Category:    string(e.Category),
		Memo:        e.Memo,
		Amount:      e.Amount,
		ReceiptPath: e.ReceiptPath,
	}
}
