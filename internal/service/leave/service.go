package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/leave"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

// annualQuotaDays is the default yearly allowance applied when no per-user
// quota row exists. TODO: make this configurable per company once the
// company settings table lands.
const annualQuotaDays = 15

type LeaveServiceImpl struct {
	db        *database.DB
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:        db,
		leaveRepo: leaveRepo,
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

func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}
	days := int(end.Sub(start).Hours()/24) + 1

	if leave.Type(req.Type) == leave.TypeAnnual {
		used, err := s.leaveRepo.UsedDaysInYear(ctx, companyID, userID, start.Year())
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		if used+days > annualQuotaDays {
			return leave.LeaveResponse{}, leave.ErrQuotaExceeded
		}
	}

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		CompanyID: companyID,
		UserID:    userID,
		Type:      leave.Type(req.Type),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days:      days,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapToLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, leave.StatusApproved, leave.StatusPending)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, leave.StatusRejected, leave.StatusPending)
}

func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, leave.StatusCanceled, leave.StatusPending, leave.StatusApproved)
}

func (s *LeaveServiceImpl) transition(ctx context.Context, id string, to leave.Status, from ...leave.Status) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	l, err := s.leaveRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}

	allowed := false
	for _, st := range from {
		if l.Status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return leave.ErrInvalidTransition
	}

	return s.leaveRepo.UpdateStatus(ctx, companyID, id, to)
}

func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.YearGroup, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListByUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	return GroupByYear(leaves), nil
}

func mapToLeaveResponse(l leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Type:      string(l.Type),
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		Days:      l.Days,
		Reason:    l.Reason,
		Status:    string(l.Status),
	}
}
