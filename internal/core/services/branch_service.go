package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// BranchService handles branch management within a funeral home.
type BranchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new BranchService.
func NewBranchService(br portsrepo.BranchRepositoryFacade) portssvc.BranchSvcFacade {
	return &BranchService{branchRepo: br}
}

var _ portssvc.BranchSvcFacade = (*BranchService)(nil)

func (s *BranchService) GetBranchByID(ctx context.Context, authCtx domain.AuthContext, branchID string) (*domain.Branch, error) {
	return s.branchRepo.FindBranchByID(ctx, authCtx.FuneralHomeID, branchID)
}

func (s *BranchService) ListBranches(ctx context.Context, authCtx domain.AuthContext) ([]domain.Branch, error) {
	includeInactive := authCtx.Role == domain.RoleAdmin
	return s.branchRepo.ListBranches(ctx, authCtx.FuneralHomeID, includeInactive)
}

func (s *BranchService) CreateBranch(ctx context.Context, authCtx domain.AuthContext, req dto.CreateBranchRequest) (*domain.Branch, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	branch := domain.Branch{
		BranchID:      uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		EstadoActivo:  true,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		s.LogError(ctx, err, "Failed to save branch", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Branch created", slog.String("branch_id", branch.BranchID))
	return &branch, nil
}

func (s *BranchService) UpdateBranch(ctx context.Context, authCtx domain.AuthContext, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	branch, err := s.branchRepo.FindBranchByID(ctx, authCtx.FuneralHomeID, branchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	Touch(&branch.AuditFields, authCtx.UserID, time.Now())

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		s.LogError(ctx, err, "Failed to update branch", slog.String("branch_id", branchID))
		return nil, err
	}
	return branch, nil
}

func (s *BranchService) DeactivateBranch(ctx context.Context, authCtx domain.AuthContext, branchID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.branchRepo.MarkBranchInactive(ctx, authCtx.FuneralHomeID, branchID, authCtx.UserID)
}
