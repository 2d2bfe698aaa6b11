package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// FuneralHomeSvcFacade defines operations on the caller's own funeral home.
type FuneralHomeSvcFacade interface {
	// GetFuneralHome returns the caller's funeral home.
	GetFuneralHome(ctx context.Context, authCtx domain.AuthContext) (*domain.FuneralHome, error)
}

// BranchReaderSvc defines read operations for branches.
type BranchReaderSvc interface {
	// GetBranchByID retrieves a branch within the caller's funeral home.
	GetBranchByID(ctx context.Context, authCtx domain.AuthContext, branchID string) (*domain.Branch, error)

	// ListBranches retrieves the branches of the caller's funeral home.
	ListBranches(ctx context.Context, authCtx domain.AuthContext) ([]domain.Branch, error)
}

// BranchWriterSvc defines write operations for branches. Admin only.
type BranchWriterSvc interface {
	// CreateBranch adds a branch to the caller's funeral home.
	CreateBranch(ctx context.Context, authCtx domain.AuthContext, req dto.CreateBranchRequest) (*domain.Branch, error)

	// UpdateBranch updates a branch.
	UpdateBranch(ctx context.Context, authCtx domain.AuthContext, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error)

	// DeactivateBranch marks a branch inactive (soft delete).
	DeactivateBranch(ctx context.Context, authCtx domain.AuthContext, branchID string) error
}

// BranchSvcFacade combines all branch-related service interfaces.
type BranchSvcFacade interface {
	BranchReaderSvc
	BranchWriterSvc
}
