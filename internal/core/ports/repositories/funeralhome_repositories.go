package repositories

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// FuneralHomeReader defines read operations for tenant data
type FuneralHomeReader interface {
	// FindFuneralHomeByID retrieves a tenant by its ID.
	FindFuneralHomeByID(ctx context.Context, funeralHomeID string) (*domain.FuneralHome, error)
}

// FuneralHomeWriter defines write operations for tenant data
type FuneralHomeWriter interface {
	// UpdateFuneralHome updates tenant attributes (names, active flag).
	UpdateFuneralHome(ctx context.Context, home domain.FuneralHome) error
}

// SignupWriter creates a whole tenant in one database transaction: funeral
// home, main branch, admin user and the user-branch assignment. Either all
// rows exist afterwards or none do.
type SignupWriter interface {
	CreateTenant(ctx context.Context, home domain.FuneralHome, branch domain.Branch, admin domain.User, assignment domain.UserBranch) error
}

// FuneralHomeRepositoryFacade combines all tenant repository interfaces.
type FuneralHomeRepositoryFacade interface {
	FuneralHomeReader
	FuneralHomeWriter
	SignupWriter
}

// BranchReader defines read operations for branch data
type BranchReader interface {
	FindBranchByID(ctx context.Context, funeralHomeID, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context, funeralHomeID string, includeInactive bool) ([]domain.Branch, error)

	// ListBranchIDsByUser returns the branch IDs the user is assigned to.
	ListBranchIDsByUser(ctx context.Context, userID string) ([]string, error)
}

// BranchWriter defines write operations for branch data
type BranchWriter interface {
	SaveBranch(ctx context.Context, branch domain.Branch) error
	UpdateBranch(ctx context.Context, branch domain.Branch) error

	// MarkBranchInactive soft deletes a branch via its estado_activo flag.
	MarkBranchInactive(ctx context.Context, funeralHomeID, branchID, updatedBy string) error

	// AssignUserToBranch upserts a user-branch assignment.
	AssignUserToBranch(ctx context.Context, assignment domain.UserBranch) error

	// RemoveUserFromBranch deletes a user-branch assignment.
	RemoveUserFromBranch(ctx context.Context, userID, branchID string) error
}

// BranchRepositoryFacade combines all branch repository interfaces.
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}
