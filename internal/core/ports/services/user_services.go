package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user within the caller's funeral home.
	GetUserByID(ctx context.Context, authCtx domain.AuthContext, userID string) (*domain.User, error)

	// ListUsers retrieves the staff of the caller's funeral home.
	ListUsers(ctx context.Context, authCtx domain.AuthContext) ([]domain.User, error)

	// ResolveAuthContext loads the tenant context of an authenticated user.
	// Used by the tenant middleware on every request.
	ResolveAuthContext(ctx context.Context, userID string) (*domain.AuthContext, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser adds a staff member to the caller's funeral home. Admin only.
	CreateUser(ctx context.Context, authCtx domain.AuthContext, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates a staff member. Admin only.
	UpdateUser(ctx context.Context, authCtx domain.AuthContext, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeactivateUser marks a user inactive (soft delete). Admin only.
	DeactivateUser(ctx context.Context, authCtx domain.AuthContext, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
