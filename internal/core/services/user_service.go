package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/utils"
)

// UserService handles staff management within a funeral home.
type UserService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepositoryFacade, br portsrepo.BranchRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: ur, branchRepo: br}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// ResolveAuthContext loads a user's tenant scope. Called by the tenant
// middleware on every authenticated request.
func (s *UserService) ResolveAuthContext(ctx context.Context, userID string) (*domain.AuthContext, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.EstadoActivo {
		return nil, apperrors.ErrNotFound
	}

	branchIDs, err := s.branchRepo.ListBranchIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthContext{
		UserID:        user.UserID,
		FuneralHomeID: user.FuneralHomeID,
		Role:          user.Role,
		BranchIDs:     branchIDs,
	}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, authCtx domain.AuthContext, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Cross-tenant lookups look like missing rows, not forbidden ones.
	if user.FuneralHomeID != authCtx.FuneralHomeID {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, authCtx domain.AuthContext) ([]domain.User, error) {
	includeInactive := authCtx.Role == domain.RoleAdmin
	return s.userRepo.FindUsers(ctx, authCtx.FuneralHomeID, includeInactive)
}

func (s *UserService) CreateUser(ctx context.Context, authCtx domain.AuthContext, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password for new user")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		Email:         req.Email,
		FullName:      req.FullName,
		Role:          req.Role,
		PasswordHash:  &passwordHash,
		AuthProvider:  domain.ProviderLocal,
		EstadoActivo:  true,
		AuditFields:   NewAudit(authCtx.UserID, now),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	for _, branchID := range req.BranchIDs {
		if _, err := s.branchRepo.FindBranchByID(ctx, authCtx.FuneralHomeID, branchID); err != nil {
			return nil, apperrors.NewValidationFailedError("sucursal inexistente", err)
		}
		assignment := domain.UserBranch{UserID: user.UserID, BranchID: branchID, AssignedAt: now}
		if err := s.branchRepo.AssignUserToBranch(ctx, assignment); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, authCtx domain.AuthContext, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.GetUserByID(ctx, authCtx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	Touch(&user.AuditFields, authCtx.UserID, time.Now())

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	if req.BranchIDs != nil {
		if err := s.replaceBranchAssignments(ctx, authCtx, user.UserID, *req.BranchIDs); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// replaceBranchAssignments reconciles the user's branch set to exactly the
// requested IDs.
func (s *UserService) replaceBranchAssignments(ctx context.Context, authCtx domain.AuthContext, userID string, branchIDs []string) error {
	current, err := s.branchRepo.ListBranchIDsByUser(ctx, userID)
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(branchIDs))
	for _, id := range branchIDs {
		wanted[id] = true
	}
	for _, id := range current {
		if !wanted[id] {
			if err := s.branchRepo.RemoveUserFromBranch(ctx, userID, id); err != nil {
				return err
			}
		}
	}

	now := time.Now()
	for _, id := range branchIDs {
		if _, err := s.branchRepo.FindBranchByID(ctx, authCtx.FuneralHomeID, id); err != nil {
			return apperrors.NewValidationFailedError("sucursal inexistente", err)
		}
		assignment := domain.UserBranch{UserID: userID, BranchID: id, AssignedAt: now}
		if err := s.branchRepo.AssignUserToBranch(ctx, assignment); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserService) DeactivateUser(ctx context.Context, authCtx domain.AuthContext, userID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return err
	}
	if userID == authCtx.UserID {
		return apperrors.NewValidationFailedError("no puede desactivar su propia cuenta", nil)
	}
	return s.userRepo.MarkUserInactive(ctx, authCtx.FuneralHomeID, userID, authCtx.UserID)
}
