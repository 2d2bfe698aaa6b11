package services

import (
	"context"
	"errors"
	"fmt"
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

// AuthService handles signup and the public login flows.
type AuthService struct {
	BaseService
	funeralHomeRepo portsrepo.FuneralHomeRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	tokenSvc        portssvc.TokenSvcFacade
	googleSvc       portssvc.GoogleOAuthSvcFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(fhr portsrepo.FuneralHomeRepositoryFacade, ur portsrepo.UserRepositoryFacade, ts portssvc.TokenSvcFacade, gs portssvc.GoogleOAuthSvcFacade) portssvc.AuthSvcFacade {
	return &AuthService{
		funeralHomeRepo: fhr,
		userRepo:        ur,
		tokenSvc:        ts,
		googleSvc:       gs,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Signup provisions the funeral home, its main branch and the admin user in
// one transaction, so a duplicate RUT or email leaves nothing behind.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	rut := utils.NormalizeRUT(req.FuneralHomeRut)
	if !utils.ValidateRUT(rut) {
		return nil, apperrors.NewValidationFailedError("RUT de funeraria invalido", nil)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash signup password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	funeralHomeID := uuid.NewString()
	branchID := uuid.NewString()
	adminID := uuid.NewString()

	tradeName := req.FuneralHomeTradeName
	if tradeName == "" {
		tradeName = req.FuneralHomeLegalName
	}
	branchName := req.BranchName
	if branchName == "" {
		branchName = "Casa Matriz"
	}

	audit := NewAudit(adminID, now)

	home := domain.FuneralHome{
		FuneralHomeID: funeralHomeID,
		LegalName:     req.FuneralHomeLegalName,
		TradeName:     tradeName,
		RUT:           rut,
		IsActive:      true,
		AuditFields:   audit,
	}
	branch := domain.Branch{
		BranchID:      branchID,
		FuneralHomeID: funeralHomeID,
		Name:          branchName,
		Address:       req.BranchAddress,
		EstadoActivo:  true,
		AuditFields:   audit,
	}
	admin := domain.User{
		UserID:        adminID,
		FuneralHomeID: funeralHomeID,
		Email:         req.Email,
		FullName:      req.FullName,
		Role:          domain.RoleAdmin,
		PasswordHash:  &passwordHash,
		AuthProvider:  domain.ProviderLocal,
		EstadoActivo:  true,
		AuditFields:   audit,
	}
	assignment := domain.UserBranch{
		UserID:     adminID,
		BranchID:   branchID,
		AssignedAt: now,
	}

	if err := s.funeralHomeRepo.CreateTenant(ctx, home, branch, admin, assignment); err != nil {
		s.LogError(ctx, err, "Signup transaction failed", slog.String("rut", rut))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant provisioned",
		slog.String("funeral_home_id", funeralHomeID),
		slog.String("admin_user_id", adminID))
	return &admin, nil
}

// Login authenticates with email and password and issues an access token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return "", nil, err
	}
	if !user.EstadoActivo {
		return "", nil, fmt.Errorf("%w: user is inactive", apperrors.ErrUnauthorized)
	}
	if user.PasswordHash == nil || !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GoogleLogin authenticates with a Google ID token. Accounts are matched by
// provider identity first, then linked by verified email. Google login never
// provisions tenants.
func (s *AuthService) GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (string, *domain.User, error) {
	payload, err := s.googleSvc.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, payload.Subject)
	if errors.Is(err, apperrors.ErrNotFound) {
		email, _ := payload.Claims["email"].(string)
		if email == "" {
			return "", nil, fmt.Errorf("%w: google token has no email", apperrors.ErrUnauthorized)
		}
		user, err = s.userRepo.FindUserByEmail(ctx, email)
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: no account for this google identity", apperrors.ErrUnauthorized)
		}
		if err != nil {
			return "", nil, err
		}
		// Link the Google identity to the existing account.
		sub := payload.Subject
		user.AuthProvider = domain.ProviderGoogle
		user.ProviderUserID = &sub
		Touch(&user.AuditFields, user.UserID, time.Now())
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			s.LogError(ctx, err, "Failed to link google identity", slog.String("user_id", user.UserID))
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, err
	}

	if !user.EstadoActivo {
		return "", nil, fmt.Errorf("%w: user is inactive", apperrors.ErrUnauthorized)
	}

	token, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
