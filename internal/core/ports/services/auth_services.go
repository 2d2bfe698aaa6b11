package services

import (
	"context"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// AuthSvcFacade defines the public authentication operations.
type AuthSvcFacade interface {
	// Signup provisions a whole tenant in one transaction: funeral home,
	// main branch and admin user. Nothing persists if any step fails.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// Login authenticates with email and password and issues a token.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)

	// GoogleLogin authenticates with a Google ID token. The user must already
	// exist; login does not provision tenants.
	GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (string, *domain.User, error)
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade defines the interface for Google ID token validation.
type GoogleOAuthSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
