package services

import (
	"context"
	"time"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/platform/config"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/utils"
)

// TokenService issues signed access tokens.
type TokenService struct {
	BaseService
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates a new TokenService from app config.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &TokenService{
		secret: cfg.JWTSecret,
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
	}
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

// GenerateAccessToken issues a signed JWT for the user.
func (s *TokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
