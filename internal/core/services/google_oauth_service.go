package services

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/platform/config"
)

// GoogleOAuthService validates Google ID tokens against the configured client ID.
type GoogleOAuthService struct {
	BaseService
	clientID string
}

// NewGoogleOAuthService creates a new GoogleOAuthService from app config.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &GoogleOAuthService{clientID: cfg.GoogleClientID}
}

var _ portssvc.GoogleOAuthSvcFacade = (*GoogleOAuthService)(nil)

// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
func (s *GoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, apperrors.NewAppError(500, "google login is not configured", nil)
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		s.LogDebug(ctx, "Google ID token validation failed")
		return nil, fmt.Errorf("%w: invalid google id token", apperrors.ErrUnauthorized)
	}
	return payload, nil
}
