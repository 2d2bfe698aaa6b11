package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireRole returns a forbidden error unless the caller holds one of the
// allowed roles.
func (s *BaseService) RequireRole(authCtx domain.AuthContext, allowed ...domain.UserRole) error {
	for _, role := range allowed {
		if authCtx.Role == role {
			return nil
		}
	}
	return apperrors.NewForbiddenError("rol sin permiso para esta operacion", nil)
}

// NewAudit builds fresh audit fields attributed to the caller.
func NewAudit(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Touch updates the mutable audit fields in place.
func Touch(audit *domain.AuditFields, userID string, now time.Time) {
	audit.LastUpdatedAt = now
	audit.LastUpdatedBy = userID
}
