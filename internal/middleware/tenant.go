package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// AuthContextResolver loads the caller's profile and branch assignments.
// Implemented by the user service; declared here so the middleware does not
// depend on the services package.
type AuthContextResolver interface {
	ResolveAuthContext(ctx context.Context, userID string) (*domain.AuthContext, error)
}

// TenantMiddleware resolves the authenticated user's profile into an
// AuthContext (funeral home, role, branch assignments) once per request.
// Every tenant-scoped query downstream filters by this funeral home ID, so
// the resolution happens here instead of being repeated in each action.
func TenantMiddleware(resolver AuthContextResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("Tenant resolution attempted without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		auth, err := resolver.ResolveAuthContext(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Profile not found for authenticated user")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Profile not found"})
				return
			}
			logger.Error("Failed to resolve tenant scope", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve profile"})
			return
		}

		enrichedLogger := GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("funeral_home_id", auth.FuneralHomeID),
			slog.String("role", string(auth.Role)),
		)
		ctx := context.WithValue(c.Request.Context(), loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(loggerKey), enrichedLogger)
		c.Set(string(authCtxKey), *auth)

		c.Next()
	}
}
