package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the context.
const userIDKey = contextKey("userID")

// authCtxKey is the key used to store the resolved tenant scope in the context.
const authCtxKey = contextKey("authContext")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetAuthFromContext retrieves the resolved AuthContext (user + tenant scope)
// set by the tenant middleware.
func GetAuthFromContext(c *gin.Context) (domain.AuthContext, bool) {
	val, exists := c.Get(string(authCtxKey))
	if !exists {
		return domain.AuthContext{}, false
	}
	auth, ok := val.(domain.AuthContext)
	return auth, ok
}
