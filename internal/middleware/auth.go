package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/contest-tracker/internal/constants"
	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
	"github.com/yukikurage/contest-tracker/internal/logging"
)

// IdentityResolver extracts the authenticated user id from a request.
type IdentityResolver interface {
	Resolve(req *http.Request) (uint64, bool)
}

// Identity attaches the user id to the context when the request carries a
// valid credential. Anonymous requests continue unchanged.
func Identity(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolver.Resolve(c.Request); ok {
			c.Set(constants.ContextKeyUserID, userID)
			c.Request = c.Request.WithContext(logging.WithUserID(c.Request.Context(), userID))
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a resolved identity
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			apierrors.Unauthorized(c, "")
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, v != 0
	case uint:
		return uint64(v), v != 0
	case int:
		if v <= 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// ViewerID returns the current user ID, or 0 for anonymous requests
func ViewerID(c *gin.Context) uint64 {
	userID, _ := GetUserID(c)
	return userID
}
