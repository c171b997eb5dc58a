package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mrosati84/DetectiveBoard/internal/constants"
	apierrors "github.com/mrosati84/DetectiveBoard/internal/errors"
	"github.com/mrosati84/DetectiveBoard/internal/services"
)

// RequireAuth extracts and validates the bearer token, then stores the
// resolved user ID in the context for downstream ownership checks.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Validate(token)
		if err != nil {
			switch err {
			case services.ErrTokenExpired:
				apierrors.Unauthenticated(c, "Token has expired")
			default:
				apierrors.Unauthenticated(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
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
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
