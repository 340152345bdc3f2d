package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminModel "github.com/technoverse/registration-portal/internal/admin/model"
	"github.com/technoverse/registration-portal/internal/auth"
)

// AdminKey is the gin context key holding the authenticated admin principal.
const AdminKey = "admin"

// Authenticator resolves a bearer token to an admin principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*adminModel.Admin, error)
}

// RequireAuth returns a middleware that guards admin routes.
//
// A missing token yields 401. A token failing cryptographic verification
// (bad signature, expired, malformed) yields 403. A verified token that is
// no longer the principal's active session token yields 401: logging in
// elsewhere invalidates it even though it is still cryptographically valid.
func RequireAuth(authenticator Authenticator, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		admin, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Token is not valid"})
			case errors.Is(err, adminModel.ErrSessionStale):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Session is invalid."})
			default:
				logger.Errorw("authentication failed", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			}
			return
		}

		c.Set(AdminKey, admin)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
