package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// Context keys set by JWTAuth.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthMiddleware for authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth middleware for JWT token validation.
// Missing or rejected credentials end the request with 403.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		tokenString, err := extractToken(authHeader)
		if err != nil {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrUnauthenticated, "Invalid authorization header format."))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected bearer token")
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
				return
			}
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}

// extractToken accepts "Bearer <jwt>" and, for Swagger UI convenience, a bare JWT.
func extractToken(header string) (string, error) {
	header = strings.Trim(strings.TrimSpace(header), "\"'")
	if strings.Count(header, ".") == 2 && !strings.Contains(header, " ") {
		return header, nil
	}
	return auth.ExtractBearerToken(header)
}

// GetUserID returns the authenticated caller set by JWTAuth
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
