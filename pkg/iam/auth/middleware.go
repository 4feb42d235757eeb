package auth

import (
	"strings"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const localsUserIDKey = "auth_user_id"

// AuthContext is the authenticated identity attached to a request.
type AuthContext struct {
	UserID kernel.UserID
	Email  string
}

// TokenMiddleware validates bearer tokens and attaches the caller identity.
type TokenMiddleware struct {
	tokens TokenService
}

// NewTokenMiddleware creates the authentication middleware.
func NewTokenMiddleware(tokens TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid access token.
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "invalid authorization format")
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(localsUserIDKey, AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		return c.Next()
	}
}

// GetAuthContext extracts the authenticated identity from the request.
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authCtx, ok := c.Locals(localsUserIDKey).(AuthContext)
	return authCtx, ok
}
