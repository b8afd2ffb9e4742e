// Package middleware provides HTTP middleware components for the
// application, built for the fiber web framework.
package middleware

import (
	"log"
	"strings"

	"estatien/internal/models"
	"estatien/internal/services/auth"
	"estatien/internal/utils"
	"estatien/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware handles JWT token validation and user authentication.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the user claims to the request context.
type AuthMiddleware struct {
	authService auth.Service
	jwtSecret   string
}

func NewAuthMiddleware(authService auth.Service, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		jwtSecret:   jwtSecret,
	}
}

// Handler validates the Bearer token, checks the token version against
// the user record, and stores the claims in the request context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return response.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseToken(m.jwtSecret, tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return response.Unauthorized(c, "invalid token")
	}

	currentVersion, err := m.authService.GetUserTokenVersion(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("user %d from token not found", claims.UserID)
		return response.Unauthorized(c, "invalid token")
	}
	if claims.TokenVersion != currentVersion {
		return response.Unauthorized(c, "session expired")
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)

	return c.Next()
}

// RequireRole returns a middleware that rejects requests whose claims
// do not carry one of the given roles.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok || claims == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return response.Forbidden(c)
	}
}
