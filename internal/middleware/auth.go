package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/grihom/grihom-api/internal/types"
)

// LocalsUser is the request-locals key holding the authenticated user.
const LocalsUser = "user"

// AuthAdmin validates that the request carries an admin session token
func AuthAdmin(store *services.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, store, true, "data.authorization.admin")
	}
}

// AuthUser validates that the request carries a valid session token
func AuthUser(store *services.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, store, false, "data.authorization.user")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, store *services.Store, requireAdmin bool, errorType string) error {
	token := bearerToken(c)
	if token == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Session token not found",
			Type:    errorType,
		}
	}

	user, err := store.UserByToken(token)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Invalid session token",
			Type:    errorType,
		}
	}

	if !user.IsActive {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: services.ErrAccountInactive.Error(),
			Type:    errorType,
		}
	}

	if requireAdmin && !user.IsAdmin {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Admin role required",
			Type:    errorType,
		}
	}

	c.Locals(LocalsUser, user)
	return c.Next()
}

// bearerToken extracts the token from the Authorization header, accepting the
// bare token as well for compatibility with the original client.
func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	return strings.TrimSpace(auth)
}
