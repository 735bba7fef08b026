package auth

import (
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "currentUser"

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated user in the request locals.
func RequireAuth(tokens *TokenManager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userFromRequest(c, tokens, users)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present but lets
// anonymous requests through.
func OptionalAuth(tokens *TokenManager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := userFromRequest(c, tokens, users); err == nil && user != nil {
			c.Locals(userLocalKey, user)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil on anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

func userFromRequest(c *fiber.Ctx, tokens *TokenManager, users repository.UserRepository) (*models.User, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, nil
	}

	userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, err
	}

	return users.FindByID(c.Context(), userID)
}
