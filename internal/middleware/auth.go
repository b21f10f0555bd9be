package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/pepine/internal/config"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

const userContextKey = "currentUser"

// AuthMiddleware validates the bearer token, loads the account it names
// and stores it in the request context as the authenticated principal.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "account is inactive")
		}

		c.Locals(userContextKey, &user)
		return c.Next()
	}
}

// RequireRoles rejects requests whose principal carries none of the given
// roles. It must run after AuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetCurrentUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusForbidden, "insufficient permissions")
	}
}

// GetCurrentUser extracts the authenticated principal from context.
func GetCurrentUser(c *fiber.Ctx) (*models.User, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return nil, false
	}

	if user, ok := value.(*models.User); ok {
		return user, true
	}

	return nil, false
}
