package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pustaka/internal/services"
)

// AuthRequired is a Fiber middleware that guards a route group with
// bearer-token authentication. Register and login stay outside the
// guarded group, which is how public paths bypass the gate.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Authentication required",
				"message": "To use this API, please follow these steps:",
				"steps": []string{
					"1. Create a user with the POST /api/v1/auth/register endpoint",
					"2. Login with the POST /api/v1/auth/login endpoint to get a token",
					"3. Send the token in the Authorization header as 'Bearer <token>'",
				},
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Invalid token",
				"message": "Your token is invalid or has expired. Please login again to get a new token.",
			})
		}

		// Store identity in the request context for downstream handlers.
		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])

		return c.Next()
	}
}
