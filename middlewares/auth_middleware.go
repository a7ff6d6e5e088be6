package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/responses"
)

// VerifyToken resolves the bearer credential from the token cookie and
// attaches {userId, isAdmin} to the request context. Buyer and seller
// routes use this chain; it is not interchangeable with IsAdmin.
func VerifyToken(c *fiber.Ctx) error {
	token := c.Cookies("token")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Unauthorized: No token in cookie",
		})
	}

	claims, err := ParseToken(token, []byte(configs.EnvJWTSecret()))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Unauthorized: Invalid or expired token",
		})
	}

	c.Locals("userId", claims.UserId)
	c.Locals("isAdmin", claims.IsAdmin)
	return c.Next()
}

// OptionalToken attaches {userId, isAdmin} when a valid token cookie is
// present but lets the request through either way. Used on routes that also
// accept an admin session, where the handler decides who is asking.
func OptionalToken(c *fiber.Ctx) error {
	if token := c.Cookies("token"); token != "" {
		if claims, err := ParseToken(token, []byte(configs.EnvJWTSecret())); err == nil {
			c.Locals("userId", claims.UserId)
			c.Locals("isAdmin", claims.IsAdmin)
		}
	}
	return c.Next()
}
