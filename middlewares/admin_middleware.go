package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/responses"
)

// IsAdmin guards the moderation console: 401 without an active session,
// 403 when the session exists but lacks the admin flag. Admin console
// routes use this chain exclusively; bearer tokens are never accepted here.
func IsAdmin(c *fiber.Ctx) error {
	sess, err := configs.SessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Unauthorized: No session",
		})
	}

	userId, _ := sess.Get("userId").(string)
	if userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Unauthorized: No session",
		})
	}

	isAdmin, _ := sess.Get("isAdmin").(bool)
	if !isAdmin {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Forbidden: Admin access required",
		})
	}

	c.Locals("adminId", userId)
	return c.Next()
}
