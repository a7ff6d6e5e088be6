package routes

import (
	"github.com/gofiber/fiber/v2"

	authController "oldphone-deals-api/controllers/auth"
	"oldphone-deals-api/middlewares"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/logout", middlewares.OptionalToken, authController.Logout)
	auth.Get("/me", middlewares.OptionalToken, authController.GetCurrentUser)
	auth.Post("/verify-email/:token", authController.VerifyEmail)
	auth.Post("/forgot-password", authController.ForgotPassword)
	auth.Post("/reset-password/:token", authController.ResetPassword)
}
