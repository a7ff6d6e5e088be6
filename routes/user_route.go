package routes

import (
	"github.com/gofiber/fiber/v2"

	userController "oldphone-deals-api/controllers/users"
	"oldphone-deals-api/middlewares"
)

func UserRoutes(app *fiber.App) {
	users := app.Group("/api/users")

	// Email-change confirmation links arrive without a login cookie.
	users.Post("/validate-email-token/:token", userController.ValidateEmailChangeToken)
	users.Post("/confirm-email-change/:token", userController.ConfirmEmailChange)

	users.Use(middlewares.VerifyToken)

	users.Get("/me", userController.GetUserInfo)
	users.Post("/update-profile", userController.UpdateProfile)
	users.Post("/verify-password", userController.VerifyPassword)
	users.Post("/change-password", userController.ChangePassword)
	users.Post("/request-email-change", userController.RequestEmailChange)

	users.Get("/cart", userController.GetCart)
	users.Post("/cart/add", userController.AddToCart)
	users.Post("/cart/update", userController.UpdateCartItem)
	users.Post("/cart/remove", userController.RemoveFromCart)
	users.Post("/cart/clear", userController.ClearCart)

	users.Post("/wishlist/add", userController.AddToWishlist)
	users.Get("/wishlist", userController.GetWishlist)

	users.Get("/my-listings", userController.GetMyListings)
	users.Get("/my-written-reviews", userController.GetMyWrittenReviews)
	users.Put("/listings/:listingId/reviews/:reviewId/toggle-visibility", userController.ToggleCommentVisibility)
}
