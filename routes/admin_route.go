package routes

import (
	"github.com/gofiber/fiber/v2"

	adminController "oldphone-deals-api/controllers/admin"
	"oldphone-deals-api/middlewares"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middlewares.IsAdmin)

	admin.Get("/users", adminController.GetUsers)
	admin.Get("/users/search", adminController.SearchUsers)
	admin.Get("/users/:id", adminController.GetUserById)
	admin.Put("/users/:id", adminController.UpdateUser)
	admin.Put("/users/:id/disable", adminController.DisableUser)

	admin.Get("/listings", adminController.GetListings)
	admin.Get("/listings/search", adminController.SearchListings)
	admin.Put("/listings/:id", adminController.UpdateListing)
	admin.Put("/listings/:id/disable", adminController.DisableListing)

	admin.Get("/reviews", adminController.GetReviews)
	admin.Put("/reviews/:listingId/:reviewId", adminController.UpdateReviewVisibility)

	admin.Get("/logs", adminController.GetActivityLogs)
}
