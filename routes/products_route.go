package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "oldphone-deals-api/controllers/products"
	"oldphone-deals-api/middlewares"
)

func ProductRoutes(app *fiber.App) {
	products := app.Group("/api/products")

	products.Get("/best-sellers", productController.GetBestSellers)
	products.Get("/sold-out-soon", productController.GetSoldOutSoon)
	products.Get("/search", productController.SearchProducts)
	products.Get("/brands", productController.GetBrands)
	products.Get("/price-range", productController.GetPriceRange)

	products.Post("/", middlewares.VerifyToken, productController.CreateListing)
	products.Post("/:id/toggle", middlewares.VerifyToken, productController.ToggleListing)
	products.Delete("/:id", middlewares.VerifyToken, productController.DeleteListing)
	products.Post("/:id/reviews", middlewares.VerifyToken, productController.AddReview)

	products.Get("/:id", productController.GetById)
}
