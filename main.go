package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/routes"
)

func main() {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     configs.EnvClientURL(),
		AllowCredentials: true,
		AllowHeaders:     "Content-Type, Authorization",
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := configs.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}
	if err := configs.EnsureAdminUser(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Connected to MongoDB")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(&fiber.Map{"data": "Hello from OldPhoneDeals"})
	})

	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.ProductRoutes(app)
	routes.TransactionRoutes(app)
	routes.AdminRoutes(app)

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
