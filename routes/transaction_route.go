package routes

import (
	"github.com/gofiber/fiber/v2"

	transactionController "oldphone-deals-api/controllers/transactions"
	"oldphone-deals-api/middlewares"
)

func TransactionRoutes(app *fiber.App) {
	transactions := app.Group("/api/transaction")

	transactions.Post("/", middlewares.VerifyToken, transactionController.CreateTransaction)
	transactions.Get("/", transactionController.GetAllTransactions)
	transactions.Get("/recent", transactionController.GetRecentTransactions)
	transactions.Get("/export/csv", transactionController.ExportCSV)
}
