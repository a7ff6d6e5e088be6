package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func mountedRoutes(t *testing.T) map[string]bool {
	t.Helper()

	app := fiber.New()
	AuthRoutes(app)
	UserRoutes(app)
	ProductRoutes(app)
	TransactionRoutes(app)
	AdminRoutes(app)

	mounted := map[string]bool{}
	for _, route := range app.GetRoutes() {
		mounted[route.Method+" "+route.Path] = true
	}
	return mounted
}

func TestRouteMethodContract(t *testing.T) {
	mounted := mountedRoutes(t)

	want := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/verify-email/:token",
		"POST /api/users/validate-email-token/:token",
		"POST /api/users/confirm-email-change/:token",
		"POST /api/users/cart/add",
		"POST /api/users/cart/update",
		"POST /api/products/:id/toggle",
		"POST /api/transaction/",
		"GET /api/transaction/recent",
		"GET /api/transaction/export/csv",
		"PUT /api/admin/users/:id",
		"PUT /api/admin/reviews/:listingId/:reviewId",
		"GET /api/admin/logs",
	}
	for _, route := range want {
		if !mounted[route] {
			t.Errorf("route %q not mounted", route)
		}
	}

	stale := []string{
		"GET /api/users/validate-email-token/:token",
		"PUT /api/products/:id/toggle",
		"PUT /api/admin/reviews/:listingId/:reviewId/visibility",
	}
	for _, route := range stale {
		if mounted[route] {
			t.Errorf("stale route %q still mounted", route)
		}
	}
}
