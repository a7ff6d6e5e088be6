package userController

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"oldphone-deals-api/responses"
)

func postAddToCart(t *testing.T, body string) (*responses.ApiResponse, int) {
	t.Helper()

	app := fiber.New()
	app.Post("/cart/add", AddToCart)

	req := httptest.NewRequest("POST", "/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var envelope responses.ApiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("bad response body %q: %v", raw, err)
	}
	return &envelope, resp.StatusCode
}

func TestAddToCartRejectsExplicitZeroQuantity(t *testing.T) {
	envelope, status := postAddToCart(t, `{"phoneId":"6638a1b2c3d4e5f607182930","quantity":0}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want 400", status)
	}
	if envelope.Message != "Quantity must be a positive integer" {
		t.Fatalf("got message %q", envelope.Message)
	}
}

func TestAddToCartRejectsNegativeQuantity(t *testing.T) {
	_, status := postAddToCart(t, `{"phoneId":"6638a1b2c3d4e5f607182930","quantity":-2}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want 400", status)
	}
}
