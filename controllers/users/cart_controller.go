package userController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"oldphone-deals-api/models"
	"oldphone-deals-api/responses"
)

type cartEntry struct {
	PhoneId  string  `json:"phoneId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Stock    int     `json:"stock"`
}

// resolveCart joins the cart's listing references against the live catalog,
// preserving cart order.
func resolveCart(ctx context.Context, cart []models.CartItem) ([]cartEntry, error) {
	ids := make([]primitive.ObjectID, 0, len(cart))
	for _, item := range cart {
		ids = append(ids, item.Product)
	}

	listings := map[primitive.ObjectID]models.Listing{}
	if len(ids) > 0 {
		cursor, err := listingCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		var found []models.Listing
		if err := cursor.All(ctx, &found); err != nil {
			return nil, err
		}
		for _, listing := range found {
			listings[listing.Id] = listing
		}
	}

	resolved := make([]cartEntry, 0, len(cart))
	for _, item := range cart {
		listing, ok := listings[item.Product]
		if !ok {
			continue
		}
		resolved = append(resolved, cartEntry{
			PhoneId:  listing.Id.Hex(),
			Title:    listing.Title,
			Price:    listing.Price,
			Quantity: item.Quantity,
			Stock:    listing.Stock,
		})
	}
	return resolved, nil
}

func respondCart(c *fiber.Ctx, ctx context.Context, cart []models.CartItem, message string) error {
	resolved, err := resolveCart(ctx, cart)
	if err != nil {
		return serverError(c)
	}
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Result:  &fiber.Map{"cart": resolved},
	})
}

func GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	return respondCart(c, ctx, user.Cart, "Successfully fetched cart items")
}

// AddToCart upserts a single cart entry per listing, merging quantities and
// validating against the listing's current stock.
func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	// Quantity is a pointer so an absent field defaults to 1 while an
	// explicit 0 still fails the positive-quantity check.
	var reqBody struct {
		PhoneId  string `json:"phoneId"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	quantity := 1
	if reqBody.Quantity != nil {
		quantity = *reqBody.Quantity
	}
	if quantity <= 0 {
		return respondCartError(c, models.ErrInvalidQuantity)
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.PhoneId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return serverError(c)
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	if err := user.AddCartItem(productID, quantity, listing.Stock); err != nil {
		return respondCartError(c, err)
	}

	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"cart": user.Cart}}); err != nil {
		return serverError(c)
	}

	return respondCart(c, ctx, user.Cart, "Successfully added to cart")
}

// UpdateCartItem replaces an entry's quantity, re-validating stock.
func UpdateCartItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		PhoneId  string `json:"phoneId"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.PhoneId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&listing); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	if err := user.SetCartItemQuantity(productID, reqBody.Quantity, listing.Stock); err != nil {
		return respondCartError(c, err)
	}

	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"cart": user.Cart}}); err != nil {
		return serverError(c)
	}

	return respondCart(c, ctx, user.Cart, "Successfully updated cart")
}

// RemoveFromCart drops an entry without re-validating stock.
func RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		PhoneId string `json:"phoneId"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.PhoneId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	user.RemoveCartItem(productID)

	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"cart": user.Cart}}); err != nil {
		return serverError(c)
	}

	return respondCart(c, ctx, user.Cart, "Successfully removed from cart")
}

func ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	user.ClearCart()

	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"cart": user.Cart}}); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cart cleared",
		Result:  &fiber.Map{"cart": []cartEntry{}},
	})
}

func respondCartError(c *fiber.Ctx, err error) error {
	switch err {
	case models.ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Quantity must be a positive integer",
		})
	case models.ErrInsufficientStock:
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Quantity exceeds stock",
		})
	case models.ErrCartItemNotFound:
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Item not found in cart",
		})
	default:
		return serverError(c)
	}
}

func AddToWishlist(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		PhoneId string `json:"phoneId"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.PhoneId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	if err := listingCollection.FindOne(ctx, bson.M{"_id": productID}).Err(); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	if user.AddToWishlist(productID) {
		if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
			bson.M{"$set": bson.M{"wishlist": user.Wishlist}}); err != nil {
			return serverError(c)
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully added to wishlist",
		Result:  &fiber.Map{"wishlist": user.Wishlist},
	})
}

func GetWishlist(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	listings := []models.Listing{}
	if len(user.Wishlist) > 0 {
		cursor, err := listingCollection.Find(ctx, bson.M{"_id": bson.M{"$in": user.Wishlist}})
		if err != nil {
			return serverError(c)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &listings); err != nil {
			return serverError(c)
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched wishlist",
		Result:  &fiber.Map{"wishlist": listings},
	})
}
