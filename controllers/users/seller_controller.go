package userController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"oldphone-deals-api/models"
	"oldphone-deals-api/responses"
)

func GetMyListings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	sellerID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return respondUserError(c, fiber.ErrUnauthorized)
	}

	cursor, err := listingCollection.Find(ctx, bson.M{"seller": sellerID})
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched listings",
		Result:  &fiber.Map{"listings": listings},
	})
}

// GetMyWrittenReviews returns every review left on the seller's listings,
// hidden ones included; sellers moderate their own listings' reviews.
func GetMyWrittenReviews(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	sellerID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return respondUserError(c, fiber.ErrUnauthorized)
	}

	cursor, err := listingCollection.Find(ctx, bson.M{"seller": sellerID})
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return serverError(c)
	}

	reviews := []fiber.Map{}
	for _, listing := range listings {
		for _, review := range listing.Reviews {
			reviews = append(reviews, fiber.Map{
				"_id":          review.Id.Hex(),
				"listingId":    listing.Id.Hex(),
				"listingTitle": listing.Title,
				"brand":        listing.Brand,
				"rating":       review.Rating,
				"comment":      review.Comment,
				"hidden":       review.Hidden,
				"createdAt":    review.CreatedAt,
				"reviewer":     review.Reviewer.Hex(),
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched reviews",
		Result:  &fiber.Map{"reviews": reviews},
	})
}

// ToggleCommentVisibility flips a review's hidden flag. Only the listing's
// seller may do this here; admins use the moderation endpoint instead.
func ToggleCommentVisibility(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	listingID, err := primitive.ObjectIDFromHex(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid listing Id",
		})
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid review Id",
		})
	}

	userId, _ := c.Locals("userId").(string)
	sellerID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return respondUserError(c, fiber.ErrUnauthorized)
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx,
		bson.M{"_id": listingID, "seller": sellerID}).Decode(&listing); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "No permission",
		})
	}

	review := listing.FindReview(reviewID)
	if review == nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Review not found",
		})
	}

	review.Hidden = !review.Hidden
	if _, err := listingCollection.UpdateOne(ctx,
		bson.M{"_id": listingID, "reviews._id": reviewID},
		bson.M{"$set": bson.M{"reviews.$.hidden": review.Hidden}}); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Review visibility updated",
		Result:  &fiber.Map{"hidden": review.Hidden},
	})
}
