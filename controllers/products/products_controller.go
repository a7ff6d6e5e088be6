package controllers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/models"
	"oldphone-deals-api/responses"
)

var listingCollection *mongo.Collection = configs.GetCollection("listings")
var userCollection *mongo.Collection = configs.GetCollection("users")

var validate = validator.New()

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Code:    responses.CodeServerError,
		Message: "Server error occurred. Please try again later.",
	})
}

// GetById returns a single listing for the public detail page. Hidden
// reviews are filtered out before returning; the seller's name is joined in.
func GetById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	listingID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid listing Id",
		})
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Phone not found",
		})
	}

	listing.Reviews = listing.VisibleReviews()

	var seller models.User
	sellerName := ""
	if err := userCollection.FindOne(ctx, bson.M{"_id": listing.Seller}).Decode(&seller); err == nil {
		sellerName = seller.Firstname + " " + seller.Lastname
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched phone",
		Result:  &fiber.Map{"phone": listing, "sellerName": sellerName},
	})
}

// GetBestSellers returns the five enabled, in-stock listings with the
// highest average rating.
func GetBestSellers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"stock": bson.M{"$gt": 0}, "disabled": false}}},
		bson.D{{Key: "$addFields", Value: bson.M{"avgRating": bson.M{"$avg": "$reviews.rating"}}}},
		bson.D{{Key: "$sort", Value: bson.M{"avgRating": -1}}},
		bson.D{{Key: "$limit", Value: 5}},
	}

	cursor, err := listingCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return serverError(c)
	}
	for i := range listings {
		listings[i].Reviews = listings[i].VisibleReviews()
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched best sellers",
		Result:  &fiber.Map{"phones": listings},
	})
}

// GetSoldOutSoon returns the five enabled listings closest to running out.
func GetSoldOutSoon(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"stock": bson.M{"$gt": 0}, "disabled": false}}},
		bson.D{{Key: "$sort", Value: bson.M{"stock": 1}}},
		bson.D{{Key: "$limit", Value: 5}},
	}

	cursor, err := listingCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return serverError(c)
	}
	for i := range listings {
		listings[i].Reviews = listings[i].VisibleReviews()
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched sold out soon",
		Result:  &fiber.Map{"phones": listings},
	})
}

// SearchProducts filters enabled listings by substring query, brand and
// price range. Capped at 50 results.
func SearchProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"disabled": false}

	if query := c.Query("query"); query != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"brand": bson.M{"$regex": query, "$options": "i"}},
		}
	}
	if brand := c.Query("brand"); brand != "" {
		filter["brand"] = brand
	}

	price := bson.M{}
	if minPrice := c.QueryFloat("minPrice", -1); minPrice >= 0 {
		price["$gte"] = minPrice
	}
	if maxPrice := c.QueryFloat("maxPrice", -1); maxPrice >= 0 {
		price["$lte"] = maxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	cursor, err := listingCollection.Find(ctx, filter, options.Find().SetLimit(50))
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return serverError(c)
	}
	for i := range listings {
		listings[i].Reviews = listings[i].VisibleReviews()
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched products",
		Result:  &fiber.Map{"phones": listings},
	})
}

func GetBrands(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	brands, err := listingCollection.Distinct(ctx, "brand", bson.M{"disabled": false})
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched brands",
		Result:  &fiber.Map{"brands": brands},
	})
}

func GetPriceRange(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	min, max := 0.0, 2000.0

	var cheapest models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"disabled": false},
		options.FindOne().SetSort(bson.D{{Key: "price", Value: 1}})).Decode(&cheapest); err == nil {
		min = cheapest.Price
	}
	var dearest models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"disabled": false},
		options.FindOne().SetSort(bson.D{{Key: "price", Value: -1}})).Decode(&dearest); err == nil {
		max = dearest.Price
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched price range",
		Result:  &fiber.Map{"min": min, "max": max},
	})
}

// CreateListing creates a listing owned by the authenticated seller. Image
// is resolved from the brand name.
func CreateListing(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Title string  `json:"title" validate:"required"`
		Brand string  `json:"brand" validate:"required"`
		Stock int     `json:"stock" validate:"min=0"`
		Price float64 `json:"price" validate:"min=0"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "title, stock, price, brand are required",
		})
	}

	userId, _ := c.Locals("userId").(string)
	sellerID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	now := time.Now()
	listing := models.Listing{
		Id:        primitive.NewObjectID(),
		Title:     reqBody.Title,
		Brand:     reqBody.Brand,
		Image:     configs.GetBrandImage(reqBody.Brand),
		Stock:     reqBody.Stock,
		Seller:    sellerID,
		Price:     reqBody.Price,
		Disabled:  false,
		Reviews:   []models.Review{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := listingCollection.InsertOne(ctx, listing); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Listing created successfully",
		Result:  &fiber.Map{"listing": listing},
	})
}

// ToggleListing flips the disabled flag; seller ownership required.
func ToggleListing(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	listingID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid listing Id",
		})
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Listing not found",
		})
	}

	userId, _ := c.Locals("userId").(string)
	if listing.Seller.Hex() != userId {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Forbidden",
		})
	}

	listing.Disabled = !listing.Disabled
	if _, err := listingCollection.UpdateOne(ctx, bson.M{"_id": listingID},
		bson.M{"$set": bson.M{"disabled": listing.Disabled, "updatedAt": time.Now()}}); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Listing updated successfully",
		Result:  &fiber.Map{"listing": listing},
	})
}

// DeleteListing removes a listing; seller ownership required.
func DeleteListing(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	listingID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid listing Id",
		})
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Listing not found",
		})
	}

	userId, _ := c.Locals("userId").(string)
	if listing.Seller.Hex() != userId {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Forbidden",
		})
	}

	if _, err := listingCollection.DeleteOne(ctx, bson.M{"_id": listingID}); err != nil {
		return serverError(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddReview appends a review to a listing. No self-review or duplicate
// restriction applies.
func AddReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	listingID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid listing Id",
		})
	}

	var reqBody struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Rating must be between 1 and 5",
		})
	}

	userId, _ := c.Locals("userId").(string)
	reviewerID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Phone not found",
		})
	}

	review := models.Review{
		Id:        primitive.NewObjectID(),
		Reviewer:  reviewerID,
		Rating:    reqBody.Rating,
		Comment:   reqBody.Comment,
		Hidden:    false,
		CreatedAt: time.Now(),
	}

	if _, err := listingCollection.UpdateOne(ctx, bson.M{"_id": listingID},
		bson.M{"$push": bson.M{"reviews": review}}); err != nil {
		return serverError(c)
	}

	listing.Reviews = append(listing.Reviews, review)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Review added successfully",
		Result:  &fiber.Map{"phone": listing},
	})
}
