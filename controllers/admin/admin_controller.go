package adminController

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/models"
	"oldphone-deals-api/responses"
	"oldphone-deals-api/services"
)

// User documents carry registrationDate, not createdAt; sorting defaults to
// the field that actually persists.
const userSortDefault = "registrationDate"

var userCollection *mongo.Collection = configs.GetCollection("users")
var listingCollection *mongo.Collection = configs.GetCollection("listings")
var tokenCollection *mongo.Collection = configs.GetCollection("verification_tokens")

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Code:    responses.CodeServerError,
		Message: "Server error occurred. Please try again later.",
	})
}

// sessionAdminID reads the admin id the session middleware stored. The
// zero ObjectID means no admin is attached; audit writes are skipped then.
func sessionAdminID(c *fiber.Ctx) primitive.ObjectID {
	adminId, _ := c.Locals("adminId").(string)
	id, err := primitive.ObjectIDFromHex(adminId)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

func audit(ctx context.Context, c *fiber.Ctx, action, targetType string, targetID primitive.ObjectID, details models.LogDetails) {
	adminID := sessionAdminID(c)
	if adminID.IsZero() {
		return
	}
	services.LogActivity(ctx, models.ActivityLog{
		AdminId:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetId:   targetID,
		Details:    details,
	})
}

// ---- users ----

func GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if verified := c.Query("verified"); verified != "" {
		filter["verified"] = verified == "true"
	}
	if disabled := c.Query("disabled"); disabled != "" {
		filter["disabled"] = disabled == "true"
	}

	sortField := c.Query("sortField", userSortDefault)
	sortOrder := -1
	if c.Query("sortOrder") == "asc" {
		sortOrder = 1
	}

	cursor, err := userCollection.Find(ctx, filter,
		options.Find().
			SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
			SetProjection(bson.M{"password": 0}))
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched users",
		Result:  &fiber.Map{"users": users},
	})
}

func GetUserById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user Id",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{"password": 0})).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Code:    responses.CodeUserNotFound,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched user",
		Result:  &fiber.Map{"user": user},
	})
}

func SearchUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	query := c.Query("query")
	filter := bson.M{}
	if query != "" {
		filter["$or"] = bson.A{
			bson.M{"firstname": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"lastname": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": query, "$options": "i"}},
		}
	}

	cursor, err := userCollection.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched users",
		Result:  &fiber.Map{"users": users},
	})
}

// UpdateUser edits profile fields. Changing the email issues a verification
// token to the new address and marks the account unverified until confirmed.
func UpdateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user Id",
		})
	}

	var reqBody struct {
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Email     *string `json:"email"`
		Disabled  *bool   `json:"disabled"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Code:    responses.CodeUserNotFound,
			Message: "User not found",
		})
	}

	before := models.UserSnapshot(&user)
	update := bson.M{}
	if reqBody.Firstname != nil {
		user.Firstname = *reqBody.Firstname
		update["firstname"] = user.Firstname
	}
	if reqBody.Lastname != nil {
		user.Lastname = *reqBody.Lastname
		update["lastname"] = user.Lastname
	}
	if reqBody.Disabled != nil {
		user.Disabled = *reqBody.Disabled
		update["disabled"] = user.Disabled
	}

	if reqBody.Email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*reqBody.Email))
		if newEmail != "" && newEmail != user.Email {
			count, err := userCollection.CountDocuments(ctx, bson.M{"email": newEmail})
			if err != nil {
				return serverError(c)
			}
			if count > 0 {
				return c.Status(fiber.StatusConflict).JSON(responses.ApiResponse{
					Status:  fiber.StatusConflict,
					Code:    responses.CodeUserExists,
					Message: "Email is already in use",
				})
			}

			token, err := models.NewVerificationToken(user.Id, models.TokenTypeEmail)
			if err != nil {
				return serverError(c)
			}
			token.Email = newEmail
			if _, err := tokenCollection.InsertOne(ctx, token); err != nil {
				return serverError(c)
			}

			oldEmail := user.Email
			services.SendAsync(func() error {
				return services.SendVerificationEmail(newEmail, token.Token)
			})
			services.SendAsync(func() error {
				return services.SendEmailChangeNotification(oldEmail)
			})

			user.Email = newEmail
			user.Verified = false
			update["email"] = newEmail
			update["verified"] = false
		}
	}

	if len(update) > 0 {
		if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": update}); err != nil {
			return serverError(c)
		}
	}

	audit(ctx, c, models.ActionUpdate, models.TargetUser, user.Id,
		models.LogDetails{Before: before, After: models.UserSnapshot(&user)})

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User updated successfully",
		Result:  &fiber.Map{"user": user},
	})
}

// DisableUser toggles the disabled flag. Admin accounts cannot be disabled.
func DisableUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user Id",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Code:    responses.CodeUserNotFound,
			Message: "User not found",
		})
	}
	if user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Cannot disable admin account",
		})
	}

	before := models.UserSnapshot(&user)
	user.Disabled = !user.Disabled
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$set": bson.M{"disabled": user.Disabled}}); err != nil {
		return serverError(c)
	}

	action := models.ActionDisable
	if !user.Disabled {
		action = models.ActionEnable
	}
	audit(ctx, c, action, models.TargetUser, user.Id,
		models.LogDetails{Before: before, After: models.UserSnapshot(&user)})

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User updated successfully",
		Result:  &fiber.Map{"user": user},
	})
}

// ---- listings ----

func GetListings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if seller := c.Query("seller"); seller != "" {
		sellerID, err := primitive.ObjectIDFromHex(seller)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid seller Id",
			})
		}
		filter["seller"] = sellerID
	}
	if brand := c.Query("brand"); brand != "" {
		filter["brand"] = brand
	}
	if disabled := c.Query("disabled"); disabled != "" {
		filter["disabled"] = disabled == "true"
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

	sortField := c.Query("sortField", "createdAt")
	sortOrder := -1
	if c.Query("sortOrder") == "asc" {
		sortOrder = 1
	}

	cursor, err := listingCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: sortField, Value: sortOrder}}))
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

func SearchListings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	query := c.Query("query")
	filter := bson.M{}
	if query != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"brand": bson.M{"$regex": query, "$options": "i"}},
		}
	}

	cursor, err := listingCollection.Find(ctx, filter)
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

func UpdateListing(c *fiber.Ctx) error {
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
		Title *string  `json:"title"`
		Brand *string  `json:"brand"`
		Stock *int     `json:"stock"`
		Price *float64 `json:"price"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	var listing models.Listing
	if err := listingCollection.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Listing not found",
		})
	}

	before := models.ListingSnapshot(&listing)
	update := bson.M{"updatedAt": time.Now()}
	if reqBody.Title != nil {
		listing.Title = *reqBody.Title
		update["title"] = listing.Title
	}
	if reqBody.Brand != nil {
		listing.Brand = *reqBody.Brand
		update["brand"] = listing.Brand
	}
	if reqBody.Stock != nil {
		if *reqBody.Stock < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Stock cannot be negative",
			})
		}
		listing.Stock = *reqBody.Stock
		update["stock"] = listing.Stock
	}
	if reqBody.Price != nil {
		if *reqBody.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Price cannot be negative",
			})
		}
		listing.Price = *reqBody.Price
		update["price"] = listing.Price
	}

	if _, err := listingCollection.UpdateOne(ctx, bson.M{"_id": listingID}, bson.M{"$set": update}); err != nil {
		return serverError(c)
	}

	audit(ctx, c, models.ActionUpdate, models.TargetListing, listing.Id,
		models.LogDetails{Before: before, After: models.ListingSnapshot(&listing)})

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Listing updated successfully",
		Result:  &fiber.Map{"listing": listing},
	})
}

func DisableListing(c *fiber.Ctx) error {
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

	before := models.ListingSnapshot(&listing)
	listing.Disabled = !listing.Disabled
	if _, err := listingCollection.UpdateOne(ctx, bson.M{"_id": listingID},
		bson.M{"$set": bson.M{"disabled": listing.Disabled, "updatedAt": time.Now()}}); err != nil {
		return serverError(c)
	}

	action := models.ActionDisable
	if !listing.Disabled {
		action = models.ActionEnable
	}
	audit(ctx, c, action, models.TargetListing, listing.Id,
		models.LogDetails{Before: before, After: models.ListingSnapshot(&listing)})

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Listing updated successfully",
		Result:  &fiber.Map{"listing": listing},
	})
}

// ---- reviews ----

type flatReview struct {
	Id           primitive.ObjectID `json:"_id"`
	ListingId    primitive.ObjectID `json:"listingId"`
	ListingTitle string             `json:"listingTitle"`
	Brand        string             `json:"brand"`
	Reviewer     primitive.ObjectID `json:"reviewer"`
	ReviewerName string             `json:"reviewerName"`
	Rating       int                `json:"rating"`
	Comment      string             `json:"comment"`
	Hidden       bool               `json:"hidden"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// GetReviews flattens the embedded review arrays across all listings, with
// filtering by brand, visibility status and reviewer, free-text search over
// reviewer name, listing title and comment, and sorting by reviewer name or
// review date.
func GetReviews(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	listingFilter := bson.M{}
	if brand := c.Query("brand"); brand != "" {
		listingFilter["brand"] = brand
	}

	cursor, err := listingCollection.Find(ctx, listingFilter)
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return serverError(c)
	}

	reviewerNames, err := lookupReviewers(ctx, listings)
	if err != nil {
		return serverError(c)
	}

	reviews := flattenReviews(listings, reviewerNames,
		c.Query("status"), c.Query("userId"), c.Query("search"))

	sortField := c.Query("sortField", "createdAt")
	asc := c.Query("sortOrder") == "asc"
	sort.Slice(reviews, func(i, j int) bool {
		var less bool
		if sortField == "reviewer" {
			less = reviews[i].ReviewerName < reviews[j].ReviewerName
		} else {
			less = reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched reviews",
		Result:  &fiber.Map{"reviews": reviews},
	})
}

// flattenReviews turns the embedded review arrays into one flat slice. The
// status filter selects on the parent listing's disabled flag (active keeps
// enabled listings, disabled keeps disabled ones); search matches reviewer
// name, listing title or comment, case-insensitively.
func flattenReviews(listings []models.Listing, reviewerNames map[primitive.ObjectID]string, status, userId, search string) []flatReview {
	search = strings.ToLower(search)

	reviews := []flatReview{}
	for _, listing := range listings {
		if status == "active" && listing.Disabled {
			continue
		}
		if status == "disabled" && !listing.Disabled {
			continue
		}
		for _, review := range listing.Reviews {
			if userId != "" && review.Reviewer.Hex() != userId {
				continue
			}
			name := reviewerNames[review.Reviewer]
			if search != "" &&
				!strings.Contains(strings.ToLower(name), search) &&
				!strings.Contains(strings.ToLower(listing.Title), search) &&
				!strings.Contains(strings.ToLower(review.Comment), search) {
				continue
			}
			reviews = append(reviews, flatReview{
				Id:           review.Id,
				ListingId:    listing.Id,
				ListingTitle: listing.Title,
				Brand:        listing.Brand,
				Reviewer:     review.Reviewer,
				ReviewerName: name,
				Rating:       review.Rating,
				Comment:      review.Comment,
				Hidden:       review.Hidden,
				CreatedAt:    review.CreatedAt,
			})
		}
	}
	return reviews
}

// UpdateReviewVisibility sets the hidden flag on a single embedded review.
func UpdateReviewVisibility(c *fiber.Ctx) error {
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

	var reqBody struct {
		Hidden bool `json:"hidden"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	result, err := listingCollection.UpdateOne(ctx,
		bson.M{"_id": listingID, "reviews._id": reviewID},
		bson.M{"$set": bson.M{"reviews.$.hidden": reqBody.Hidden}})
	if err != nil {
		return serverError(c)
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Review not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Review updated successfully",
		Result:  &fiber.Map{"hidden": reqBody.Hidden},
	})
}

func lookupReviewers(ctx context.Context, listings []models.Listing) (map[primitive.ObjectID]string, error) {
	names := map[primitive.ObjectID]string{}
	ids := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, listing := range listings {
		for _, review := range listing.Reviews {
			if !seen[review.Reviewer] {
				seen[review.Reviewer] = true
				ids = append(ids, review.Reviewer)
			}
		}
	}
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := userCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviewers []models.User
	if err := cursor.All(ctx, &reviewers); err != nil {
		return nil, err
	}
	for _, reviewer := range reviewers {
		names[reviewer.Id] = reviewer.Firstname + " " + reviewer.Lastname
	}
	return names, nil
}

// ---- activity logs ----

func GetActivityLogs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filters := services.ActivityLogFilters{
		TargetType: c.Query("targetType"),
	}
	if adminId := c.Query("adminId"); adminId != "" {
		id, err := primitive.ObjectIDFromHex(adminId)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid admin Id",
			})
		}
		filters.AdminId = &id
	}
	if startDate := c.Query("startDate"); startDate != "" {
		start, err := time.Parse(time.RFC3339, startDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid startDate",
			})
		}
		filters.StartDate = &start
	}
	if endDate := c.Query("endDate"); endDate != "" {
		end, err := time.Parse(time.RFC3339, endDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid endDate",
			})
		}
		filters.EndDate = &end
	}

	logs, err := services.GetActivityLogs(ctx, filters)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched activity logs",
		Result:  &fiber.Map{"logs": logs},
	})
}
