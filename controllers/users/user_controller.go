package userController

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/models"
	"oldphone-deals-api/responses"
	"oldphone-deals-api/services"
)

var userCollection *mongo.Collection = configs.GetCollection("users")
var listingCollection *mongo.Collection = configs.GetCollection("listings")
var tokenCollection *mongo.Collection = configs.GetCollection("verification_tokens")

// currentUser resolves the token-authenticated user id from Locals and
// loads the document.
func currentUser(ctx context.Context, c *fiber.Ctx) (*models.User, error) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return nil, fiber.ErrUnauthorized
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, fiber.ErrUnauthorized
	}
	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return nil, fiber.ErrNotFound
	}
	return &user, nil
}

func respondUserError(c *fiber.Ctx, err error) error {
	switch err {
	case fiber.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	case fiber.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	default:
		return serverError(c)
	}
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Code:    responses.CodeServerError,
		Message: "Server error occurred. Please try again later.",
	})
}

func profilePayload(user *models.User) fiber.Map {
	return fiber.Map{
		"_id":       user.Id.Hex(),
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"email":     user.Email,
		"isAdmin":   user.IsAdmin,
	}
}

func GetUserInfo(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User fetched successfully",
		Result:  &fiber.Map{"user": profilePayload(user)},
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Firstname == "" || reqBody.Lastname == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "First name and last name are required",
		})
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	user.Firstname = reqBody.Firstname
	user.Lastname = reqBody.Lastname
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"firstname": user.Firstname, "lastname": user.Lastname}}); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
		Result:  &fiber.Map{"user": profilePayload(user)},
	})
}

func VerifyPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Password is required",
		})
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	if !user.ComparePassword(reqBody.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid password",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Password verified successfully",
	})
}

func ChangePassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.OldPassword == "" || reqBody.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Both old and new passwords are required",
		})
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	if !user.ComparePassword(reqBody.OldPassword) {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Current password is incorrect",
		})
	}

	if err := user.SetPassword(reqBody.NewPassword); err != nil {
		return serverError(c)
	}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"password": user.Password}}); err != nil {
		return serverError(c)
	}

	if err := services.SendPasswordChangeConfirmation(user.Email); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Password changed successfully",
	})
}

// RequestEmailChange starts the two-step confirmation: password check, new
// email uniqueness, then a token bound to both addresses mailed to the
// CURRENT address.
func RequestEmailChange(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		NewEmail string `json:"newEmail"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.NewEmail == "" || reqBody.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "New email and password are required",
		})
	}

	user, err := currentUser(ctx, c)
	if err != nil {
		return respondUserError(c, err)
	}

	if !user.ComparePassword(reqBody.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Current password is incorrect",
		})
	}

	newEmail := strings.ToLower(strings.TrimSpace(reqBody.NewEmail))
	if newEmail == user.Email {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "New email must be different from current email",
		})
	}

	if err := userCollection.FindOne(ctx, bson.M{"email": newEmail}).Err(); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email is already in use",
		})
	} else if err != mongo.ErrNoDocuments {
		return serverError(c)
	}

	changeToken, err := models.NewEmailChangeToken(user.Id, user.Email, newEmail)
	if err != nil {
		return serverError(c)
	}
	if _, err := tokenCollection.InsertOne(ctx, changeToken); err != nil {
		return serverError(c)
	}

	if err := services.SendEmailChangeConfirmation(user.Email, newEmail, changeToken.Token); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Email change confirmation sent to your current email address",
	})
}

// ValidateEmailChangeToken reports whether an email-change token is still
// redeemable and which address it would activate.
func ValidateEmailChangeToken(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var changeToken models.VerificationToken
	err := tokenCollection.FindOne(ctx, bson.M{"token": c.Params("token")}).Decode(&changeToken)
	if err != nil || changeToken.NewEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Code:    responses.CodeInvalidToken,
			Message: "Invalid or expired token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Token is valid",
		Result:  &fiber.Map{"valid": true, "newEmail": changeToken.NewEmail},
	})
}

// ConfirmEmailChange is the only transition that mutates the email. It also
// re-verifies the account and deletes the token (one-shot); the old address
// gets a notification.
func ConfirmEmailChange(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var changeToken models.VerificationToken
	err := tokenCollection.FindOne(ctx,
		bson.M{"token": c.Params("token"), "type": models.TokenTypeEmail}).Decode(&changeToken)
	if err != nil || changeToken.NewEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Code:    responses.CodeInvalidToken,
			Message: "Invalid or expired token",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": changeToken.UserId}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	oldEmail := user.Email
	user.Email = changeToken.NewEmail
	user.Verified = true

	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"email": user.Email, "verified": true}}); err != nil {
		return serverError(c)
	}
	if _, err := tokenCollection.DeleteOne(ctx, bson.M{"_id": changeToken.Id}); err != nil {
		return serverError(c)
	}

	services.SendAsync(func() error {
		return services.SendEmailChangeNotification(oldEmail)
	})

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Email changed successfully. You can now log in with your new email address.",
		Result:  &fiber.Map{"user": profilePayload(&user)},
	})
}
