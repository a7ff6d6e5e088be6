package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/middlewares"
	"oldphone-deals-api/models"
	"oldphone-deals-api/responses"
	"oldphone-deals-api/services"
)

var userCollection *mongo.Collection = configs.GetCollection("users")
var tokenCollection *mongo.Collection = configs.GetCollection("verification_tokens")

var validate = validator.New()

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"_id":       user.Id.Hex(),
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"email":     user.Email,
		"isAdmin":   user.IsAdmin,
	}
}

// Register creates an unverified account and sends the verification email.
func Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Firstname string `json:"firstname" validate:"required"`
		Lastname  string `json:"lastname" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Code:    responses.CodeMissingFields,
			Message: "Please fill in all required fields",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Code:    responses.CodeMissingFields,
			Message: "Please fill in all required fields",
		})
	}

	email := strings.ToLower(strings.TrimSpace(reqBody.Email))

	err := userCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(responses.ApiResponse{
			Status:  fiber.StatusConflict,
			Code:    responses.CodeUserExists,
			Message: "This email is already registered. Please use a different email or try logging in.",
		})
	}
	if err != mongo.ErrNoDocuments {
		return serverError(c)
	}

	newUser := models.User{
		Id:               primitive.NewObjectID(),
		Firstname:        strings.TrimSpace(reqBody.Firstname),
		Lastname:         strings.TrimSpace(reqBody.Lastname),
		Email:            email,
		RegistrationDate: time.Now(),
		Wishlist:         []primitive.ObjectID{},
		Cart:             []models.CartItem{},
	}
	if err := newUser.SetPassword(reqBody.Password); err != nil {
		return serverError(c)
	}

	if _, err := userCollection.InsertOne(ctx, newUser); err != nil {
		return serverError(c)
	}

	verificationToken, err := models.NewVerificationToken(newUser.Id, models.TokenTypeEmail)
	if err != nil {
		return serverError(c)
	}
	if _, err := tokenCollection.InsertOne(ctx, verificationToken); err != nil {
		return serverError(c)
	}

	if err := services.SendVerificationEmail(newUser.Email, verificationToken.Token); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Registration successful. Please check your email to verify your account.",
	})
}

// Login authenticates and then branches on role: admins get a server-side
// session, regular users a signed bearer cookie. Check order: credentials,
// disabled, unverified (admins bypass the verification check).
func Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Code:    responses.CodeMissingFields,
			Message: "Please fill in all required fields",
		})
	}

	email := strings.ToLower(strings.TrimSpace(reqBody.Email))

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments || (err == nil && !user.ComparePassword(reqBody.Password)) {
		// Same response for unknown email and wrong password.
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Code:    responses.CodeInvalidCredentials,
			Message: "Invalid email or password. Please check your credentials and try again.",
		})
	}
	if err != nil {
		return serverError(c)
	}

	switch user.CanLogin() {
	case models.ErrAccountDisabled:
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Code:    responses.CodeAccountDisabled,
			Message: "Your account has been disabled. Please contact support for assistance.",
		})
	case models.ErrEmailNotVerified:
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Code:    responses.CodeEmailNotVerified,
			Message: "Please verify your email before logging in. Check your inbox for the verification link.",
		})
	}

	now := time.Now()
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"lastLogin": now}}); err != nil {
		return serverError(c)
	}

	if user.IsAdmin {
		sess, err := configs.SessionStore().Get(c)
		if err != nil {
			return serverError(c)
		}
		sess.Set("userId", user.Id.Hex())
		sess.Set("isAdmin", true)
		if err := sess.Save(); err != nil {
			return serverError(c)
		}
	} else {
		token, err := middlewares.GenerateToken(user.Id.Hex(), false,
			[]byte(configs.EnvJWTSecret()), middlewares.TokenValidity)
		if err != nil {
			return serverError(c)
		}
		c.Cookie(&fiber.Cookie{
			Name:     "token",
			Value:    token,
			HTTPOnly: true,
			SameSite: "Lax",
			Expires:  now.Add(middlewares.TokenValidity),
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result:  &fiber.Map{"user": userPayload(&user)},
	})
}

// Logout detects which identity mechanism is active and clears precisely
// that one: destroy the session for admins, expire the bearer cookie for
// regular users.
func Logout(c *fiber.Ctx) error {
	sess, err := configs.SessionStore().Get(c)
	if err == nil {
		if isAdmin, _ := sess.Get("isAdmin").(bool); isAdmin {
			if err := sess.Destroy(); err != nil {
				return serverError(c)
			}
			return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
				Status:  fiber.StatusOK,
				Message: "Logged out successfully",
			})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user without the password. An
// active admin session takes priority over a bearer credential.
func GetCurrentUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var userId string
	if sess, err := configs.SessionStore().Get(c); err == nil {
		if isAdmin, _ := sess.Get("isAdmin").(bool); isAdmin {
			userId, _ = sess.Get("userId").(string)
		}
	}
	if userId == "" {
		userId, _ = c.Locals("userId").(string)
	}
	if userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid User ID format",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User fetched successfully",
		Result:  &fiber.Map{"user": user},
	})
}

// VerifyEmail redeems a one-shot verification token. When the token carries
// an email it is an email-change redemption and the stored address is
// applied; either way the account ends up verified and the token deleted.
func VerifyEmail(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	tokenParam := c.Params("token")

	var verificationToken models.VerificationToken
	err := tokenCollection.FindOne(ctx, bson.M{"token": tokenParam}).Decode(&verificationToken)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Code:    responses.CodeInvalidToken,
			Message: "The verification link is invalid. Please request a new one.",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": verificationToken.UserId}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Code:    responses.CodeUserNotFound,
			Message: "User account not found. Please check your email or register for a new account.",
		})
	}

	update := bson.M{"verified": true}
	if verificationToken.Email != "" && verificationToken.Type == models.TokenTypeEmail {
		user.Email = verificationToken.Email
		update["email"] = verificationToken.Email
	}
	user.Verified = true

	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{"$set": update}); err != nil {
		return serverError(c)
	}
	if _, err := tokenCollection.DeleteOne(ctx, bson.M{"_id": verificationToken.Id}); err != nil {
		return serverError(c)
	}

	if verificationToken.Email != "" {
		services.SendAsync(func() error {
			return services.SendEmailChangeNotification(verificationToken.Email)
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Email verified successfully! You can now log in.",
		Result: &fiber.Map{
			"user": fiber.Map{
				"_id":      user.Id.Hex(),
				"email":    user.Email,
				"verified": user.Verified,
			},
		},
	})
}

// ForgotPassword issues a reset token and mails the reset link.
func ForgotPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill in all required fields",
		})
	}

	email := strings.ToLower(strings.TrimSpace(reqBody.Email))

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "No account found with this email",
		})
	}

	resetToken, err := models.NewVerificationToken(user.Id, models.TokenTypeReset)
	if err != nil {
		return serverError(c)
	}
	if _, err := tokenCollection.InsertOne(ctx, resetToken); err != nil {
		return serverError(c)
	}

	if err := services.SendPasswordResetEmail(user.Email, resetToken.Token); err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Password reset instructions have been sent to your email",
	})
}

// ResetPassword redeems a reset token. The password update and the token
// deletion run as a parallel pair; the confirmation mail goes out after the
// response.
func ResetPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	tokenParam := c.Params("token")

	var reqBody struct {
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill in all required fields",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Passwords must be 8 letters long",
		})
	}

	var verificationToken models.VerificationToken
	err := tokenCollection.FindOne(ctx,
		bson.M{"token": tokenParam, "type": models.TokenTypeReset}).Decode(&verificationToken)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Code:    responses.CodeInvalidToken,
			Message: "Invalid or expired reset token",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": verificationToken.UserId}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	if err := user.SetPassword(reqBody.Password); err != nil {
		return serverError(c)
	}

	// The save and the one-shot token deletion are issued as a batch.
	saveErr := make(chan error, 1)
	go func() {
		_, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id},
			bson.M{"$set": bson.M{"password": user.Password}})
		saveErr <- err
	}()
	_, deleteErr := tokenCollection.DeleteOne(ctx, bson.M{"_id": verificationToken.Id})
	if err := <-saveErr; err != nil {
		return serverError(c)
	}
	if deleteErr != nil {
		return serverError(c)
	}

	services.SendAsync(func() error {
		return services.SendPasswordChangeConfirmation(user.Email)
	})

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Password has been reset successfully",
	})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Code:    responses.CodeServerError,
		Message: "Server error occurred. Please try again later.",
	})
}
