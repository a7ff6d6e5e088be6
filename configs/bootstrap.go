package configs

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"oldphone-deals-api/models"
)

// EnsureAdminUser creates the bootstrap administrator account if no user
// with the configured admin email exists yet.
func EnsureAdminUser(ctx context.Context) error {
	users := GetCollection("users")
	adminEmail := EnvAdminEmail()

	err := users.FindOne(ctx, bson.M{"email": adminEmail}).Err()
	if err == nil {
		fmt.Println("Admin user already exists")
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	password := EnvAdminPassword()
	if password == "" {
		password = "Admin123!"
	}

	now := time.Now()
	admin := models.User{
		Id:               primitive.NewObjectID(),
		Firstname:        "Admin",
		Lastname:         "User",
		Email:            adminEmail,
		IsAdmin:          true,
		Verified:         true,
		Disabled:         false,
		LastLogin:        &now,
		RegistrationDate: now,
		Wishlist:         []primitive.ObjectID{},
		Cart:             []models.CartItem{},
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	if _, err := users.InsertOne(ctx, admin); err != nil {
		return err
	}
	fmt.Println("Admin user created")
	return nil
}
