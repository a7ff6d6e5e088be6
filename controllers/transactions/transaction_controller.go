package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/models"
	"oldphone-deals-api/responses"
)

var transactionCollection *mongo.Collection = configs.GetCollection("transactions")
var listingCollection *mongo.Collection = configs.GetCollection("listings")
var userCollection *mongo.Collection = configs.GetCollection("users")

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Code:    responses.CodeServerError,
		Message: "Server error occurred. Please try again later.",
	})
}

type transactionItem struct {
	Id       string `json:"_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateTransaction records a purchase and decrements stock for each item.
// The transaction insert and the stock updates are separate writes; a stock
// update failing does not roll back the recorded transaction.
func CreateTransaction(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Items      []transactionItem `json:"items"`
		TotalPrice float64           `json:"totalPrice"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if len(reqBody.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Items are required",
		})
	}

	userId, _ := c.Locals("userId").(string)
	buyerID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	items := make([]models.BoughtItem, 0, len(reqBody.Items))
	for _, item := range reqBody.Items {
		items = append(items, models.BoughtItem{Name: item.Name, Quantity: item.Quantity})
	}

	transaction := models.Transaction{
		Id:         primitive.NewObjectID(),
		Buyer:      buyerID,
		Items:      items,
		TotalPrice: reqBody.TotalPrice,
		CreatedAt:  time.Now(),
	}
	if _, err := transactionCollection.InsertOne(ctx, transaction); err != nil {
		return serverError(c)
	}

	for _, item := range reqBody.Items {
		listingID, err := primitive.ObjectIDFromHex(item.Id)
		if err != nil {
			continue
		}
		var listing models.Listing
		if err := listingCollection.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing); err != nil {
			continue
		}
		newStock := models.ClampStock(listing.Stock, item.Quantity)
		if _, err := listingCollection.UpdateOne(ctx, bson.M{"_id": listingID},
			bson.M{"$set": bson.M{"stock": newStock, "updatedAt": time.Now()}}); err != nil {
			return serverError(c)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Transaction created successfully",
		Result:  &fiber.Map{"transaction": transaction},
	})
}

// GetAllTransactions lists transactions with optional buyer filter and
// sorting, joining in each buyer's display name.
func GetAllTransactions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if buyer := c.Query("buyer"); buyer != "" {
		buyerID, err := primitive.ObjectIDFromHex(buyer)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid buyer Id",
			})
		}
		filter["buyer"] = buyerID
	}

	sortField := c.Query("sortField", "createdAt")
	sortOrder := -1
	if c.Query("sortOrder") == "asc" {
		sortOrder = 1
	}

	cursor, err := transactionCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: sortField, Value: sortOrder}}))
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return serverError(c)
	}

	buyerNames, err := lookupBuyers(ctx, transactions)
	if err != nil {
		return serverError(c)
	}

	results := make([]fiber.Map, 0, len(transactions))
	for _, t := range transactions {
		results = append(results, fiber.Map{
			"_id":        t.Id,
			"buyer":      t.Buyer,
			"buyerName":  buyerNames[t.Buyer],
			"items":      t.Items,
			"totalPrice": t.TotalPrice,
			"createdAt":  t.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched transactions",
		Result:  &fiber.Map{"transactions": results},
	})
}

// GetRecentTransactions returns up to ten transactions created after the
// startTime query parameter (epoch milliseconds, default one minute ago).
func GetRecentTransactions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	startMillis := c.QueryInt("startTime", int(time.Now().Add(-time.Minute).UnixMilli()))
	start := time.UnixMilli(int64(startMillis))

	cursor, err := transactionCollection.Find(ctx,
		bson.M{"createdAt": bson.M{"$gt": start}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(10))
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return serverError(c)
	}

	buyerNames, err := lookupBuyers(ctx, transactions)
	if err != nil {
		return serverError(c)
	}

	results := make([]fiber.Map, 0, len(transactions))
	for _, t := range transactions {
		results = append(results, fiber.Map{
			"_id":        t.Id,
			"buyerName":  buyerNames[t.Buyer],
			"items":      t.Items,
			"totalPrice": t.TotalPrice,
			"createdAt":  t.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched recent transactions",
		Result:  &fiber.Map{"transactions": results},
	})
}

// ExportCSV streams all transactions as a CSV attachment.
func ExportCSV(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := transactionCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return serverError(c)
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return serverError(c)
	}

	buyerNames, err := lookupBuyers(ctx, transactions)
	if err != nil {
		return serverError(c)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=transactions.csv")
	return c.SendString(models.TransactionsCSV(transactions, buyerNames))
}

func lookupBuyers(ctx context.Context, transactions []models.Transaction) (map[primitive.ObjectID]string, error) {
	names := map[primitive.ObjectID]string{}
	if len(transactions) == 0 {
		return names, nil
	}

	ids := make([]primitive.ObjectID, 0, len(transactions))
	seen := map[primitive.ObjectID]bool{}
	for _, t := range transactions {
		if !seen[t.Buyer] {
			seen[t.Buyer] = true
			ids = append(ids, t.Buyer)
		}
	}

	cursor, err := userCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var buyers []models.User
	if err := cursor.All(ctx, &buyers); err != nil {
		return nil, err
	}
	for _, buyer := range buyers {
		names[buyer.Id] = buyer.Firstname + " " + buyer.Lastname
	}
	return names, nil
}
