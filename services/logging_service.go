package services

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"oldphone-deals-api/configs"
	"oldphone-deals-api/models"
)

// LogActivity appends an audit entry for an admin mutation. Callers treat
// it as best-effort: a logging failure must never roll back or block the
// mutation response.
func LogActivity(ctx context.Context, entry models.ActivityLog) error {
	entry.Id = primitive.NewObjectID()
	entry.Timestamp = time.Now()
	entry.Status = models.LogStatusSuccess

	_, err := configs.GetCollection("activity_logs").InsertOne(ctx, entry)
	if err != nil {
		log.Printf("failed to create activity log: %v", err)
	}
	return err
}

type ActivityLogFilters struct {
	AdminId    *primitive.ObjectID
	TargetType string
	StartDate  *time.Time
	EndDate    *time.Time
}

// GetActivityLogs returns audit entries newest first with the acting
// admin's name and email joined in.
func GetActivityLogs(ctx context.Context, filters ActivityLogFilters) ([]fiber.Map, error) {
	query := bson.M{}
	if filters.AdminId != nil {
		query["adminId"] = *filters.AdminId
	}
	if filters.TargetType != "" {
		query["targetType"] = filters.TargetType
	}
	if filters.StartDate != nil || filters.EndDate != nil {
		window := bson.M{}
		if filters.StartDate != nil {
			window["$gte"] = *filters.StartDate
		}
		if filters.EndDate != nil {
			window["$lte"] = *filters.EndDate
		}
		query["timestamp"] = window
	}

	cursor, err := configs.GetCollection("activity_logs").Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.ActivityLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	admins, err := lookupAdmins(ctx, logs)
	if err != nil {
		return nil, err
	}

	out := make([]fiber.Map, 0, len(logs))
	for _, entry := range logs {
		out = append(out, fiber.Map{
			"id":         entry.Id.Hex(),
			"adminId":    admins[entry.AdminId],
			"action":     entry.Action,
			"targetType": entry.TargetType,
			"targetId":   entry.TargetId.Hex(),
			"details":    entry.Details,
			"timestamp":  entry.Timestamp,
			"status":     entry.Status,
		})
	}
	return out, nil
}

func lookupAdmins(ctx context.Context, logs []models.ActivityLog) (map[primitive.ObjectID]fiber.Map, error) {
	ids := make([]primitive.ObjectID, 0, len(logs))
	seen := map[primitive.ObjectID]bool{}
	for _, entry := range logs {
		if !seen[entry.AdminId] {
			seen[entry.AdminId] = true
			ids = append(ids, entry.AdminId)
		}
	}

	admins := map[primitive.ObjectID]fiber.Map{}
	if len(ids) == 0 {
		return admins, nil
	}

	cursor, err := configs.GetCollection("users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, user := range users {
		admins[user.Id] = fiber.Map{
			"_id":       user.Id.Hex(),
			"firstname": user.Firstname,
			"lastname":  user.Lastname,
			"email":     user.Email,
		}
	}
	return admins, nil
}
