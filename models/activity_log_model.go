package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionDelete  = "DELETE"
	ActionDisable = "DISABLE"
	ActionEnable  = "ENABLE"

	TargetUser    = "USER"
	TargetListing = "LISTING"
	TargetReview  = "REVIEW"

	LogStatusSuccess = "SUCCESS"
	LogStatusFailure = "FAILURE"
)

type LogDetails struct {
	Before bson.M `bson:"before,omitempty" json:"before,omitempty"`
	After  bson.M `bson:"after,omitempty" json:"after,omitempty"`
}

// ActivityLog is append-only: one entry per session-authenticated admin
// mutation, never updated or deleted.
type ActivityLog struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AdminId    primitive.ObjectID `bson:"adminId" json:"adminId"`
	Action     string             `bson:"action" json:"action"`
	TargetType string             `bson:"targetType" json:"targetType"`
	TargetId   primitive.ObjectID `bson:"targetId" json:"targetId"`
	Details    LogDetails         `bson:"details" json:"details"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Status     string             `bson:"status" json:"status"`
}

// UserSnapshot captures the audited user fields for before/after details.
func UserSnapshot(u *User) bson.M {
	return bson.M{
		"firstname": u.Firstname,
		"lastname":  u.Lastname,
		"email":     u.Email,
		"disabled":  u.Disabled,
		"verified":  u.Verified,
	}
}

// ListingSnapshot captures the audited listing fields.
func ListingSnapshot(l *Listing) bson.M {
	return bson.M{
		"title":    l.Title,
		"brand":    l.Brand,
		"price":    l.Price,
		"stock":    l.Stock,
		"disabled": l.Disabled,
	}
}
