package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is embedded in its listing; it has no identity outside the parent.
type Review struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reviewer  primitive.ObjectID `bson:"reviewer" json:"reviewer"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment   string             `bson:"comment" json:"comment"`
	Hidden    bool               `bson:"hidden" json:"hidden"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Listing struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Brand     string             `bson:"brand" json:"brand" validate:"required"`
	Image     string             `bson:"image" json:"image"`
	Stock     int                `bson:"stock" json:"stock" validate:"min=0"`
	Seller    primitive.ObjectID `bson:"seller" json:"seller"`
	Price     float64            `bson:"price" json:"price" validate:"min=0"`
	Disabled  bool               `bson:"disabled" json:"disabled"`
	Reviews   []Review           `bson:"reviews" json:"reviews"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VisibleReviews filters out hidden reviews. Every buyer-facing read goes
// through this; moderation reads return the full slice instead.
func (l *Listing) VisibleReviews() []Review {
	visible := make([]Review, 0, len(l.Reviews))
	for _, review := range l.Reviews {
		if !review.Hidden {
			visible = append(visible, review)
		}
	}
	return visible
}

func (l *Listing) FindReview(id primitive.ObjectID) *Review {
	for i := range l.Reviews {
		if l.Reviews[i].Id == id {
			return &l.Reviews[i]
		}
	}
	return nil
}

func (l *Listing) AverageRating() float64 {
	if len(l.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range l.Reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(l.Reviews))
}
