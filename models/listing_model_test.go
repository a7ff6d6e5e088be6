package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVisibleReviewsFiltersHidden(t *testing.T) {
	listing := Listing{
		Reviews: []Review{
			{Id: primitive.NewObjectID(), Rating: 5},
			{Id: primitive.NewObjectID(), Rating: 1, Hidden: true},
			{Id: primitive.NewObjectID(), Rating: 3},
		},
	}

	visible := listing.VisibleReviews()
	if len(visible) != 2 {
		t.Fatalf("got %d visible reviews, want 2", len(visible))
	}
	for _, review := range visible {
		if review.Hidden {
			t.Fatalf("hidden review leaked: %+v", review)
		}
	}

	// the full slice is untouched for moderation reads
	if len(listing.Reviews) != 3 {
		t.Fatalf("underlying reviews mutated, have %d", len(listing.Reviews))
	}
}

func TestVisibleReviewsEmpty(t *testing.T) {
	listing := Listing{}
	if got := listing.VisibleReviews(); len(got) != 0 {
		t.Fatalf("got %d reviews from empty listing", len(got))
	}
}

func TestFindReview(t *testing.T) {
	target := primitive.NewObjectID()
	listing := Listing{
		Reviews: []Review{
			{Id: primitive.NewObjectID()},
			{Id: target, Comment: "screen has a scratch"},
		},
	}

	review := listing.FindReview(target)
	if review == nil {
		t.Fatal("review not found")
	}
	if review.Comment != "screen has a scratch" {
		t.Fatalf("wrong review: %+v", review)
	}

	// the pointer aliases the slice, so toggling through it sticks
	review.Hidden = true
	if !listing.Reviews[1].Hidden {
		t.Fatal("toggle through FindReview did not reach the listing")
	}
	review.Hidden = false
	if listing.Reviews[1].Hidden {
		t.Fatal("second toggle did not restore visibility")
	}

	if listing.FindReview(primitive.NewObjectID()) != nil {
		t.Fatal("found a review that does not exist")
	}
}

func TestAverageRating(t *testing.T) {
	listing := Listing{}
	if got := listing.AverageRating(); got != 0 {
		t.Fatalf("no reviews: got %v, want 0", got)
	}

	listing.Reviews = []Review{{Rating: 5}, {Rating: 2}, {Rating: 2, Hidden: true}}
	if got := listing.AverageRating(); got != 3 {
		t.Fatalf("got %v, want 3 (hidden reviews count toward the average)", got)
	}
}
