package adminController

import (
	"reflect"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"oldphone-deals-api/models"
)

func moderationFixture() ([]models.Listing, map[primitive.ObjectID]string) {
	reviewer := primitive.NewObjectID()
	enabled := models.Listing{
		Id:    primitive.NewObjectID(),
		Title: "iPhone 8",
		Brand: "Apple",
		Reviews: []models.Review{
			{Id: primitive.NewObjectID(), Reviewer: reviewer, Rating: 5, Comment: "great battery"},
			{Id: primitive.NewObjectID(), Reviewer: reviewer, Rating: 1, Comment: "cracked screen", Hidden: true},
		},
	}
	disabled := models.Listing{
		Id:       primitive.NewObjectID(),
		Title:    "Galaxy S10",
		Brand:    "Samsung",
		Disabled: true,
		Reviews: []models.Review{
			{Id: primitive.NewObjectID(), Reviewer: reviewer, Rating: 3, Comment: "average"},
		},
	}
	names := map[primitive.ObjectID]string{reviewer: "Ada Lovelace"}
	return []models.Listing{enabled, disabled}, names
}

func TestFlattenReviewsStatusFiltersByListing(t *testing.T) {
	listings, names := moderationFixture()

	all := flattenReviews(listings, names, "", "", "")
	if len(all) != 3 {
		t.Fatalf("no filter: got %d reviews, want 3 (hidden ones included)", len(all))
	}

	active := flattenReviews(listings, names, "active", "", "")
	if len(active) != 2 {
		t.Fatalf("active: got %d reviews, want the 2 on the enabled listing", len(active))
	}
	for _, review := range active {
		if review.ListingTitle != "iPhone 8" {
			t.Fatalf("active filter leaked a disabled listing's review: %+v", review)
		}
	}

	off := flattenReviews(listings, names, "disabled", "", "")
	if len(off) != 1 || off[0].ListingTitle != "Galaxy S10" {
		t.Fatalf("disabled: got %+v, want the single Galaxy S10 review", off)
	}
}

func TestFlattenReviewsSearch(t *testing.T) {
	listings, names := moderationFixture()

	byComment := flattenReviews(listings, names, "", "", "CRACKED")
	if len(byComment) != 1 || !byComment[0].Hidden {
		t.Fatalf("comment search: got %+v", byComment)
	}

	byReviewer := flattenReviews(listings, names, "", "", "lovelace")
	if len(byReviewer) != 3 {
		t.Fatalf("reviewer search: got %d reviews, want all 3", len(byReviewer))
	}

	byTitle := flattenReviews(listings, names, "", "", "galaxy")
	if len(byTitle) != 1 || byTitle[0].Brand != "Samsung" {
		t.Fatalf("title search: got %+v", byTitle)
	}
}

func TestFlattenReviewsByReviewer(t *testing.T) {
	listings, names := moderationFixture()
	other := primitive.NewObjectID()

	if got := flattenReviews(listings, names, "", other.Hex(), ""); len(got) != 0 {
		t.Fatalf("unknown reviewer: got %d reviews, want 0", len(got))
	}
}

func TestUserSortDefaultIsPersistedField(t *testing.T) {
	userType := reflect.TypeOf(models.User{})
	for i := 0; i < userType.NumField(); i++ {
		tag := strings.Split(userType.Field(i).Tag.Get("bson"), ",")[0]
		if tag == userSortDefault {
			return
		}
	}
	t.Fatalf("default sort field %q is not a persisted User field", userSortDefault)
}
