package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddCartItemRejectsNonPositiveQuantity(t *testing.T) {
	u := &User{}
	product := primitive.NewObjectID()

	if err := u.AddCartItem(product, 0, 10); err != ErrInvalidQuantity {
		t.Fatalf("quantity 0: got %v, want ErrInvalidQuantity", err)
	}
	if err := u.AddCartItem(product, -3, 10); err != ErrInvalidQuantity {
		t.Fatalf("quantity -3: got %v, want ErrInvalidQuantity", err)
	}
	if len(u.Cart) != 0 {
		t.Fatalf("cart should be untouched, has %d entries", len(u.Cart))
	}
}

func TestAddCartItemStockCeiling(t *testing.T) {
	u := &User{}
	product := primitive.NewObjectID()

	if err := u.AddCartItem(product, 5, 5); err != nil {
		t.Fatalf("quantity == stock should succeed: %v", err)
	}
	if err := u.AddCartItem(product, 1, 5); err != ErrInsufficientStock {
		t.Fatalf("exceeding stock on merge: got %v, want ErrInsufficientStock", err)
	}
	if u.Cart[0].Quantity != 5 {
		t.Fatalf("failed add must not change quantity, got %d", u.Cart[0].Quantity)
	}

	other := primitive.NewObjectID()
	if err := u.AddCartItem(other, 6, 5); err != ErrInsufficientStock {
		t.Fatalf("new entry over stock: got %v, want ErrInsufficientStock", err)
	}
}

func TestAddCartItemMergesSameListing(t *testing.T) {
	u := &User{}
	product := primitive.NewObjectID()

	if err := u.AddCartItem(product, 2, 10); err != nil {
		t.Fatal(err)
	}
	if err := u.AddCartItem(product, 3, 10); err != nil {
		t.Fatal(err)
	}

	if len(u.Cart) != 1 {
		t.Fatalf("same listing must keep one entry, got %d", len(u.Cart))
	}
	if u.Cart[0].Quantity != 5 {
		t.Fatalf("quantities should merge to 5, got %d", u.Cart[0].Quantity)
	}
}

func TestSetCartItemQuantity(t *testing.T) {
	u := &User{}
	product := primitive.NewObjectID()
	if err := u.AddCartItem(product, 2, 10); err != nil {
		t.Fatal(err)
	}

	if err := u.SetCartItemQuantity(product, 7, 10); err != nil {
		t.Fatal(err)
	}
	if u.Cart[0].Quantity != 7 {
		t.Fatalf("got quantity %d, want 7", u.Cart[0].Quantity)
	}

	if err := u.SetCartItemQuantity(product, 11, 10); err != ErrInsufficientStock {
		t.Fatalf("got %v, want ErrInsufficientStock", err)
	}
	if err := u.SetCartItemQuantity(product, 0, 10); err != ErrInvalidQuantity {
		t.Fatalf("got %v, want ErrInvalidQuantity", err)
	}
	if err := u.SetCartItemQuantity(primitive.NewObjectID(), 1, 10); err != ErrCartItemNotFound {
		t.Fatalf("got %v, want ErrCartItemNotFound", err)
	}
}

func TestRemoveCartItem(t *testing.T) {
	u := &User{}
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	u.AddCartItem(first, 1, 5)
	u.AddCartItem(second, 2, 5)

	u.RemoveCartItem(first)
	if len(u.Cart) != 1 || u.Cart[0].Product != second {
		t.Fatalf("unexpected cart after remove: %+v", u.Cart)
	}

	// absent item is a no-op
	u.RemoveCartItem(first)
	if len(u.Cart) != 1 {
		t.Fatalf("removing absent item changed cart: %+v", u.Cart)
	}
}

func TestClearCart(t *testing.T) {
	u := &User{}
	u.AddCartItem(primitive.NewObjectID(), 1, 5)
	u.ClearCart()
	if len(u.Cart) != 0 {
		t.Fatalf("cart not empty after clear: %+v", u.Cart)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	u := &User{}
	if err := u.SetPassword("Hunter2!secret"); err != nil {
		t.Fatal(err)
	}
	if u.Password == "Hunter2!secret" {
		t.Fatal("password stored in plain text")
	}
	if !u.ComparePassword("Hunter2!secret") {
		t.Fatal("correct password rejected")
	}
	if u.ComparePassword("wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestCanLogin(t *testing.T) {
	cases := []struct {
		name string
		user User
		want error
	}{
		{"verified user", User{Verified: true}, nil},
		{"unverified user", User{}, ErrEmailNotVerified},
		{"disabled user", User{Verified: true, Disabled: true}, ErrAccountDisabled},
		{"disabled beats unverified", User{Disabled: true}, ErrAccountDisabled},
		{"unverified admin", User{IsAdmin: true}, nil},
		{"disabled admin", User{IsAdmin: true, Disabled: true}, ErrAccountDisabled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.CanLogin(); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAddToWishlist(t *testing.T) {
	u := &User{}
	product := primitive.NewObjectID()

	if !u.AddToWishlist(product) {
		t.Fatal("first add should report a change")
	}
	if u.AddToWishlist(product) {
		t.Fatal("duplicate add should report no change")
	}
	if len(u.Wishlist) != 1 {
		t.Fatalf("wishlist has %d entries, want 1", len(u.Wishlist))
	}
}
