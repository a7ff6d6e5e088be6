package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("quantity exceeds stock")
	ErrCartItemNotFound  = errors.New("item not found in cart")
	ErrAccountDisabled   = errors.New("account disabled")
	ErrEmailNotVerified  = errors.New("email not verified")
)

// CartItem references a listing by id; one entry per distinct listing.
type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

type User struct {
	Id               primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Firstname        string               `bson:"firstname" json:"firstname" validate:"required"`
	Lastname         string               `bson:"lastname" json:"lastname" validate:"required"`
	Email            string               `bson:"email" json:"email" validate:"required,email"`
	Password         string               `bson:"password" json:"-"`
	IsAdmin          bool                 `bson:"isAdmin" json:"isAdmin"`
	Verified         bool                 `bson:"verified" json:"verified"`
	Disabled         bool                 `bson:"disabled" json:"disabled"`
	LastLogin        *time.Time           `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	RegistrationDate time.Time            `bson:"registrationDate" json:"registrationDate"`
	Wishlist         []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	Cart             []CartItem           `bson:"cart" json:"cart"`
}

func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}

// CanLogin gates login after a successful password check. Disabled beats
// unverified; admins bypass the verification check entirely.
func (u *User) CanLogin() error {
	if u.Disabled {
		return ErrAccountDisabled
	}
	if !u.Verified && !u.IsAdmin {
		return ErrEmailNotVerified
	}
	return nil
}

// AddCartItem merges quantity into the existing entry for the listing, or
// appends a new one. The combined quantity may not exceed the listing's
// current stock.
func (u *User) AddCartItem(product primitive.ObjectID, quantity, stock int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i, item := range u.Cart {
		if item.Product == product {
			if item.Quantity+quantity > stock {
				return ErrInsufficientStock
			}
			u.Cart[i].Quantity += quantity
			return nil
		}
	}
	if quantity > stock {
		return ErrInsufficientStock
	}
	u.Cart = append(u.Cart, CartItem{Product: product, Quantity: quantity})
	return nil
}

// SetCartItemQuantity replaces the quantity of an existing cart entry.
func (u *User) SetCartItemQuantity(product primitive.ObjectID, quantity, stock int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i, item := range u.Cart {
		if item.Product == product {
			if quantity > stock {
				return ErrInsufficientStock
			}
			u.Cart[i].Quantity = quantity
			return nil
		}
	}
	return ErrCartItemNotFound
}

// RemoveCartItem drops the entry for the listing; removing an absent item
// is not an error.
func (u *User) RemoveCartItem(product primitive.ObjectID) {
	filtered := u.Cart[:0]
	for _, item := range u.Cart {
		if item.Product != product {
			filtered = append(filtered, item)
		}
	}
	u.Cart = filtered
}

func (u *User) ClearCart() {
	u.Cart = []CartItem{}
}

// AddToWishlist appends the listing if not already present and reports
// whether the wishlist changed.
func (u *User) AddToWishlist(product primitive.ObjectID) bool {
	for _, id := range u.Wishlist {
		if id == product {
			return false
		}
	}
	u.Wishlist = append(u.Wishlist, product)
	return true
}
