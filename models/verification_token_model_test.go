package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateTokenString(t *testing.T) {
	first, err := GenerateTokenString()
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 64 {
		t.Fatalf("token length %d, want 64 hex chars", len(first))
	}
	for _, r := range first {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Fatalf("non-hex character %q in token", r)
		}
	}

	second, err := GenerateTokenString()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("two generated tokens collided")
	}
}

func TestNewVerificationTokenExpiry(t *testing.T) {
	userId := primitive.NewObjectID()
	for _, tokenType := range []string{TokenTypeEmail, TokenTypeReset} {
		token, err := NewVerificationToken(userId, tokenType)
		if err != nil {
			t.Fatal(err)
		}
		if token.UserId != userId {
			t.Fatalf("token bound to wrong user: %v", token.UserId)
		}
		if token.Type != tokenType {
			t.Fatalf("got type %q, want %q", token.Type, tokenType)
		}
		lifetime := token.Expires.Sub(token.CreatedAt)
		if lifetime != TokenLifetime {
			t.Fatalf("%s token lifetime %v, want %v", tokenType, lifetime, TokenLifetime)
		}
		if token.Expired() {
			t.Fatal("fresh token reports expired")
		}
	}
}

func TestNewEmailChangeToken(t *testing.T) {
	userId := primitive.NewObjectID()
	token, err := NewEmailChangeToken(userId, "old@example.com", "new@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if token.Type != TokenTypeEmail {
		t.Fatalf("got type %q, want %q", token.Type, TokenTypeEmail)
	}
	if token.Email != "old@example.com" || token.NewEmail != "new@example.com" {
		t.Fatalf("addresses not carried: %+v", token)
	}
}

func TestExpired(t *testing.T) {
	token := VerificationToken{Expires: time.Now().Add(-time.Second)}
	if !token.Expired() {
		t.Fatal("past-expiry token reports valid")
	}
	token.Expires = time.Now().Add(time.Minute)
	if token.Expired() {
		t.Fatal("future-expiry token reports expired")
	}
}
