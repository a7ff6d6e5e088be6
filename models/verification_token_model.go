package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TokenTypeEmail = "email"
	TokenTypeReset = "reset"
)

// TokenLifetime is the schema default and applies to every token type,
// including registration and password reset. The TTL index on expires
// removes stale documents; there is no application-side reaper.
const TokenLifetime = 5 * time.Minute

// VerificationToken is a one-shot secret bound to a user and purpose. It is
// deleted on successful redemption. For in-flight email changes Email holds
// the current address and NewEmail the requested one.
type VerificationToken struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId    primitive.ObjectID `bson:"userId" json:"userId"`
	Token     string             `bson:"token" json:"-"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	NewEmail  string             `bson:"newEmail,omitempty" json:"newEmail,omitempty"`
	Type      string             `bson:"type" json:"type"`
	Expires   time.Time          `bson:"expires" json:"expires"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GenerateTokenString returns 32 random bytes hex-encoded.
func GenerateTokenString() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func NewVerificationToken(userId primitive.ObjectID, tokenType string) (VerificationToken, error) {
	token, err := GenerateTokenString()
	if err != nil {
		return VerificationToken{}, err
	}
	now := time.Now()
	return VerificationToken{
		Id:        primitive.NewObjectID(),
		UserId:    userId,
		Token:     token,
		Type:      tokenType,
		Expires:   now.Add(TokenLifetime),
		CreatedAt: now,
	}, nil
}

// NewEmailChangeToken binds a token to the user's current and requested
// email addresses for the two-step confirmation flow.
func NewEmailChangeToken(userId primitive.ObjectID, currentEmail, newEmail string) (VerificationToken, error) {
	token, err := NewVerificationToken(userId, TokenTypeEmail)
	if err != nil {
		return VerificationToken{}, err
	}
	token.Email = currentEmail
	token.NewEmail = newEmail
	return token, nil
}

func (t *VerificationToken) Expired() bool {
	return time.Now().After(t.Expires)
}
