package middlewares

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	signed, err := GenerateToken("6638a1b2c3d4e5f607182930", true, testSecret, TokenValidity)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(signed, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserId != "6638a1b2c3d4e5f607182930" {
		t.Fatalf("got userId %q", claims.UserId)
	}
	if !claims.IsAdmin {
		t.Fatal("isAdmin claim lost")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	signed, err := GenerateToken("user", false, testSecret, TokenValidity)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(signed, []byte("other-secret")); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	signed, err := GenerateToken("user", false, testSecret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(signed, testSecret); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt", testSecret); err == nil {
		t.Fatal("garbage string accepted")
	}
}
