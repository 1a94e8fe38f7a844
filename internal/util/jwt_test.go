package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, 42, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Issuer != TokenIssuer {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, TokenIssuer)
	}
}

func TestParseToken_ForeignIssuer(t *testing.T) {
	secret := "shared-secret"

	// same secret, someone else's issuer
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "somewhere-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := foreign.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign foreign token: %v", err)
	}

	if _, err := ParseToken(secret, tokenStr); err == nil {
		t.Error("ParseToken() accepted a token from another issuer")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("right-secret", 1, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken("wrong-secret", token); err == nil {
		t.Error("ParseToken() with wrong secret error = nil, want error")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	testCases := []string{
		"",
		"not-a-token",
		"aaa.bbb.ccc",
	}

	for _, in := range testCases {
		if _, err := ParseToken("secret", in); err == nil {
			t.Errorf("ParseToken(%q) error = nil, want error", in)
		}
	}
}

func TestGenerateToken_DefaultTTL(t *testing.T) {
	// non-positive lifetimes fall back to 24h instead of minting an
	// already-expired token
	token, err := GenerateToken("secret", 7, -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("token expired immediately, want 24h default lifetime")
	}
}
