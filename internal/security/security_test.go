package security

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParseAdminToken(t *testing.T) {
	token, errToken := GenerateAdminToken("secret", 42, "admin@blockchain.com", "Platform Admin", "Admin", time.Hour)
	if errToken != nil {
		t.Fatalf("generate: %v", errToken)
	}

	claims, errParse := ParseAdminToken("secret", token)
	if errParse != nil {
		t.Fatalf("parse: %v", errParse)
	}
	if claims.AdminID != 42 || claims.Email != "admin@blockchain.com" || claims.Role != "Admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseAdminTokenRejectsWrongSecret(t *testing.T) {
	token, errToken := GenerateAdminToken("secret", 1, "a@b.c", "A", "Admin", time.Hour)
	if errToken != nil {
		t.Fatalf("generate: %v", errToken)
	}

	if _, errParse := ParseAdminToken("other-secret", token); !errors.Is(errParse, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", errParse)
	}
}

func TestParseAdminTokenRejectsExpired(t *testing.T) {
	token, errToken := GenerateAdminToken("secret", 1, "a@b.c", "A", "Admin", -time.Minute)
	if errToken != nil {
		t.Fatalf("generate: %v", errToken)
	}

	if _, errParse := ParseAdminToken("secret", token); !errors.Is(errParse, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", errParse)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, errHash := HashPassword("admin123")
	if errHash != nil {
		t.Fatalf("hash: %v", errHash)
	}
	if !CheckPassword(hash, "admin123") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("expected mismatched password to fail")
	}
}
