package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, 42, "manager", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, TypeAccess, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id = %d, want 42", claims.UserID)
	}
	if claims.Role != "manager" {
		t.Errorf("role = %s, want manager", claims.Role)
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	token, err := GenerateToken(secret, 42, "viewer", TypeRefresh, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, TypeAccess, token); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 42, "viewer", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken([]byte("other-secret"), TypeAccess, token); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := GenerateToken(secret, 42, "viewer", TypeAccess, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, TypeAccess, token); err == nil {
		t.Fatal("expired token accepted")
	}
}
