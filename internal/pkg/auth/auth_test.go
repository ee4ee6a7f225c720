package auth

import (
	"testing"
	"time"

	"github.com/oshxona/resto/internal/domain/model"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})

	token, err := s.IssueToken(7, model.RoleKitchen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Role != model.RoleKitchen {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTStrategy("secret-a", Options{}).IssueToken(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewJWTStrategy("secret-b", Options{}).ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRejectsExpiredToken(t *testing.T) {
	s := &JWTStrategy{secret: []byte("secret"), ttl: -time.Minute}
	token, err := s.IssueToken(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := s.ParseToken(token); err != ErrInvalidToken {
			t.Errorf("ParseToken(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("pa55word")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Compare(hash, "pa55word"); err != nil {
		t.Fatalf("expected match: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
