package token

import (
	"errors"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	signed, err := codec.Sign("alice", true)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %q", claims.Username)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected admin flag set")
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	signed, err := NewCodec("secret-a", time.Hour).Sign("bob", false)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret-b", time.Hour).Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_Expired(t *testing.T) {
	signed, err := NewCodec("secret", -time.Minute).Sign("bob", false)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret", time.Hour).Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	if _, err := codec.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
