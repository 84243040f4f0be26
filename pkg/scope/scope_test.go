package scope

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m := New("test-secret", time.Hour)

	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if payload.UserID != "user-123" {
		t.Errorf("expected user-123, got %s", payload.UserID)
	}
	if payload.ExpiresAt.Before(time.Now()) {
		t.Errorf("token should not be expired yet")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, _ := New("secret-a", time.Hour).Issue("user-123")

	if _, err := New("secret-b", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := New("test-secret", -time.Minute)
	token, _ := m.Issue("user-123")

	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := New("test-secret", time.Hour)
	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
