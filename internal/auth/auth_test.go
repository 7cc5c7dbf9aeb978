package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate("session-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.SessionID != "session-123" {
		t.Errorf("SessionID = %q, want session-123", claims.SessionID)
	}
	if claims.ExpiresAt != nil {
		t.Errorf("ExpiresAt = %v, want none", claims.ExpiresAt)
	}
}

func TestTokenManager_NoExpiry(t *testing.T) {
	m := NewTokenManager("test-secret")
	issued := time.Now()
	m.now = func() time.Time { return issued }

	token, err := m.Generate("session-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	m.now = func() time.Time { return issued.Add(30 * 24 * time.Hour) }
	if _, err := m.Validate(token); err != nil {
		t.Errorf("Validate a month later: %v", err)
	}
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("test-secret")
	other := NewTokenManager("other-secret")

	foreign, err := other.Generate("session-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	future := NewTokenManager("test-secret")
	future.now = func() time.Time { return time.Now().Add(time.Hour) }
	notYetValid, err := future.Generate("session-123")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrMissingToken},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "wrong secret", token: foreign, wantErr: ErrInvalidToken},
		{name: "not yet valid", token: notYetValid, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Validate(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSecretHashing(t *testing.T) {
	secret := NewSecret()
	hash, err := HashSecret(secret)
	if err != nil {
		t.Fatalf("HashSecret failed: %v", err)
	}
	if hash == secret {
		t.Fatal("hash should differ from the secret")
	}
	if err := CompareSecret(hash, secret); err != nil {
		t.Errorf("CompareSecret with the right secret: %v", err)
	}
	if err := CompareSecret(hash, "wrong"); !errors.Is(err, ErrSecretMismatch) {
		t.Errorf("CompareSecret with the wrong secret = %v, want ErrSecretMismatch", err)
	}
}
