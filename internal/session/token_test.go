package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/biogleam/biogleam/internal/models"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestUnverifiedDecoder_Decode(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"userId":    float64(42),
		"name":      "Ada",
		"email":     "ada@biogleam.com",
		"role":      "admin",
		"createdAt": "2025-01-01T00:00:00Z",
	})

	sess, err := UnverifiedDecoder{}.Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &models.Session{
		UserID:    42,
		Name:      "Ada",
		Email:     "ada@biogleam.com",
		Role:      models.RoleAdmin,
		CreatedAt: "2025-01-01T00:00:00Z",
	}
	if *sess != *want {
		t.Errorf("session = %+v, want %+v", sess, want)
	}
}

func TestUnverifiedDecoder_IgnoresSignature(t *testing.T) {
	// The decoder reads the payload only; a bogus signature still decodes.
	token := signToken(t, jwt.MapClaims{"userId": float64(7), "email": "x@y.com"})
	tampered := token[:len(token)-4] + "AAAA"

	sess, err := UnverifiedDecoder{}.Decode(tampered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.UserID != 7 {
		t.Errorf("userId = %d, want 7", sess.UserID)
	}
}

func TestUnverifiedDecoder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not a jwt", "garbage"},
		{"two segments", "aaaa.bbbb"},
		{"payload without identity", signTokenHelper(jwt.MapClaims{"role": "admin"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (UnverifiedDecoder{}).Decode(tt.token); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func signTokenHelper(claims jwt.MapClaims) string {
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	return token
}
