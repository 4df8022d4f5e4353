package security

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/internal/domain/entity"
)

func newTestProvider(accessDuration time.Duration) *JWTProvider {
	return NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration:  accessDuration,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "test",
	})
}

func testUser() *entity.User {
	return &entity.User{
		ID:    primitive.NewObjectID(),
		Email: "user@example.com",
		Role:  entity.RoleUser,
	}
}

func TestJWTProvider_AccessTokenRoundTrip(t *testing.T) {
	p := newTestProvider(15 * time.Minute)
	user := testUser()

	token, err := p.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := p.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != user.ID.Hex() {
		t.Errorf("claims.UserID = %v, want %v", claims.UserID, user.ID.Hex())
	}
	if claims.Email != user.Email {
		t.Errorf("claims.Email = %v, want %v", claims.Email, user.Email)
	}
	if claims.Role != entity.RoleUser {
		t.Errorf("claims.Role = %v, want user", claims.Role)
	}
}

func TestJWTProvider_ExpiredAccessToken(t *testing.T) {
	p := newTestProvider(-time.Minute)
	token, err := p.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	_, err = p.ValidateAccessToken(token)
	if err != ErrExpiredToken {
		t.Errorf("ValidateAccessToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTProvider_TamperedToken(t *testing.T) {
	p := newTestProvider(15 * time.Minute)
	token, err := p.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	_, err = p.ValidateAccessToken(token + "x")
	if err != ErrInvalidToken {
		t.Errorf("ValidateAccessToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTProvider_WrongSecret(t *testing.T) {
	p := newTestProvider(15 * time.Minute)
	token, err := p.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	other := NewJWTProvider(&config.JWTConfig{
		Secret:              "a-completely-different-secret",
		AccessTokenDuration: 15 * time.Minute,
	})
	_, err = other.ValidateAccessToken(token)
	if err != ErrInvalidToken {
		t.Errorf("ValidateAccessToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTProvider_RefreshTokenRoundTrip(t *testing.T) {
	p := newTestProvider(15 * time.Minute)
	user := testUser()

	token, expiresAt, err := p.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if time.Until(expiresAt) < 23*time.Hour {
		t.Errorf("expiresAt = %v, want roughly a day out", expiresAt)
	}

	claims, err := p.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if claims.Subject != user.ID.Hex() {
		t.Errorf("claims.Subject = %v, want %v", claims.Subject, user.ID.Hex())
	}
	if claims.ID == "" {
		t.Error("refresh token has no jti")
	}
}

func TestJWTProvider_RefreshTokensAreUnique(t *testing.T) {
	p := newTestProvider(15 * time.Minute)
	user := testUser()

	first, _, err := p.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	second, _, err := p.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if first == second {
		t.Error("two refresh tokens for the same user are identical")
	}
}

func TestJWTProvider_GetAccessTokenDuration(t *testing.T) {
	p := newTestProvider(15 * time.Minute)
	if got := p.GetAccessTokenDuration(); got != 900 {
		t.Errorf("GetAccessTokenDuration() = %d, want 900", got)
	}
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "password123" {
		t.Error("Hash() returned the plaintext")
	}

	if err := hasher.Compare(hash, "password123"); err != nil {
		t.Errorf("Compare() error = %v", err)
	}
	if err := hasher.Compare(hash, "wrong-password"); err == nil {
		t.Error("Compare() accepted a wrong password")
	}
}
