package auth

import (
	"testing"
	"time"

	"campusmap/pkg/models"
)

const testSecret = "test-secret-key-must-be-32-chars!"

func testService(t *testing.T) *JWTService {
	t.Helper()

	service, err := NewJWTService(JWTConfig{
		Secret:               testSecret,
		Issuer:               "test-issuer",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	return service
}

func testAdmin() *models.AdminUser {
	return &models.AdminUser{ID: "test-uuid", Username: "admin"}
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	for _, secret := range []string{"", "short"} {
		if _, err := NewJWTService(JWTConfig{Secret: secret}); err == nil {
			t.Errorf("Expected error for secret %q", secret)
		}
	}
}

func TestGenerateTokenPair(t *testing.T) {
	service := testService(t)

	tokenPair, err := service.GenerateTokenPair(testAdmin())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if tokenPair.AccessToken == "" {
		t.Error("Expected non-empty access token")
	}
	if tokenPair.RefreshToken == "" {
		t.Error("Expected non-empty refresh token")
	}
	if tokenPair.TokenType != "Bearer" {
		t.Errorf("Expected TokenType 'Bearer', got '%s'", tokenPair.TokenType)
	}
	if tokenPair.ExpiresIn != int64(15*time.Minute/time.Second) {
		t.Errorf("Expected ExpiresIn %d, got %d", int64(15*time.Minute/time.Second), tokenPair.ExpiresIn)
	}
}

func TestValidateAccessToken(t *testing.T) {
	service := testService(t)

	tokenPair, err := service.GenerateTokenPair(testAdmin())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	claims, err := service.ValidateAccessToken(tokenPair.AccessToken)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if claims.Username != "admin" {
		t.Errorf("Expected username 'admin', got '%s'", claims.Username)
	}
	if claims.UserID != "test-uuid" {
		t.Errorf("Expected UserID 'test-uuid', got '%s'", claims.UserID)
	}
	if !claims.IsAccessToken() {
		t.Error("Expected an access token")
	}
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	service := testService(t)

	tokenPair, err := service.GenerateTokenPair(testAdmin())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := service.ValidateAccessToken(tokenPair.RefreshToken); err != ErrInvalidTokenType {
		t.Errorf("Expected ErrInvalidTokenType, got: %v", err)
	}
}

func TestValidateRefreshToken(t *testing.T) {
	service := testService(t)

	tokenPair, err := service.GenerateTokenPair(testAdmin())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	claims, err := service.ValidateRefreshToken(tokenPair.RefreshToken)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !claims.IsRefreshToken() {
		t.Error("Expected a refresh token")
	}

	if _, err := service.ValidateRefreshToken(tokenPair.AccessToken); err != ErrInvalidTokenType {
		t.Errorf("Expected ErrInvalidTokenType, got: %v", err)
	}
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := testService(t)

	if _, err := service.ValidateToken("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got: %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := testService(t)

	other, err := NewJWTService(JWTConfig{Secret: "another-secret-key-that-is-32-chars"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	tokenPair, err := other.GenerateTokenPair(testAdmin())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := service.ValidateToken(tokenPair.AccessToken); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got: %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service, err := NewJWTService(JWTConfig{
		Secret:              testSecret,
		AccessTokenDuration: -time.Minute,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	tokenPair, err := service.GenerateTokenPair(testAdmin())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := service.ValidateToken(tokenPair.AccessToken); err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got: %v", err)
	}
}
