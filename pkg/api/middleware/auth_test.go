package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusmap/pkg/api/auth"
	"campusmap/pkg/models"
)

func createTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	cfg := auth.JWTConfig{
		Secret: "test-secret-key-that-is-at-least-32-characters-long",
		Issuer: "test",
	}
	svc, err := auth.NewJWTService(cfg)
	if err != nil {
		t.Fatalf("failed to create JWT service: %v", err)
	}
	return svc
}

func TestGetClaimsFromContext(t *testing.T) {
	t.Run("no claims in context", func(t *testing.T) {
		claims := GetClaimsFromContext(context.Background())
		if claims != nil {
			t.Error("expected nil claims for empty context")
		}
	})

	t.Run("claims present in context", func(t *testing.T) {
		expectedClaims := &auth.Claims{UserID: "user-123", Username: "admin"}
		ctx := context.WithValue(context.Background(), claimsContextKey, expectedClaims)
		claims := GetClaimsFromContext(ctx)
		if claims == nil {
			t.Fatal("expected claims to be present")
		}
		if claims.UserID != expectedClaims.UserID {
			t.Errorf("expected UserID %s, got %s", expectedClaims.UserID, claims.UserID)
		}
	})

	t.Run("wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), claimsContextKey, "not-claims")
		if claims := GetClaimsFromContext(ctx); claims != nil {
			t.Error("expected nil claims for wrong type")
		}
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		wantToken   string
		wantSuccess bool
	}{
		{"empty header", "", "", false},
		{"bearer token", "Bearer abc123", "abc123", true},
		{"bearer lowercase", "bearer abc123", "abc123", true},
		{"BEARER uppercase", "BEARER abc123", "abc123", true},
		{"missing token", "Bearer", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"no space", "Bearerabc123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			token, ok := extractBearerToken(req)
			if ok != tt.wantSuccess {
				t.Errorf("extractBearerToken() success = %v, want %v", ok, tt.wantSuccess)
			}
			if token != tt.wantToken {
				t.Errorf("extractBearerToken() token = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

func TestJWTAuth(t *testing.T) {
	jwtService := createTestJWTService(t)

	admin := &models.AdminUser{ID: "user-123", Username: "admin"}
	tokens, err := jwtService.GenerateTokenPair(admin)
	if err != nil {
		t.Fatalf("failed to generate tokens: %v", err)
	}

	t.Run("missing authorization header", func(t *testing.T) {
		handler := JWTAuth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		handler := JWTAuth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
		}
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		handler := JWTAuth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
		}
	})

	t.Run("valid token stores claims", func(t *testing.T) {
		var gotClaims *auth.Claims
		handler := JWTAuth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotClaims = GetClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		if gotClaims == nil {
			t.Fatal("expected claims in context")
		}
		if gotClaims.Username != "admin" {
			t.Errorf("expected username 'admin', got %q", gotClaims.Username)
		}
	})
}
