package handlers

import (
	"errors"
	"net/http"

	"campusmap/pkg/api/auth"
	"campusmap/pkg/api/middleware"
	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// AuthHandler handles authentication API endpoints.
type AuthHandler struct {
	store      store.Store
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store store.Store, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{store: store, jwtService: jwtService}
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the request body for POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MeResponse is the response body for GET /api/auth/me.
type MeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Login handles POST /api/auth/login.
//
// A failed lookup and a failed password check answer identically so the
// endpoint does not leak which usernames exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		BadRequest(w, "Username and password are required")
		return
	}

	admin, err := h.store.AdminByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			Unauthorized(w, "Invalid credentials")
			return
		}
		InternalServerError(w, "Failed to authenticate")
		return
	}

	if !admin.CheckPassword(req.Password) {
		Unauthorized(w, "Invalid credentials")
		return
	}

	tokens, err := h.jwtService.GenerateTokenPair(admin)
	if err != nil {
		InternalServerError(w, "Failed to generate tokens")
		return
	}
	WriteJSONOK(w, tokens)
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		Unauthorized(w, "Invalid or expired refresh token")
		return
	}

	// The account may have been removed since the token was issued.
	admin, err := h.store.AdminByUsername(r.Context(), claims.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			Unauthorized(w, "Account no longer exists")
			return
		}
		InternalServerError(w, "Failed to authenticate")
		return
	}

	tokens, err := h.jwtService.GenerateTokenPair(admin)
	if err != nil {
		InternalServerError(w, "Failed to generate tokens")
		return
	}
	WriteJSONOK(w, tokens)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	WriteJSONOK(w, MeResponse{ID: claims.UserID, Username: claims.Username})
}
