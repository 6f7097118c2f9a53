package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// SettingsHandler handles application settings API endpoints.
type SettingsHandler struct {
	store store.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store store.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// UpdateSettingRequest is the request body for PUT /api/settings/{key}.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// List handles GET /api/settings.
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.ListSettings(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list settings")
		return
	}
	WriteJSONOK(w, settings)
}

// Get handles GET /api/settings/{key}.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.store.GetSetting(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		storeError(w, err, "Setting not found")
		return
	}
	WriteJSONOK(w, setting)
}

// Create handles POST /api/settings.
func (h *SettingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertSetting
	if !decodeJSONBody(w, r, &in) {
		return
	}
	if in.Key == "" {
		BadRequest(w, "Setting key is required")
		return
	}

	setting, err := h.store.CreateSetting(r.Context(), in)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateSetting) {
			Conflict(w, "Setting already exists")
			return
		}
		InternalServerError(w, "Failed to create setting")
		return
	}
	WriteJSONCreated(w, setting)
}

// Update handles PUT /api/settings/{key}.
//
// Unlike the entity updates, this is not an upsert: an unknown key is a 404.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	setting, err := h.store.UpdateSetting(r.Context(), chi.URLParam(r, "key"), req.Value)
	if err != nil {
		storeError(w, err, "Setting not found")
		return
	}
	WriteJSONOK(w, setting)
}
