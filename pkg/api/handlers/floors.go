package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// FloorHandler handles floor API endpoints.
type FloorHandler struct {
	store store.Store
}

// NewFloorHandler creates a new FloorHandler.
func NewFloorHandler(store store.Store) *FloorHandler {
	return &FloorHandler{store: store}
}

// List handles GET /api/floors.
func (h *FloorHandler) List(w http.ResponseWriter, r *http.Request) {
	floors, err := h.store.ListFloors(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list floors")
		return
	}
	WriteJSONOK(w, floors)
}

// Get handles GET /api/floors/{id}.
func (h *FloorHandler) Get(w http.ResponseWriter, r *http.Request) {
	floor, err := h.store.GetFloor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "Floor not found")
		return
	}
	WriteJSONOK(w, floor)
}

// Create handles POST /api/floors.
func (h *FloorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertFloor
	if !decodeJSONBody(w, r, &in) {
		return
	}

	floor, err := h.store.CreateFloor(r.Context(), in)
	if err != nil {
		InternalServerError(w, "Failed to create floor")
		return
	}
	WriteJSONCreated(w, floor)
}

// Update handles PUT /api/floors/{id}.
func (h *FloorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.InsertFloor
	if !decodeJSONBody(w, r, &in) {
		return
	}

	floor, err := h.store.UpdateFloor(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, err, "Floor not found")
		return
	}
	WriteJSONOK(w, floor)
}

// Delete handles DELETE /api/floors/{id}.
func (h *FloorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteFloor(r.Context(), chi.URLParam(r, "id")); err != nil {
		InternalServerError(w, "Failed to delete floor")
		return
	}
	WriteNoContent(w)
}

// Rooms handles GET /api/floors/{id}/rooms.
func (h *FloorHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.store.RoomsByFloor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		InternalServerError(w, "Failed to list rooms")
		return
	}
	WriteJSONOK(w, rooms)
}
