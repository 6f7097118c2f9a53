package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// BuildingHandler handles building API endpoints, including the queries
// scoped to a building (floors, rooms, staff).
type BuildingHandler struct {
	store store.Store
}

// NewBuildingHandler creates a new BuildingHandler.
func NewBuildingHandler(store store.Store) *BuildingHandler {
	return &BuildingHandler{store: store}
}

// List handles GET /api/buildings.
func (h *BuildingHandler) List(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.store.ListBuildings(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list buildings")
		return
	}
	WriteJSONOK(w, buildings)
}

// Get handles GET /api/buildings/{id}.
func (h *BuildingHandler) Get(w http.ResponseWriter, r *http.Request) {
	building, err := h.store.GetBuilding(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "Building not found")
		return
	}
	WriteJSONOK(w, building)
}

// Create handles POST /api/buildings.
func (h *BuildingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertBuilding
	if !decodeJSONBody(w, r, &in) {
		return
	}

	building, err := h.store.CreateBuilding(r.Context(), in)
	if err != nil {
		InternalServerError(w, "Failed to create building")
		return
	}
	WriteJSONCreated(w, building)
}

// Update handles PUT /api/buildings/{id}.
func (h *BuildingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.InsertBuilding
	if !decodeJSONBody(w, r, &in) {
		return
	}

	building, err := h.store.UpdateBuilding(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, err, "Building not found")
		return
	}
	WriteJSONOK(w, building)
}

// Delete handles DELETE /api/buildings/{id}.
func (h *BuildingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteBuilding(r.Context(), chi.URLParam(r, "id")); err != nil {
		InternalServerError(w, "Failed to delete building")
		return
	}
	WriteNoContent(w)
}

// Floors handles GET /api/buildings/{id}/floors.
func (h *BuildingHandler) Floors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.store.FloorsByBuilding(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		InternalServerError(w, "Failed to list floors")
		return
	}
	WriteJSONOK(w, floors)
}

// Rooms handles GET /api/buildings/{id}/rooms.
func (h *BuildingHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.store.RoomsByBuilding(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		InternalServerError(w, "Failed to list rooms")
		return
	}
	WriteJSONOK(w, rooms)
}

// Staff handles GET /api/buildings/{id}/staff.
func (h *BuildingHandler) Staff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.store.StaffByBuilding(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		InternalServerError(w, "Failed to list staff")
		return
	}
	WriteJSONOK(w, staff)
}
