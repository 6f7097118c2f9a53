package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// RoomHandler handles room API endpoints.
type RoomHandler struct {
	store store.Store
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(store store.Store) *RoomHandler {
	return &RoomHandler{store: store}
}

// List handles GET /api/rooms.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.store.ListRooms(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list rooms")
		return
	}
	WriteJSONOK(w, rooms)
}

// Get handles GET /api/rooms/{id}.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "Room not found")
		return
	}
	WriteJSONOK(w, room)
}

// Create handles POST /api/rooms.
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertRoom
	if !decodeJSONBody(w, r, &in) {
		return
	}

	room, err := h.store.CreateRoom(r.Context(), in)
	if err != nil {
		InternalServerError(w, "Failed to create room")
		return
	}
	WriteJSONCreated(w, room)
}

// Update handles PUT /api/rooms/{id}.
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.InsertRoom
	if !decodeJSONBody(w, r, &in) {
		return
	}

	room, err := h.store.UpdateRoom(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, err, "Room not found")
		return
	}
	WriteJSONOK(w, room)
}

// Delete handles DELETE /api/rooms/{id}.
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		InternalServerError(w, "Failed to delete room")
		return
	}
	WriteNoContent(w)
}
