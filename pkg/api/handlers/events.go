package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// EventHandler handles event API endpoints.
type EventHandler struct {
	store store.Store
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(store store.Store) *EventHandler {
	return &EventHandler{store: store}
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list events")
		return
	}
	WriteJSONOK(w, events)
}

// Get handles GET /api/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "Event not found")
		return
	}
	WriteJSONOK(w, event)
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertEvent
	if !decodeJSONBody(w, r, &in) {
		return
	}

	event, err := h.store.CreateEvent(r.Context(), in)
	if err != nil {
		InternalServerError(w, "Failed to create event")
		return
	}
	WriteJSONCreated(w, event)
}

// Update handles PUT /api/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.InsertEvent
	if !decodeJSONBody(w, r, &in) {
		return
	}

	event, err := h.store.UpdateEvent(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, err, "Event not found")
		return
	}
	WriteJSONOK(w, event)
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		InternalServerError(w, "Failed to delete event")
		return
	}
	WriteNoContent(w)
}
