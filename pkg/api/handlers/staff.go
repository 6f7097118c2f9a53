package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// StaffHandler handles staff API endpoints.
type StaffHandler struct {
	store store.Store
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(store store.Store) *StaffHandler {
	return &StaffHandler{store: store}
}

// List handles GET /api/staff.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.store.ListStaff(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list staff")
		return
	}
	WriteJSONOK(w, staff)
}

// Get handles GET /api/staff/{id}.
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.store.GetStaffMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "Staff member not found")
		return
	}
	WriteJSONOK(w, member)
}

// Create handles POST /api/staff.
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertStaff
	if !decodeJSONBody(w, r, &in) {
		return
	}

	member, err := h.store.CreateStaff(r.Context(), in)
	if err != nil {
		InternalServerError(w, "Failed to create staff member")
		return
	}
	WriteJSONCreated(w, member)
}

// Update handles PUT /api/staff/{id}.
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.InsertStaff
	if !decodeJSONBody(w, r, &in) {
		return
	}

	member, err := h.store.UpdateStaff(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, err, "Staff member not found")
		return
	}
	WriteJSONOK(w, member)
}

// Delete handles DELETE /api/staff/{id}.
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteStaff(r.Context(), chi.URLParam(r, "id")); err != nil {
		InternalServerError(w, "Failed to delete staff member")
		return
	}
	WriteNoContent(w)
}
