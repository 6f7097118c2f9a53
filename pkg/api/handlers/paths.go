package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusmap/pkg/models"
	"campusmap/pkg/store"
)

// WalkpathHandler handles walkpath API endpoints.
type WalkpathHandler struct {
	store store.Store
}

// NewWalkpathHandler creates a new WalkpathHandler.
func NewWalkpathHandler(store store.Store) *WalkpathHandler {
	return &WalkpathHandler{store: store}
}

// List handles GET /api/walkpaths.
func (h *WalkpathHandler) List(w http.ResponseWriter, r *http.Request) {
	paths, err := h.store.ListWalkpaths(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list walkpaths")
		return
	}
	WriteJSONOK(w, paths)
}

// Get handles GET /api/walkpaths/{id}.
func (h *WalkpathHandler) Get(w http.ResponseWriter, r *http.Request) {
	path, err := h.store.GetWalkpath(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "Walkpath not found")
		return
	}
	WriteJSONOK(w, path)
}

// Create handles POST /api/walkpaths.
func (h *WalkpathHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertWalkpath
	if !decodeJSONBody(w, r, &in) {
		return
	}

	path, err := h.store.CreateWalkpath(r.Context(), in)
	if err != nil {
		InternalServerError(w, "Failed to create walkpath")
		return
	}
	WriteJSONCreated(w, path)
}

// Update handles PUT /api/walkpaths/{id}.
func (h *WalkpathHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.InsertWalkpath
	if !decodeJSONBody(w, r, &in) {
		return
	}

	path, err := h.store.UpdateWalkpath(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, err, "Walkpath not found")
		return
	}
	WriteJSONOK(w, path)
}

// Delete handles DELETE /api/walkpaths/{id}.
func (h *WalkpathHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteWalkpath(r.Context(), chi.URLParam(r, "id")); err != nil {
		InternalServerError(w, "Failed to delete walkpath")
		return
	}
	WriteNoContent(w)
}

// DrivepathHandler handles drivepath API endpoints.
type DrivepathHandler struct {
	store store.Store
}

// NewDrivepathHandler creates a new DrivepathHandler.
func NewDrivepathHandler(store store.Store) *DrivepathHandler {
	return &DrivepathHandler{store: store}
}

// List handles GET /api/drivepaths.
func (h *DrivepathHandler) List(w http.ResponseWriter, r *http.Request) {
	paths, err := h.store.ListDrivepaths(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list drivepaths")
		return
	}
	WriteJSONOK(w, paths)
}

// Get handles GET /api/drivepaths/{id}.
func (h *DrivepathHandler) Get(w http.ResponseWriter, r *http.Request) {
	path, err := h.store.GetDrivepath(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "Drivepath not found")
		return
	}
	WriteJSONOK(w, path)
}

// Create handles POST /api/drivepaths.
func (h *DrivepathHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertDrivepath
	if !decodeJSONBody(w, r, &in) {
		return
	}

	path, err := h.store.CreateDrivepath(r.Context(), in)
	if err != nil {
		InternalServerError(w, "Failed to create drivepath")
		return
	}
	WriteJSONCreated(w, path)
}

// Update handles PUT /api/drivepaths/{id}.
func (h *DrivepathHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.InsertDrivepath
	if !decodeJSONBody(w, r, &in) {
		return
	}

	path, err := h.store.UpdateDrivepath(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, err, "Drivepath not found")
		return
	}
	WriteJSONOK(w, path)
}

// Delete handles DELETE /api/drivepaths/{id}.
func (h *DrivepathHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteDrivepath(r.Context(), chi.URLParam(r, "id")); err != nil {
		InternalServerError(w, "Failed to delete drivepath")
		return
	}
	WriteNoContent(w)
}
