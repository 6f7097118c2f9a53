package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"campusmap/pkg/models"
)

// decodeJSONBody decodes a JSON request body into the provided pointer.
// Returns true if successful, false if decoding fails (error response is written automatically).
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// storeError maps a store failure onto a problem response: models.ErrNotFound
// becomes 404 with the given detail, everything else 500.
func storeError(w http.ResponseWriter, err error, notFoundDetail string) {
	if errors.Is(err, models.ErrNotFound) {
		NotFound(w, notFoundDetail)
		return
	}
	InternalServerError(w, "Datastore request failed")
}
