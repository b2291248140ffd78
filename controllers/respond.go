package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"codecollab_server/apperrors"
)

// writeJSON serializes a success payload
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the service error taxonomy onto HTTP statuses. Only the
// business message is serialized; wrapped infrastructure errors stay
// server-side.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusServiceUnavailable
	message := "service temporarily unavailable"

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Kind {
		case apperrors.KindUnauthorized:
			status = http.StatusUnauthorized
		case apperrors.KindForbidden:
			status = http.StatusForbidden
		case apperrors.KindNotFound:
			status = http.StatusNotFound
		case apperrors.KindValidation:
			status = http.StatusBadRequest
		case apperrors.KindStorageUnavailable:
			status = http.StatusServiceUnavailable
			message = "service temporarily unavailable"
		}
	}

	writeJSON(w, status, map[string]string{"error": message})
}
