package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain rule violations to 400 with the error text as a
// plain message; anything else is an internal failure.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		http.Error(w, ve.Error(), http.StatusBadRequest)
		return
	}
	for _, domainErr := range []error{
		domain.ErrInvalidRange,
		domain.ErrCustomerNotFound,
		domain.ErrVehicleNotFound,
		domain.ErrRentalNotFound,
		domain.ErrVehicleUnavailable,
		domain.ErrInvalidTransition,
	} {
		if errors.Is(err, domainErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	logger.Error("request failed", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// writeBadRequest covers request-shape problems caught before the
// service layer (malformed JSON, bad path IDs, missing fields).
func writeBadRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}
