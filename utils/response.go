package utils

import (
	"encoding/json"
	"net/http"

	"tanam/apperr"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

type M map[string]interface{}

// RespondWithAppError maps the engine's error taxonomy onto HTTP statuses.
func RespondWithAppError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		RespondWithJSON(w, http.StatusBadRequest, M{"success": false, "error": err.Error()})
	case apperr.IsNotFound(err):
		RespondWithJSON(w, http.StatusNotFound, M{"success": false, "error": err.Error()})
	case apperr.IsConflict(err):
		RespondWithJSON(w, http.StatusConflict, M{"success": false, "error": err.Error()})
	default:
		RespondWithJSON(w, http.StatusInternalServerError, M{"success": false, "error": err.Error()})
	}
}
