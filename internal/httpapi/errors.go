package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: status})
}

// writeValidationError writes a 422 with one entry per failing field.
func writeValidationError(w http.ResponseWriter, detail []types.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, types.ValidationErrorResponse{
		Error:  "validation failed",
		Code:   http.StatusUnprocessableEntity,
		Detail: detail,
	})
}
