package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tadbeerx/admin-console/pkg/backend"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, map[string]string{"error": msg}, status)
}

// writeBackendError relays a backend failure with a status that mirrors the
// error taxonomy: remote HTTP errors keep their status, transport failures
// become 502.
func writeBackendError(w http.ResponseWriter, err error) {
	var re *backend.RequestError
	if errors.As(err, &re) {
		writeJSONError(w, re.Status, re.Message)
		return
	}
	if errors.Is(err, backend.ErrUnavailable) {
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSONError(w, http.StatusInternalServerError, err.Error())
}
