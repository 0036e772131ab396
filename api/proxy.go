package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/tadbeerx/admin-console/pkg/backend"
)

// ProxyHandler relays blob-test traffic to the backend unchanged, so the
// diagnostics page can exercise blob storage without its own credentials.
type ProxyHandler struct {
	client *backend.Client
}

func NewProxyHandler(client *backend.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

func (h *ProxyHandler) BlobUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	raw, err := h.client.BlobTestUpload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, raw, http.StatusOK)
}

func (h *ProxyHandler) BlobDelete(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "unreadable request body")
		return
	}
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	} else if !json.Valid(payload) {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	raw, err := h.client.BlobTestDelete(r.Context(), payload)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, raw, http.StatusOK)
}
