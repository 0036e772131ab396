package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/tadbeerx/admin-console/internal/media"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// files spill to temp files.
const maxUploadMemory = 32 << 20

// MediaHandler drives the per-worker media slots through the upload manager.
// One uploader per worker is kept so the per-slot in-flight guard holds
// across concurrent requests.
type MediaHandler struct {
	client *backend.Client

	mu        sync.Mutex
	uploaders map[string]*media.Uploader
}

func NewMediaHandler(client *backend.Client) *MediaHandler {
	return &MediaHandler{client: client, uploaders: map[string]*media.Uploader{}}
}

func (h *MediaHandler) uploader(workerID string) *media.Uploader {
	h.mu.Lock()
	defer h.mu.Unlock()
	up, ok := h.uploaders[workerID]
	if !ok {
		up = media.NewUploader(h.client, workerID, nil)
		h.uploaders[workerID] = up
	}
	return up
}

// release drops the worker's uploader once nothing is in flight, so the map
// does not grow with every worker id ever touched.
func (h *MediaHandler) release(workerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if up, ok := h.uploaders[workerID]; ok && up.Idle() {
		delete(h.uploaders, workerID)
	}
}

func (h *MediaHandler) Slots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.client.ListSlots(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"slots": slots}, http.StatusOK)
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, slot := vars["id"], vars["slot"]

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("media")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()
	defer h.release(workerID)

	err = h.uploader(workerID).Upload(r.Context(), slot, media.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	switch {
	case err == nil:
	case errors.Is(err, media.ErrWrongKind), errors.Is(err, media.ErrTooLarge), errors.Is(err, media.ErrUnknownSlot), errors.Is(err, media.ErrEmptyUpload):
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, media.ErrSlotBusy):
		writeJSONError(w, http.StatusConflict, err.Error())
		return
	default:
		writeBackendError(w, err)
		return
	}

	// hand authoritative slot state back so the page can re-render
	slots, err := h.client.ListSlots(r.Context(), workerID)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"slots": slots}, http.StatusOK)
}

func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, slot := vars["id"], vars["slot"]
	defer h.release(workerID)

	if err := h.uploader(workerID).Delete(r.Context(), slot); err != nil {
		if errors.Is(err, media.ErrUnknownSlot) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		writeBackendError(w, err)
		return
	}

	slots, err := h.client.ListSlots(r.Context(), workerID)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"slots": slots}, http.StatusOK)
}

// LegacyPhotoUpload keeps the single-photo flow alive for profiles created
// before the slot model.
func (h *MediaHandler) LegacyPhotoUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	workerID := mux.Vars(r)["id"]
	if err := h.client.UploadPhoto(r.Context(), workerID, header.Filename, header.Header.Get("Content-Type"), file); err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "photo uploaded"}, http.StatusOK)
}

func (h *MediaHandler) LegacyPhotoDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.client.DeletePhoto(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "photo deleted"}, http.StatusOK)
}
