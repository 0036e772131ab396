package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tadbeerx/admin-console/pkg/backend"
)

// ReferenceHandler exposes the reference-data tabs (nationalities, skills,
// languages) over JSON.
type ReferenceHandler struct {
	client *backend.Client
}

func NewReferenceHandler(client *backend.Client) *ReferenceHandler {
	return &ReferenceHandler{client: client}
}

// Combined serves all three lookup tables at once, used to populate worker
// form dropdowns and navigation badges.
func (h *ReferenceHandler) Combined(w http.ResponseWriter, r *http.Request) {
	ref, err := h.client.ReferenceData(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, ref, http.StatusOK)
}

func activeOnly(r *http.Request) bool {
	return r.URL.Query().Get("active") == "true"
}

func (h *ReferenceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch mux.Vars(r)["type"] {
	case "nationalities":
		rows, err := h.client.ListNationalities(ctx, activeOnly(r))
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, map[string]any{"nationalities": rows}, http.StatusOK)
	case "skills":
		rows, err := h.client.ListSkills(ctx, activeOnly(r))
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, map[string]any{"skills": rows}, http.StatusOK)
	case "languages":
		rows, err := h.client.ListLanguages(ctx, activeOnly(r))
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, map[string]any{"languages": rows}, http.StatusOK)
	default:
		writeJSONError(w, http.StatusNotFound, "unknown reference type")
	}
}

func (h *ReferenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, "")
}

func (h *ReferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "id is required")
		return
	}
	h.upsert(w, r, id)
}

// upsert creates (empty id) or updates one reference row of the type named
// in the route.
func (h *ReferenceHandler) upsert(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()
	switch mux.Vars(r)["type"] {
	case "nationalities":
		var in backend.NationalityInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if id == "" {
			out, err := h.client.CreateNationality(ctx, in)
			if err != nil {
				writeBackendError(w, err)
				return
			}
			writeJSON(w, map[string]any{"nationality": out}, http.StatusCreated)
			return
		}
		out, err := h.client.UpdateNationality(ctx, id, in)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, map[string]any{"nationality": out}, http.StatusOK)
	case "skills":
		var in backend.SkillInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if id == "" {
			out, err := h.client.CreateSkill(ctx, in)
			if err != nil {
				writeBackendError(w, err)
				return
			}
			writeJSON(w, map[string]any{"skill": out}, http.StatusCreated)
			return
		}
		out, err := h.client.UpdateSkill(ctx, id, in)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, map[string]any{"skill": out}, http.StatusOK)
	case "languages":
		var in backend.LanguageInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if id == "" {
			out, err := h.client.CreateLanguage(ctx, in)
			if err != nil {
				writeBackendError(w, err)
				return
			}
			writeJSON(w, map[string]any{"language": out}, http.StatusCreated)
			return
		}
		out, err := h.client.UpdateLanguage(ctx, id, in)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, map[string]any{"language": out}, http.StatusOK)
	default:
		writeJSONError(w, http.StatusNotFound, "unknown reference type")
	}
}

func (h *ReferenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	var err error
	switch mux.Vars(r)["type"] {
	case "nationalities":
		err = h.client.DeleteNationality(ctx, id)
	case "skills":
		err = h.client.DeleteSkill(ctx, id)
	case "languages":
		err = h.client.DeleteLanguage(ctx, id)
	default:
		writeJSONError(w, http.StatusNotFound, "unknown reference type")
		return
	}
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "deleted"}, http.StatusOK)
}
