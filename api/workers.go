package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tadbeerx/admin-console/internal/screens"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

// WorkersHandler exposes the workers screen over JSON. Each request builds a
// fresh controller from the query string; the remote API holds all durable
// state.
type WorkersHandler struct {
	client *backend.Client
}

func NewWorkersHandler(client *backend.Client) *WorkersHandler {
	return &WorkersHandler{client: client}
}

func (h *WorkersHandler) screen(r *http.Request) *screens.Workers {
	s := screens.NewWorkers(h.client)
	q := r.URL.Query()
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		s.Pagination.Limit = limit
	}
	s.SetFilter("search", q.Get("search"))
	for _, v := range q["status"] {
		s.ToggleStatusFilter(v)
	}
	for _, v := range q["approvalStatus"] {
		s.ToggleApprovalFilter(v)
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		s.SetPage(page)
	}
	return s
}

func (h *WorkersHandler) List(w http.ResponseWriter, r *http.Request) {
	s := h.screen(r)
	s.Load(r.Context())
	if s.Err != "" {
		writeJSONError(w, http.StatusBadGateway, s.Err)
		return
	}

	from, to := screens.ShowingRange(s.Pagination)
	writeJSON(w, map[string]any{
		"workers":    s.Rows,
		"pagination": s.Pagination,
		"showing":    map[string]int{"from": from, "to": to, "total": s.Pagination.Total},
	}, http.StatusOK)
}

func (h *WorkersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	worker, err := h.client.GetWorker(r.Context(), id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"worker": worker}, http.StatusOK)
}

// workerFormRequest is the create/edit payload accepted from the browser.
type workerFormRequest struct {
	PersonalInfo     json.RawMessage `json:"personalInfo"`
	ProfessionalInfo json.RawMessage `json:"professionalInfo"`
	FieldVisibility  json.RawMessage `json:"fieldVisibility"`
	Status           string          `json:"status"`
	ApprovalStatus   string          `json:"approvalStatus"`
	Featured         *bool           `json:"featured"`
}

func (h *WorkersHandler) fillForm(form *screens.WorkerForm, req workerFormRequest) error {
	if req.PersonalInfo != nil {
		if err := json.Unmarshal(req.PersonalInfo, &form.PersonalInfo); err != nil {
			return err
		}
	}
	if req.ProfessionalInfo != nil {
		if err := json.Unmarshal(req.ProfessionalInfo, &form.ProfessionalInfo); err != nil {
			return err
		}
	}
	if req.FieldVisibility != nil {
		if err := json.Unmarshal(req.FieldVisibility, &form.FieldVisibility); err != nil {
			return err
		}
	}
	if req.Status != "" {
		form.Status = req.Status
	}
	if req.ApprovalStatus != "" {
		form.ApprovalStatus = req.ApprovalStatus
	}
	if req.Featured != nil {
		form.Featured = *req.Featured
	}
	return nil
}

func (h *WorkersHandler) submitForm(w http.ResponseWriter, r *http.Request, form *screens.WorkerForm) {
	var req workerFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.fillForm(form, req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	worker, err := form.Submit(r.Context())
	if errors.Is(err, screens.ErrValidation) {
		writeJSON(w, map[string]any{"errors": form.Errors}, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"worker": worker}, http.StatusOK)
}

func (h *WorkersHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.submitForm(w, r, screens.NewWorkerForm(h.client))
}

func (h *WorkersHandler) Update(w http.ResponseWriter, r *http.Request) {
	form := screens.NewWorkerForm(h.client)
	if err := form.LoadWorker(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeBackendError(w, err)
		return
	}
	h.submitForm(w, r, form)
}

// SetField applies a single-field toggle (status, approvalStatus, featured)
// to one row.
func (h *WorkersHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req) == 0 {
		writeJSONError(w, http.StatusBadRequest, "expected a single-field JSON object")
		return
	}

	worker, err := h.client.UpdateWorker(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"worker": worker}, http.StatusOK)
}

func (h *WorkersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.client.DeleteWorker(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "worker deleted"}, http.StatusOK)
}

type bulkRequest struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action"`
}

type bulkItemResult struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Bulk fans one action out over the requested ids and reports the per-id
// outcome; partial failure is explicit, never guessed.
func (h *WorkersHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 || req.Action == "" {
		writeJSONError(w, http.StatusBadRequest, "ids and action are required")
		return
	}

	var results []backend.BulkResult
	switch req.Action {
	case screens.BulkDelete:
		results = h.client.BulkDeleteWorkers(r.Context(), req.IDs)
	default:
		fields, ok := screens.BulkFields(req.Action)
		if !ok {
			writeJSONError(w, http.StatusBadRequest, "unknown bulk action")
			return
		}
		results = h.client.BulkUpdateWorkers(r.Context(), req.IDs, fields)
	}

	items := make([]bulkItemResult, len(results))
	failed := 0
	for i, res := range results {
		items[i] = bulkItemResult{ID: res.ID, OK: res.Err == nil}
		if res.Err != nil {
			items[i].Error = res.Err.Error()
			failed++
		}
	}

	writeJSON(w, map[string]any{
		"results":   items,
		"attempted": len(items),
		"failed":    failed,
	}, http.StatusOK)
}

// Stats serves the worker header stats.
func (h *WorkersHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.client.WorkerStats(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"stats": stats}, http.StatusOK)
}
