package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tadbeerx/admin-console/internal/screens"
	"github.com/tadbeerx/admin-console/internal/session"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

// InquiriesHandler exposes the inquiries screen over JSON.
type InquiriesHandler struct {
	client *backend.Client
	store  session.Store
}

func NewInquiriesHandler(client *backend.Client, store session.Store) *InquiriesHandler {
	return &InquiriesHandler{client: client, store: store}
}

func (h *InquiriesHandler) screen(r *http.Request) *screens.Inquiries {
	s := screens.NewInquiries(h.client)
	q := r.URL.Query()
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		s.Pagination.Limit = limit
	}
	s.SetFilter("search", q.Get("search"))
	s.SetFilter("status", q.Get("status"))
	s.SetFilter("assignedTo", q.Get("assignedTo"))
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		s.SetPage(page)
	}
	return s
}

func (h *InquiriesHandler) List(w http.ResponseWriter, r *http.Request) {
	s := h.screen(r)
	s.Load(r.Context())
	if s.Err != "" {
		writeJSONError(w, http.StatusBadGateway, s.Err)
		return
	}

	from, to := screens.ShowingRange(s.Pagination)
	writeJSON(w, map[string]any{
		"inquiries":  s.Rows,
		"pagination": s.Pagination,
		"showing":    map[string]int{"from": from, "to": to, "total": s.Pagination.Total},
	}, http.StatusOK)
}

func (h *InquiriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.client.GetInquiry(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"inquiry": inquiry}, http.StatusOK)
}

// Assign hands the inquiry to a staff user; with no explicit assignee it is
// taken by the signed-in user, read from the token claims.
func (h *InquiriesHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AssignedTo string `json:"assignedTo"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.AssignedTo == "" {
		if claims, ok := session.DecodeClaims(h.store.Get()); ok {
			req.AssignedTo = claims.UserID
		}
	}
	if req.AssignedTo == "" {
		writeJSONError(w, http.StatusBadRequest, "assignedTo is required")
		return
	}

	inquiry, err := h.client.AssignInquiry(r.Context(), mux.Vars(r)["id"], req.AssignedTo)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"inquiry": inquiry}, http.StatusOK)
}

func (h *InquiriesHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResponseMessage string `json:"responseMessage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ResponseMessage == "" {
		writeJSONError(w, http.StatusBadRequest, "responseMessage is required")
		return
	}

	inquiry, err := h.client.RespondToInquiry(r.Context(), mux.Vars(r)["id"], req.ResponseMessage)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"inquiry": inquiry}, http.StatusOK)
}

func (h *InquiriesHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AdminNotes string `json:"adminNotes"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	inquiry, err := h.client.CloseInquiry(r.Context(), mux.Vars(r)["id"], req.AdminNotes)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"inquiry": inquiry}, http.StatusOK)
}

func (h *InquiriesHandler) MarkSpam(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.client.MarkInquiryAsSpam(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"inquiry": inquiry}, http.StatusOK)
}

func (h *InquiriesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.client.InquiryStats(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"stats": stats}, http.StatusOK)
}
