package api

import (
	"net/http"
	"strconv"

	"github.com/tadbeerx/admin-console/internal/screens"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

// AuditHandler exposes the read-only audit trail screen over JSON.
type AuditHandler struct {
	client *backend.Client
}

func NewAuditHandler(client *backend.Client) *AuditHandler {
	return &AuditHandler{client: client}
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	s := screens.NewAudit(h.client)
	q := r.URL.Query()
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		s.Pagination.Limit = limit
	}
	for _, key := range []string{"action", "tableName", "search", "dateFrom", "dateTo"} {
		s.SetFilter(key, q.Get(key))
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		s.SetPage(page)
	}

	s.Load(r.Context())
	if s.Err != "" {
		writeJSONError(w, http.StatusBadGateway, s.Err)
		return
	}

	from, to := screens.ShowingRange(s.Pagination)
	writeJSON(w, map[string]any{
		"auditLogs":  s.Rows,
		"pagination": s.Pagination,
		"showing":    map[string]int{"from": from, "to": to, "total": s.Pagination.Total},
	}, http.StatusOK)
}
