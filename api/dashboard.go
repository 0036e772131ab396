package api

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tadbeerx/admin-console/internal/session"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

// NavigationCounts feed the badges in the side navigation.
type NavigationCounts struct {
	Workers       int `json:"workers"`
	Nationalities int `json:"nationalities"`
	Skills        int `json:"skills"`
	Languages     int `json:"languages"`
}

// DashboardHandler renders the landing page: composed stats plus navigation
// counts.
type DashboardHandler struct {
	client *backend.Client
}

func NewDashboardHandler(client *backend.Client) *DashboardHandler {
	return &DashboardHandler{client: client}
}

// loadCounts fetches navigation counts concurrently. Individual failures are
// tolerated; a count that cannot be fetched stays zero.
func (h *DashboardHandler) loadCounts(ctx context.Context) NavigationCounts {
	var counts NavigationCounts

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := h.client.ListWorkers(ctx, backend.WorkerListParams{Limit: 1})
		if err == nil {
			counts.Workers = list.Pagination.Total
		}
		return nil
	})
	g.Go(func() error {
		ref, err := h.client.ReferenceData(ctx)
		if err == nil {
			counts.Nationalities = len(ref.Nationalities)
			counts.Skills = len(ref.Skills)
			counts.Languages = len(ref.Languages)
		}
		return nil
	})
	_ = g.Wait()

	return counts
}

func (h *DashboardHandler) Page(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{}

		if claims, ok := session.DecodeClaims(store.Get()); ok {
			data["User"] = claims
		}

		stats, err := h.client.DashboardStats(r.Context())
		if err != nil {
			data["Error"] = err.Error()
		} else {
			data["Stats"] = stats
		}
		data["Counts"] = h.loadCounts(r.Context())

		renderPage(w, "dashboard", data)
	}
}

// Stats serves the composed dashboard stats as JSON.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.client.DashboardStats(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, stats, http.StatusOK)
}

// Counts serves the navigation counts as JSON.
func (h *DashboardHandler) Counts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.loadCounts(r.Context()), http.StatusOK)
}
