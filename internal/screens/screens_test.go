package screens_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tadbeerx/admin-console/internal/config"
	"github.com/tadbeerx/admin-console/internal/screens"
	"github.com/tadbeerx/admin-console/internal/session"
	"github.com/tadbeerx/admin-console/pkg/backend"
	"github.com/tadbeerx/admin-console/pkg/models"
)

// newScreenClient wires a backend client to a fake remote for controller tests.
func newScreenClient(t *testing.T, srv *httptest.Server) *backend.Client {
	t.Helper()
	cfg := config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	client, err := backend.NewClient(cfg, session.NewMemStore(), srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return client
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestShowingRange(t *testing.T) {
	cases := []struct {
		name     string
		p        models.Pagination
		from, to int
	}{
		{"middle page", models.Pagination{Page: 2, Limit: 20, Total: 45}, 21, 40},
		{"last short page", models.Pagination{Page: 3, Limit: 20, Total: 45}, 41, 45},
		{"first page", models.Pagination{Page: 1, Limit: 20, Total: 45}, 1, 20},
		{"empty", models.Pagination{Page: 1, Limit: 20, Total: 0}, 0, 0},
		{"page past the end", models.Pagination{Page: 9, Limit: 20, Total: 45}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := screens.ShowingRange(tc.p)
			if from != tc.from || to != tc.to {
				t.Fatalf("ShowingRange(%+v) = (%d, %d), want (%d, %d)", tc.p, from, to, tc.from, tc.to)
			}
		})
	}
}
