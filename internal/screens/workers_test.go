package screens_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/tadbeerx/admin-console/internal/screens"
)

func TestWorkers_SetFilterResetsPage(t *testing.T) {
	s := screens.NewWorkers(nil)
	s.SetPage(4)

	s.SetFilter("search", "maria")
	if s.Pagination.Page != 1 {
		t.Fatalf("expected page reset to 1, got %d", s.Pagination.Page)
	}
	if s.Filters.Search != "maria" {
		t.Fatalf("search filter not applied: %q", s.Filters.Search)
	}

	// applying the identical filter again still resets the page; filter
	// changes are not deduplicated
	s.SetPage(3)
	s.SetFilter("search", "maria")
	if s.Pagination.Page != 1 {
		t.Fatalf("expected page reset on repeat SetFilter, got %d", s.Pagination.Page)
	}

	// unknown keys are ignored and leave the page alone
	s.SetPage(3)
	s.SetFilter("bogus", "x")
	if s.Pagination.Page != 3 {
		t.Fatalf("unknown key must not reset the page, got %d", s.Pagination.Page)
	}
}

func TestWorkers_ToggleStatusFilter(t *testing.T) {
	s := screens.NewWorkers(nil)

	s.ToggleStatusFilter("available")
	s.ToggleStatusFilter("hired")
	if !reflect.DeepEqual(s.Filters.Status, []string{"available", "hired"}) {
		t.Fatalf("unexpected status set: %v", s.Filters.Status)
	}

	s.ToggleStatusFilter("available")
	if !reflect.DeepEqual(s.Filters.Status, []string{"hired"}) {
		t.Fatalf("toggle did not remove value: %v", s.Filters.Status)
	}
}

func TestWorkers_SetPageFloorsAtOne(t *testing.T) {
	s := screens.NewWorkers(nil)
	s.SetPage(0)
	if s.Pagination.Page != 1 {
		t.Fatalf("page = %d, want 1", s.Pagination.Page)
	}
	s.SetPage(-3)
	if s.Pagination.Page != 1 {
		t.Fatalf("page = %d, want 1", s.Pagination.Page)
	}
}

func TestWorkers_Load_StaleResponseDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls int
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			close(firstStarted)
			<-releaseFirst // hold the first response until the second finished
			_, _ = w.Write([]byte(`{"workers":[{"id":"stale"}],"pagination":{"page":1,"limit":20,"total":1,"pages":1}}`))
			return
		}
		_, _ = w.Write([]byte(`{"workers":[{"id":"fresh"}],"pagination":{"page":1,"limit":20,"total":1,"pages":1}}`))
	}))
	defer srv.Close()

	s := screens.NewWorkers(newScreenClient(t, srv))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Load(context.Background())
	}()

	<-firstStarted
	s.Load(context.Background()) // supersedes the in-flight load
	close(releaseFirst)
	wg.Wait()

	if len(s.Rows) != 1 || s.Rows[0].ID != "fresh" {
		t.Fatalf("stale response overwrote fresh data: %#v", s.Rows)
	}
}

func TestWorkers_Load_ErrorState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"listing unavailable"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := screens.NewWorkers(newScreenClient(t, srv))
	s.Load(context.Background())

	if s.Loading {
		t.Fatal("loading flag must clear on error")
	}
	if s.Err != "listing unavailable" {
		t.Fatalf("unexpected error message: %q", s.Err)
	}
}

func TestWorkers_SelectAllTogglesOff(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(`{"workers":[{"id":"a"},{"id":"b"}],"pagination":{"page":1,"limit":20,"total":2,"pages":1}}`))
	defer srv.Close()

	s := screens.NewWorkers(newScreenClient(t, srv))
	s.Load(context.Background())

	s.SelectAll()
	if len(s.Selected) != 2 {
		t.Fatalf("expected both rows selected, got %v", s.Selected)
	}
	s.SelectAll()
	if len(s.Selected) != 0 {
		t.Fatalf("expected selection cleared, got %v", s.Selected)
	}
}

func TestWorkers_BulkAction_PartialFailure(t *testing.T) {
	var mu sync.Mutex
	updated := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"workers":[{"id":"a"},{"id":"b"},{"id":"c"}],"pagination":{"page":1,"limit":20,"total":3,"pages":1}}`))
		case r.Method == http.MethodPut:
			id := strings.TrimPrefix(r.URL.Path, "/api/workers/")
			mu.Lock()
			updated[id]++
			mu.Unlock()
			if id == "b" {
				http.Error(w, `{"error":"locked"}`, http.StatusConflict)
				return
			}
			var fields map[string]any
			_ = json.NewDecoder(r.Body).Decode(&fields)
			if fields["approvalStatus"] != "approved" {
				t.Errorf("unexpected bulk payload: %v", fields)
			}
			_, _ = w.Write([]byte(`{"worker":{"id":"` + id + `"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := screens.NewWorkers(newScreenClient(t, srv))
	s.Load(context.Background())
	s.SelectAll()

	results := s.BulkAction(context.Background(), screens.BulkApprove)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// all three attempted despite the failure on b
	mu.Lock()
	for _, id := range []string{"a", "b", "c"} {
		if updated[id] != 1 {
			t.Fatalf("expected one update for %s, got %d", id, updated[id])
		}
	}
	mu.Unlock()

	if s.Err != "approve failed for 1 of 3 workers" {
		t.Fatalf("unexpected partial-failure message: %q", s.Err)
	}
	if len(s.Selected) != 0 {
		t.Fatalf("selection must clear after a bulk action, got %v", s.Selected)
	}
}

func TestWorkers_BulkAction_FullSuccessLeavesNoError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			id := strings.TrimPrefix(r.URL.Path, "/api/workers/")
			_, _ = w.Write([]byte(`{"worker":{"id":"` + id + `"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"workers":[{"id":"a"},{"id":"b"}],"pagination":{"page":1,"limit":20,"total":2,"pages":1}}`))
	}))
	defer srv.Close()

	s := screens.NewWorkers(newScreenClient(t, srv))
	s.Load(context.Background())
	s.SelectAll()

	if results := s.BulkAction(context.Background(), screens.BulkApprove); len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if s.Err != "" {
		t.Fatalf("full success must leave no error, got %q", s.Err)
	}
}

func TestWorkers_BulkAction_EmptySelectionNoCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected %s call with empty selection", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workers":[],"pagination":{}}`))
	}))
	defer srv.Close()

	s := screens.NewWorkers(newScreenClient(t, srv))
	if results := s.BulkAction(context.Background(), screens.BulkApprove); results != nil {
		t.Fatalf("expected no results for empty selection, got %v", results)
	}
}

func TestBulkFields(t *testing.T) {
	fields, ok := screens.BulkFields(screens.BulkDeactivate)
	if !ok || fields["status"] != "inactive" {
		t.Fatalf("unexpected fields for deactivate: %v %v", fields, ok)
	}
	if _, ok := screens.BulkFields(screens.BulkDelete); ok {
		t.Fatal("delete must not map to a field update")
	}
	if _, ok := screens.BulkFields("nonsense"); ok {
		t.Fatal("unknown action must not resolve")
	}
}
