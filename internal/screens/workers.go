package screens

import (
	"context"
	"fmt"
	"sync"

	"github.com/tadbeerx/admin-console/pkg/backend"
	"github.com/tadbeerx/admin-console/pkg/models"
)

// WorkersFilters is the filter set of the workers listing.
type WorkersFilters struct {
	Search         string
	Status         []string
	ApprovalStatus []string
}

// Workers is the state controller for the workers screen.
type Workers struct {
	client *backend.Client

	mu  sync.Mutex
	gen uint64

	Filters    WorkersFilters
	Pagination models.Pagination
	Rows       []models.Worker
	Stats      models.WorkerStats
	Reference  models.ReferenceData
	Selected   map[string]bool
	Loading    bool
	Err        string
}

func NewWorkers(client *backend.Client) *Workers {
	return &Workers{
		client:     client,
		Pagination: models.Pagination{Page: 1, Limit: defaultPageLimit},
		Selected:   map[string]bool{},
	}
}

// Load replaces the row set and pagination from the remote API. A response
// superseded by a newer Load is discarded so a stale slow reply cannot
// overwrite fresher data.
func (s *Workers) Load(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.Loading = true
	s.Err = ""
	params := backend.WorkerListParams{
		Page:           s.Pagination.Page,
		Limit:          s.Pagination.Limit,
		Status:         append([]string(nil), s.Filters.Status...),
		ApprovalStatus: append([]string(nil), s.Filters.ApprovalStatus...),
		Search:         s.Filters.Search,
	}
	s.mu.Unlock()

	list, err := s.client.ListWorkers(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// superseded; the newer load owns the state now
		return
	}
	s.Loading = false
	if err != nil {
		s.Err = errMessage(err)
		return
	}
	s.Rows = list.Workers
	s.Pagination = list.Pagination
}

// LoadStats refreshes the header stats shown above the listing.
func (s *Workers) LoadStats(ctx context.Context) {
	stats, err := s.client.WorkerStats(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.Err = errMessage(err)
		return
	}
	s.Stats = *stats
}

// LoadReference refreshes the lookup tables used to label rows.
func (s *Workers) LoadReference(ctx context.Context) {
	ref, err := s.client.ReferenceData(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.Err = errMessage(err)
		return
	}
	s.Reference = *ref
}

// SetFilter updates one filter field and resets the page to 1; changing a
// filter invalidates the current page position. Unknown keys are ignored.
func (s *Workers) SetFilter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "search":
		s.Filters.Search = value
	case "status":
		if value == "" {
			s.Filters.Status = nil
		} else {
			s.Filters.Status = []string{value}
		}
	case "approvalStatus":
		if value == "" {
			s.Filters.ApprovalStatus = nil
		} else {
			s.Filters.ApprovalStatus = []string{value}
		}
	default:
		return
	}
	s.Pagination.Page = 1
}

// ToggleStatusFilter adds or removes one value from the multi-select status
// filter and resets the page.
func (s *Workers) ToggleStatusFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Filters.Status = toggleValue(s.Filters.Status, value)
	s.Pagination.Page = 1
}

func (s *Workers) ToggleApprovalFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Filters.ApprovalStatus = toggleValue(s.Filters.ApprovalStatus, value)
	s.Pagination.Page = 1
}

func toggleValue(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

// SetPage moves to another page without touching filters.
func (s *Workers) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.Pagination.Page = page
}

// SetWorkerField applies one partial update to a worker, then refetches.
func (s *Workers) SetWorkerField(ctx context.Context, id, field string, value any) {
	_, err := s.client.UpdateWorker(ctx, id, map[string]any{field: value})
	if err != nil {
		s.mu.Lock()
		s.Err = errMessage(err)
		s.mu.Unlock()
		return
	}
	s.Load(ctx)
}

// Delete removes a worker, then refetches.
func (s *Workers) Delete(ctx context.Context, id string) {
	if err := s.client.DeleteWorker(ctx, id); err != nil {
		s.mu.Lock()
		s.Err = errMessage(err)
		s.mu.Unlock()
		return
	}
	s.Load(ctx)
}

// ToggleSelected flips one row's membership in the bulk-action selection.
func (s *Workers) ToggleSelected(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Selected[id] {
		delete(s.Selected, id)
	} else {
		s.Selected[id] = true
	}
}

// SelectAll selects every visible row, or clears the selection when every
// row is already selected.
func (s *Workers) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Selected) == len(s.Rows) && len(s.Rows) > 0 {
		s.Selected = map[string]bool{}
		return
	}
	s.Selected = map[string]bool{}
	for _, w := range s.Rows {
		s.Selected[w.ID] = true
	}
}

func (s *Workers) selectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.Selected))
	for _, w := range s.Rows {
		if s.Selected[w.ID] {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// Bulk actions exposed on the workers screen.
const (
	BulkApprove    = "approve"
	BulkReject     = "reject"
	BulkActivate   = "activate"
	BulkDeactivate = "deactivate"
	BulkFeature    = "feature"
	BulkUnfeature  = "unfeature"
	BulkDelete     = "delete"
)

// BulkFields maps a bulk action name to the partial update it applies;
// BulkDelete has no field payload and is absent.
func BulkFields(action string) (map[string]any, bool) {
	fields, ok := bulkFields[action]
	return fields, ok
}

var bulkFields = map[string]map[string]any{
	BulkApprove:    {"approvalStatus": models.ApprovalApproved},
	BulkReject:     {"approvalStatus": models.ApprovalRejected},
	BulkActivate:   {"status": models.WorkerAvailable},
	BulkDeactivate: {"status": models.WorkerInactive},
	BulkFeature:    {"featured": true},
	BulkUnfeature:  {"featured": false},
}

// BulkAction fans the named action out over the current selection. Every id
// is attempted; per-id results are returned and partial failure is surfaced
// on the screen error state. Afterwards the list is reloaded and the
// selection cleared unconditionally.
func (s *Workers) BulkAction(ctx context.Context, action string) []backend.BulkResult {
	ids := s.selectedIDs()
	if len(ids) == 0 {
		return nil
	}

	var results []backend.BulkResult
	switch action {
	case BulkDelete:
		results = s.client.BulkDeleteWorkers(ctx, ids)
	default:
		fields, ok := bulkFields[action]
		if !ok {
			s.mu.Lock()
			s.Err = fmt.Sprintf("unknown bulk action %q", action)
			s.mu.Unlock()
			return nil
		}
		results = s.client.BulkUpdateWorkers(ctx, ids, fields)
	}

	var failMsg string
	if failed := backend.Failed(results); len(failed) > 0 {
		failMsg = fmt.Sprintf("%s failed for %d of %d workers", action, len(failed), len(ids))
	}

	s.mu.Lock()
	s.Selected = map[string]bool{}
	s.mu.Unlock()
	s.Load(ctx)

	// Load clears Err on entry; the partial-failure report must survive the
	// reload so the caller can surface it.
	if failMsg != "" {
		s.mu.Lock()
		s.Err = failMsg
		s.mu.Unlock()
	}

	return results
}
