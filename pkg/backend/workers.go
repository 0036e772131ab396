package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/tadbeerx/admin-console/pkg/models"
)

// WorkerListParams filter the admin worker listing. Zero values are omitted
// from the query.
type WorkerListParams struct {
	Page           int
	Limit          int
	Status         []string
	ApprovalStatus []string
	Search         string
}

func (p WorkerListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	for _, s := range p.Status {
		q.Add("status", s)
	}
	for _, s := range p.ApprovalStatus {
		q.Add("approvalStatus", s)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// WorkerList is one page of the admin worker listing.
type WorkerList struct {
	Workers    []models.Worker   `json:"workers"`
	Pagination models.Pagination `json:"pagination"`
}

func (c *Client) ListWorkers(ctx context.Context, p WorkerListParams) (*WorkerList, error) {
	var out WorkerList
	if err := c.do(ctx, http.MethodGet, "/api/workers/admin/all", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWorker(ctx context.Context, id string) (*models.Worker, error) {
	var out struct {
		Worker models.Worker `json:"worker"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/workers/admin/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Worker, nil
}

func (c *Client) CreateWorker(ctx context.Context, draft *models.Worker) (*models.Worker, error) {
	var out struct {
		Worker models.Worker `json:"worker"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/workers", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out.Worker, nil
}

// UpdateWorker sends a partial update; fields holds only the keys to change,
// e.g. {"status": "inactive"} or a nested personalInfo object.
func (c *Client) UpdateWorker(ctx context.Context, id string, fields map[string]any) (*models.Worker, error) {
	var out struct {
		Worker models.Worker `json:"worker"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/workers/"+id, nil, fields, &out); err != nil {
		return nil, err
	}
	return &out.Worker, nil
}

func (c *Client) DeleteWorker(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/workers/"+id, nil, nil, nil)
}

// rawWorkerStats is the stats shape the remote API actually returns; the
// console flattens it into models.WorkerStats.
type rawWorkerStats struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"byStatus"`
	ByApprovalStatus map[string]int `json:"byApprovalStatus"`
	Featured         int            `json:"featured"`
}

func (r rawWorkerStats) flatten() models.WorkerStats {
	return models.WorkerStats{
		Total:     r.Total,
		Available: r.ByStatus[models.WorkerAvailable],
		Hired:     r.ByStatus[models.WorkerHired],
		Inactive:  r.ByStatus[models.WorkerInactive],
		Pending:   r.ByApprovalStatus[models.ApprovalPending],
		Approved:  r.ByApprovalStatus[models.ApprovalApproved],
		Rejected:  r.ByApprovalStatus[models.ApprovalRejected],
		Featured:  r.Featured,
	}
}

func (c *Client) WorkerStats(ctx context.Context) (*models.WorkerStats, error) {
	var out struct {
		Stats rawWorkerStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/workers/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	s := out.Stats.flatten()
	return &s, nil
}

// BulkResult reports the outcome of one item in a bulk fan-out.
type BulkResult struct {
	ID  string
	Err error
}

// Failed returns the ids whose call errored.
func Failed(results []BulkResult) []string {
	var ids []string
	for _, r := range results {
		if r.Err != nil {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

const bulkConcurrency = 8

// bulk fans one call out per id. Every id is attempted; a failure on one
// never blocks the others, and the caller gets a per-id result.
func bulk(ctx context.Context, ids []string, call func(ctx context.Context, id string) error) []BulkResult {
	results := make([]BulkResult, len(ids))

	var g errgroup.Group
	g.SetLimit(bulkConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = BulkResult{ID: id, Err: call(ctx, id)}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// BulkUpdateWorkers applies the same partial update to every id concurrently.
func (c *Client) BulkUpdateWorkers(ctx context.Context, ids []string, fields map[string]any) []BulkResult {
	return bulk(ctx, ids, func(ctx context.Context, id string) error {
		_, err := c.UpdateWorker(ctx, id, fields)
		return err
	})
}

// BulkDeleteWorkers deletes every id concurrently.
func (c *Client) BulkDeleteWorkers(ctx context.Context, ids []string) []BulkResult {
	return bulk(ctx, ids, c.DeleteWorker)
}
