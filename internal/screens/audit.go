package screens

import (
	"context"
	"sync"

	"github.com/tadbeerx/admin-console/pkg/backend"
	"github.com/tadbeerx/admin-console/pkg/models"
)

type AuditFilters struct {
	Action    string
	TableName string
	Search    string
	DateFrom  string
	DateTo    string
}

// Audit is the read-only state controller for the audit trail screen.
type Audit struct {
	client *backend.Client

	mu  sync.Mutex
	gen uint64

	Filters    AuditFilters
	Pagination models.Pagination
	Rows       []models.AuditLog
	Loading    bool
	Err        string
}

func NewAudit(client *backend.Client) *Audit {
	return &Audit{
		client:     client,
		Pagination: models.Pagination{Page: 1, Limit: defaultPageLimit},
	}
}

func (s *Audit) Load(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.Loading = true
	s.Err = ""
	params := backend.AuditListParams{
		Page:      s.Pagination.Page,
		Limit:     s.Pagination.Limit,
		Action:    s.Filters.Action,
		TableName: s.Filters.TableName,
		Search:    s.Filters.Search,
		DateFrom:  s.Filters.DateFrom,
		DateTo:    s.Filters.DateTo,
	}
	s.mu.Unlock()

	list, err := s.client.ListAudit(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.Loading = false
	if err != nil {
		s.Err = errMessage(err)
		return
	}
	s.Rows = list.AuditLogs
	s.Pagination = list.Pagination
}

func (s *Audit) SetFilter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "action":
		s.Filters.Action = value
	case "tableName":
		s.Filters.TableName = value
	case "search":
		s.Filters.Search = value
	case "dateFrom":
		s.Filters.DateFrom = value
	case "dateTo":
		s.Filters.DateTo = value
	default:
		return
	}
	s.Pagination.Page = 1
}

// ClearFilters resets every filter and returns to the first page.
func (s *Audit) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Filters = AuditFilters{}
	s.Pagination.Page = 1
}

func (s *Audit) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.Pagination.Page = page
}
