package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tadbeerx/admin-console/pkg/models"
)

type AuditListParams struct {
	Page      int
	Limit     int
	Action    string
	TableName string
	Search    string
	DateFrom  string
	DateTo    string
}

func (p AuditListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Action != "" {
		q.Set("action", p.Action)
	}
	if p.TableName != "" {
		q.Set("tableName", p.TableName)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.DateFrom != "" {
		q.Set("dateFrom", p.DateFrom)
	}
	if p.DateTo != "" {
		q.Set("dateTo", p.DateTo)
	}
	return q
}

type AuditList struct {
	AuditLogs  []models.AuditLog `json:"auditLogs"`
	Pagination models.Pagination `json:"pagination"`
}

// ListAudit returns one page of the server-side audit trail.
func (c *Client) ListAudit(ctx context.Context, p AuditListParams) (*AuditList, error) {
	var out AuditList
	if err := c.do(ctx, http.MethodGet, "/api/audit", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
