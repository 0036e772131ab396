package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tadbeerx/admin-console/pkg/models"
)

type InquiryListParams struct {
	Page       int
	Limit      int
	Status     []string
	AssignedTo string
	Search     string
}

func (p InquiryListParams) query() url.Values {
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
	if p.AssignedTo != "" {
		q.Set("assignedTo", p.AssignedTo)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

type InquiryList struct {
	Inquiries  []models.Inquiry  `json:"inquiries"`
	Pagination models.Pagination `json:"pagination"`
}

func (c *Client) ListInquiries(ctx context.Context, p InquiryListParams) (*InquiryList, error) {
	var out InquiryList
	if err := c.do(ctx, http.MethodGet, "/api/inquiries", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	var out struct {
		Inquiry models.Inquiry `json:"inquiry"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/inquiries/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Inquiry, nil
}

func (c *Client) patchInquiry(ctx context.Context, id, action string, body any) (*models.Inquiry, error) {
	var out struct {
		Inquiry models.Inquiry `json:"inquiry"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/inquiries/"+id+"/"+action, nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Inquiry, nil
}

// AssignInquiry hands an inquiry to a staff user; the remote API moves it
// into in_progress.
func (c *Client) AssignInquiry(ctx context.Context, id, assignedTo string) (*models.Inquiry, error) {
	return c.patchInquiry(ctx, id, "assign", map[string]string{"assignedTo": assignedTo})
}

// RespondToInquiry appends a response to the server-side communication log
// and marks the inquiry responded.
func (c *Client) RespondToInquiry(ctx context.Context, id, responseMessage string) (*models.Inquiry, error) {
	return c.patchInquiry(ctx, id, "respond", map[string]string{"responseMessage": responseMessage})
}

func (c *Client) CloseInquiry(ctx context.Context, id, adminNotes string) (*models.Inquiry, error) {
	body := map[string]string{}
	if adminNotes != "" {
		body["adminNotes"] = adminNotes
	}
	return c.patchInquiry(ctx, id, "close", body)
}

func (c *Client) MarkInquiryAsSpam(ctx context.Context, id string) (*models.Inquiry, error) {
	return c.patchInquiry(ctx, id, "spam", nil)
}

func (c *Client) InquiryStats(ctx context.Context) (*models.InquiryStats, error) {
	var out struct {
		Stats models.InquiryStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/inquiries/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}
