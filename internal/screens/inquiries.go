package screens

import (
	"context"
	"sync"

	"github.com/tadbeerx/admin-console/pkg/backend"
	"github.com/tadbeerx/admin-console/pkg/models"
)

type InquiriesFilters struct {
	Search     string
	Status     string
	AssignedTo string
}

// Inquiries is the state controller for the inquiries screen.
type Inquiries struct {
	client *backend.Client

	mu  sync.Mutex
	gen uint64

	Filters    InquiriesFilters
	Pagination models.Pagination
	Rows       []models.Inquiry
	Stats      models.InquiryStats
	Loading    bool
	Err        string
}

func NewInquiries(client *backend.Client) *Inquiries {
	return &Inquiries{
		client:     client,
		Pagination: models.Pagination{Page: 1, Limit: defaultPageLimit},
	}
}

func (s *Inquiries) Load(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.Loading = true
	s.Err = ""
	params := backend.InquiryListParams{
		Page:       s.Pagination.Page,
		Limit:      s.Pagination.Limit,
		AssignedTo: s.Filters.AssignedTo,
		Search:     s.Filters.Search,
	}
	if s.Filters.Status != "" {
		params.Status = []string{s.Filters.Status}
	}
	s.mu.Unlock()

	list, err := s.client.ListInquiries(ctx, params)

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
	s.Rows = list.Inquiries
	s.Pagination = list.Pagination
}

func (s *Inquiries) LoadStats(ctx context.Context) {
	stats, err := s.client.InquiryStats(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.Err = errMessage(err)
		return
	}
	s.Stats = *stats
}

func (s *Inquiries) SetFilter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "search":
		s.Filters.Search = value
	case "status":
		s.Filters.Status = value
	case "assignedTo":
		s.Filters.AssignedTo = value
	default:
		return
	}
	s.Pagination.Page = 1
}

func (s *Inquiries) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.Pagination.Page = page
}

func (s *Inquiries) mutate(ctx context.Context, call func(ctx context.Context) error) {
	if err := call(ctx); err != nil {
		s.mu.Lock()
		s.Err = errMessage(err)
		s.mu.Unlock()
		return
	}
	s.Load(ctx)
}

// Assign hands an inquiry to a staff user, then refetches.
func (s *Inquiries) Assign(ctx context.Context, id, userID string) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.AssignInquiry(ctx, id, userID)
		return err
	})
}

// Respond records a response message, then refetches.
func (s *Inquiries) Respond(ctx context.Context, id, message string) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.RespondToInquiry(ctx, id, message)
		return err
	})
}

// Close closes an inquiry with optional admin notes, then refetches.
func (s *Inquiries) Close(ctx context.Context, id, adminNotes string) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.CloseInquiry(ctx, id, adminNotes)
		return err
	})
}

// MarkSpam flags an inquiry as spam, then refetches.
func (s *Inquiries) MarkSpam(ctx context.Context, id string) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.MarkInquiryAsSpam(ctx, id)
		return err
	})
}
