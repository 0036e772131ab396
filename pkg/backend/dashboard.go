package backend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tadbeerx/admin-console/pkg/models"
)

// DashboardStats composes worker and inquiry stats from two concurrent
// calls. If either call fails the whole composition fails; there is no
// partial result.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		workers   *models.WorkerStats
		inquiries *models.InquiryStats
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workers, err = c.WorkerStats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		inquiries, err = c.InquiryStats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.DashboardStats{Workers: *workers, Inquiries: *inquiries}, nil
}
