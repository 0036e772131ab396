// Package screens holds the per-screen state controllers of the admin
// console. Each controller owns pagination, a filter set and a loading/error
// flag, and orchestrates calls into the backend client. Controllers never
// mutate remote state locally: after a successful mutation they refetch, the
// remote API being authoritative.
package screens

import (
	"github.com/tadbeerx/admin-console/pkg/models"
)

const defaultPageLimit = 20

// ShowingRange computes the 1-based "showing X to Y of total" bounds for the
// current page. An empty page yields (0, 0).
func ShowingRange(p models.Pagination) (from, to int) {
	if p.Total == 0 || p.Page < 1 || p.Limit < 1 {
		return 0, 0
	}
	from = (p.Page-1)*p.Limit + 1
	if from > p.Total {
		return 0, 0
	}
	to = p.Page * p.Limit
	if to > p.Total {
		to = p.Total
	}
	return from, to
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
