package upstream

import (
	"context"
	"net/url"

	"github.com/kushal272003/tourbooking/internal/domain"
)

type AnalyticsService struct {
	c *Client
}

// Fetch retrieves the analytics dashboard payload. Period is one of
// "weekly", "monthly", "yearly"; empty defaults to monthly.
func (s *AnalyticsService) Fetch(ctx context.Context, period string) (domain.Analytics, error) {
	q := url.Values{}
	if period == "" {
		period = "monthly"
	}
	q.Set("period", period)
	var out domain.Analytics
	err := s.c.get(ctx, "/analytics", q, &out)
	return out, err
}
