package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kushal272003/tourbooking/internal/domain"
)

type ToursService struct {
	c *Client
}

// TourSearchOptions is the advanced-search options bag. Absent fields are
// omitted from the query string, not sent as empty.
type TourSearchOptions struct {
	Keyword       string
	MinPrice      *float64
	MaxPrice      *float64
	MinDuration   *int
	MaxDuration   *int
	StartDate     string // ISO date
	EndDate       string // ISO date
	AvailableOnly bool
	SortBy        string
}

// Query serializes only the present options.
func (o TourSearchOptions) Query() url.Values {
	q := url.Values{}
	if o.Keyword != "" {
		q.Set("keyword", o.Keyword)
	}
	if o.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*o.MinPrice, 'f', -1, 64))
	}
	if o.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*o.MaxPrice, 'f', -1, 64))
	}
	if o.MinDuration != nil {
		q.Set("minDuration", strconv.Itoa(*o.MinDuration))
	}
	if o.MaxDuration != nil {
		q.Set("maxDuration", strconv.Itoa(*o.MaxDuration))
	}
	if o.StartDate != "" {
		q.Set("startDate", o.StartDate)
	}
	if o.EndDate != "" {
		q.Set("endDate", o.EndDate)
	}
	if o.AvailableOnly {
		q.Set("availableOnly", "true")
	}
	if o.SortBy != "" {
		q.Set("sortBy", o.SortBy)
	}
	return q
}

type AdvancedSearchResult struct {
	Tours        []domain.Tour `json:"tours"`
	TotalResults int           `json:"totalResults"`
}

type PriceRange struct {
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

func (s *ToursService) List(ctx context.Context) ([]domain.Tour, error) {
	var out []domain.Tour
	err := s.c.get(ctx, "/tours", nil, &out)
	return out, err
}

func (s *ToursService) Get(ctx context.Context, id int64) (domain.Tour, error) {
	var out domain.Tour
	err := s.c.get(ctx, fmt.Sprintf("/tours/%d", id), nil, &out)
	return out, err
}

func (s *ToursService) ByDestination(ctx context.Context, destination string) ([]domain.Tour, error) {
	var out []domain.Tour
	err := s.c.get(ctx, "/tours/destination/"+url.PathEscape(destination), nil, &out)
	return out, err
}

func (s *ToursService) ByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.Tour, error) {
	q := url.Values{}
	q.Set("minPrice", strconv.FormatFloat(minPrice, 'f', -1, 64))
	q.Set("maxPrice", strconv.FormatFloat(maxPrice, 'f', -1, 64))
	var out []domain.Tour
	err := s.c.get(ctx, "/tours/price-range", q, &out)
	return out, err
}

func (s *ToursService) Available(ctx context.Context) ([]domain.Tour, error) {
	var out []domain.Tour
	err := s.c.get(ctx, "/tours/available", nil, &out)
	return out, err
}

func (s *ToursService) Upcoming(ctx context.Context) ([]domain.Tour, error) {
	var out []domain.Tour
	err := s.c.get(ctx, "/tours/upcoming", nil, &out)
	return out, err
}

func (s *ToursService) Search(ctx context.Context, keyword string) ([]domain.Tour, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	var out []domain.Tour
	err := s.c.get(ctx, "/tours/search", q, &out)
	return out, err
}

func (s *ToursService) AdvancedSearch(ctx context.Context, opts TourSearchOptions) (AdvancedSearchResult, error) {
	var out AdvancedSearchResult
	err := s.c.get(ctx, "/tours/advanced-search", opts.Query(), &out)
	return out, err
}

// PriceBounds backs the filter panel's slider range.
func (s *ToursService) PriceBounds(ctx context.Context) (PriceRange, error) {
	var out PriceRange
	err := s.c.get(ctx, "/tours/price-bounds", nil, &out)
	return out, err
}

func (s *ToursService) Destinations(ctx context.Context) ([]string, error) {
	var out []string
	err := s.c.get(ctx, "/tours/destinations", nil, &out)
	return out, err
}

func (s *ToursService) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	var out domain.Tour
	err := s.c.post(ctx, "/tours", nil, tour, &out)
	return out, err
}

func (s *ToursService) Update(ctx context.Context, id int64, tour domain.Tour) (domain.Tour, error) {
	var out domain.Tour
	err := s.c.put(ctx, fmt.Sprintf("/tours/%d", id), nil, tour, &out)
	return out, err
}

func (s *ToursService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/tours/%d", id), nil, nil)
}
