package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kushal272003/tourbooking/internal/domain"
)

type ReviewsService struct {
	c *Client
}

// Create posts a review. The upstream takes review fields as query
// parameters; bookingID of 0 means the review is not tied to a booking.
func (s *ReviewsService) Create(ctx context.Context, tourID, userID int64, rating int, comment string, bookingID int64) (domain.Review, error) {
	q := url.Values{}
	q.Set("tourId", strconv.FormatInt(tourID, 10))
	q.Set("userId", strconv.FormatInt(userID, 10))
	q.Set("rating", strconv.Itoa(rating))
	q.Set("comment", comment)
	if bookingID > 0 {
		q.Set("bookingId", strconv.FormatInt(bookingID, 10))
	}
	var out domain.Review
	err := s.c.post(ctx, "/reviews", q, nil, &out)
	return out, err
}

func (s *ReviewsService) List(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	err := s.c.get(ctx, "/reviews", nil, &out)
	return out, err
}

func (s *ReviewsService) Get(ctx context.Context, id int64) (domain.Review, error) {
	var out domain.Review
	err := s.c.get(ctx, fmt.Sprintf("/reviews/%d", id), nil, &out)
	return out, err
}

func (s *ReviewsService) ByTour(ctx context.Context, tourID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := s.c.get(ctx, fmt.Sprintf("/reviews/tour/%d", tourID), nil, &out)
	return out, err
}

func (s *ReviewsService) ByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := s.c.get(ctx, fmt.Sprintf("/reviews/user/%d", userID), nil, &out)
	return out, err
}

// TourRatingStats degrades to zero stats on error so tour cards render
// without blocking on the reviews endpoint.
func (s *ReviewsService) TourRatingStats(ctx context.Context, tourID int64) domain.RatingStats {
	var out domain.RatingStats
	if err := s.c.get(ctx, fmt.Sprintf("/reviews/stats/tour/%d", tourID), nil, &out); err != nil {
		return domain.RatingStats{}
	}
	return out
}

func (s *ReviewsService) Update(ctx context.Context, reviewID, userID int64, rating int, comment string) (domain.Review, error) {
	q := url.Values{}
	q.Set("userId", strconv.FormatInt(userID, 10))
	q.Set("rating", strconv.Itoa(rating))
	q.Set("comment", comment)
	var out domain.Review
	err := s.c.put(ctx, fmt.Sprintf("/reviews/%d", reviewID), q, nil, &out)
	return out, err
}

func (s *ReviewsService) Delete(ctx context.Context, reviewID, userID int64, isAdmin bool) error {
	q := url.Values{}
	q.Set("userId", strconv.FormatInt(userID, 10))
	q.Set("isAdmin", strconv.FormatBool(isAdmin))
	return s.c.delete(ctx, fmt.Sprintf("/reviews/%d", reviewID), q, nil)
}
