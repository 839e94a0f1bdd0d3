package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kushal272003/tourbooking/internal/domain"
)

type WishlistService struct {
	c *Client
}

func userTourQuery(userID, tourID int64) url.Values {
	q := url.Values{}
	q.Set("userId", strconv.FormatInt(userID, 10))
	q.Set("tourId", strconv.FormatInt(tourID, 10))
	return q
}

func (s *WishlistService) Add(ctx context.Context, userID, tourID int64) (domain.WishlistEntry, error) {
	var out domain.WishlistEntry
	err := s.c.post(ctx, "/wishlist", userTourQuery(userID, tourID), nil, &out)
	return out, err
}

func (s *WishlistService) Remove(ctx context.Context, userID, tourID int64) error {
	return s.c.delete(ctx, "/wishlist", userTourQuery(userID, tourID), nil)
}

func (s *WishlistService) ByUser(ctx context.Context, userID int64) ([]domain.WishlistEntry, error) {
	var out []domain.WishlistEntry
	err := s.c.get(ctx, fmt.Sprintf("/wishlist/user/%d", userID), nil, &out)
	return out, err
}

// Check degrades to false on error so tour cards never block on wishlist
// availability.
func (s *WishlistService) Check(ctx context.Context, userID, tourID int64) bool {
	var out struct {
		IsInWishlist bool `json:"isInWishlist"`
	}
	if err := s.c.get(ctx, "/wishlist/check", userTourQuery(userID, tourID), &out); err != nil {
		return false
	}
	return out.IsInWishlist
}

// Count degrades to zero on error, same policy as Check.
func (s *WishlistService) Count(ctx context.Context, userID int64) int {
	var out struct {
		Count int `json:"count"`
	}
	if err := s.c.get(ctx, fmt.Sprintf("/wishlist/count/%d", userID), nil, &out); err != nil {
		return 0
	}
	return out.Count
}

func (s *WishlistService) Clear(ctx context.Context, userID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/wishlist/clear/%d", userID), nil, nil)
}
