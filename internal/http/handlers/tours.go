package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
	"github.com/kushal272003/tourbooking/internal/upstream"
)

func (d *Deps) ListTours(c *gin.Context) {
	tours, err := d.Upstream.Tours.List(c.Request.Context())
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (d *Deps) SearchTours(c *gin.Context) {
	tours, err := d.Upstream.Tours.Search(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

// AdvancedSearchTours forwards the filter panel's options bag. Absent
// filters never reach the upstream query string.
func (d *Deps) AdvancedSearchTours(c *gin.Context) {
	opts := upstream.TourSearchOptions{
		Keyword:       c.Query("keyword"),
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
		AvailableOnly: c.Query("availableOnly") == "true",
		SortBy:        c.Query("sortBy"),
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		opts.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		opts.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.Query("minDuration")); err == nil {
		opts.MinDuration = &v
	}
	if v, err := strconv.Atoi(c.Query("maxDuration")); err == nil {
		opts.MaxDuration = &v
	}

	result, err := d.Upstream.Tours.AdvancedSearch(c.Request.Context(), opts)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (d *Deps) TourDestinations(c *gin.Context) {
	destinations, err := d.Upstream.Tours.Destinations(c.Request.Context())
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (d *Deps) TourPriceBounds(c *gin.Context) {
	bounds, err := d.Upstream.Tours.PriceBounds(c.Request.Context())
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bounds)
}

func (d *Deps) UpcomingTours(c *gin.Context) {
	tours, err := d.Upstream.Tours.Upcoming(c.Request.Context())
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (d *Deps) AvailableTours(c *gin.Context) {
	tours, err := d.Upstream.Tours.Available(c.Request.Context())
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (d *Deps) ToursByDestination(c *gin.Context) {
	tours, err := d.Upstream.Tours.ByDestination(c.Request.Context(), c.Param("destination"))
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

// tourDetail is the tour page payload: the tour plus the side data the page
// renders alongside it.
type tourDetail struct {
	domain.Tour
	RatingStats  domain.RatingStats `json:"ratingStats"`
	IsInWishlist bool               `json:"isInWishlist"`
}

// GetTour loads the tour, then fetches rating stats and the wishlist flag
// in parallel. Both side lookups degrade silently; a missing tour is the
// only hard failure here.
func (d *Deps) GetTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	tour, err := d.Upstream.Tours.Get(ctx, id)
	if err != nil {
		d.respondError(c, err)
		return
	}

	detail := tourDetail{Tour: tour}
	sess := middleware.CurrentSession(c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		detail.RatingStats = d.Upstream.Reviews.TourRatingStats(ctx, id)
	}()
	if sess.IsAuthenticated() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			detail.IsInWishlist = d.Upstream.Wishlist.Check(ctx, sess.User.ID, id)
		}()
	}
	wg.Wait()

	c.JSON(http.StatusOK, detail)
}

func (d *Deps) TourReviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	reviews, err := d.Upstream.Reviews.ByTour(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
