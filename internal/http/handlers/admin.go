package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
	"github.com/kushal272003/tourbooking/internal/utils"
)

// bookingSummary is the dashboard's headline card set, aggregated here from
// the full booking list rather than asked of the upstream.
type bookingSummary struct {
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// summarizeBookings folds the booking list into dashboard counters.
// Cancelled bookings count toward the total but never toward revenue.
func summarizeBookings(bookings []domain.Booking) bookingSummary {
	s := bookingSummary{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingPending:
			s.PendingBookings++
		case domain.BookingConfirmed:
			s.ConfirmedBookings++
		case domain.BookingCancelled:
			s.CancelledBookings++
		case domain.BookingCompleted:
			s.CompletedBookings++
		}
		if b.Status != domain.BookingCancelled {
			s.TotalRevenue += b.TotalPrice
		}
	}
	return s
}

// AdminDashboard assembles the overview page: booking counters plus the
// most recent bookings, newest first by id.
func (d *Deps) AdminDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	bookings, err := d.Upstream.Bookings.List(ctx)
	if err != nil {
		d.respondError(c, err)
		return
	}

	summary := summarizeBookings(bookings)
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingID > bookings[j].BookingID
	})
	recent := bookings
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":           summary,
		"totalRevenueLabel": utils.FormatINR(summary.TotalRevenue),
		"recentBookings":    recent,
	})
}

func (d *Deps) AdminListBookings(c *gin.Context) {
	var (
		bookings []domain.Booking
		err      error
	)
	if status := c.Query("status"); status != "" {
		bookings, err = d.Upstream.Bookings.ByStatus(c.Request.Context(), domain.BookingStatus(status))
	} else {
		bookings, err = d.Upstream.Bookings.List(c.Request.Context())
	}
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (d *Deps) AdminConfirmBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := d.Upstream.Bookings.Confirm(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (d *Deps) AdminCancelBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := d.Upstream.Bookings.Cancel(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (d *Deps) AdminCompleteBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := d.Upstream.Bookings.Complete(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (d *Deps) AdminDeleteBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := d.Upstream.Bookings.Delete(c.Request.Context(), id); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// validateTourSeats applies the tour form's seat invariant before anything
// reaches the upstream.
func validateTourSeats(tour domain.Tour) error {
	if tour.TotalSeats < 0 {
		return domain.ValidationError{Field: "totalSeats", Msg: "total seats cannot be negative"}
	}
	if tour.AvailableSeats < 0 {
		return domain.ValidationError{Field: "availableSeats", Msg: "available seats cannot be negative"}
	}
	if tour.AvailableSeats > tour.TotalSeats {
		return domain.ValidationError{Field: "availableSeats", Msg: "available seats cannot exceed total seats"}
	}
	return nil
}

func (d *Deps) AdminCreateTour(c *gin.Context) {
	var tour domain.Tour
	if err := c.ShouldBindJSON(&tour); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	if err := validateTourSeats(tour); err != nil {
		d.respondError(c, err)
		return
	}
	created, err := d.Upstream.Tours.Create(c.Request.Context(), tour)
	if err != nil {
		d.respondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "admin", "tour_created", "title="+created.Title)
	c.JSON(http.StatusCreated, created)
}

func (d *Deps) AdminUpdateTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var tour domain.Tour
	if err := c.ShouldBindJSON(&tour); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	if err := validateTourSeats(tour); err != nil {
		d.respondError(c, err)
		return
	}
	updated, err := d.Upstream.Tours.Update(c.Request.Context(), id, tour)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (d *Deps) AdminDeleteTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := d.Upstream.Tours.Delete(c.Request.Context(), id); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour deleted"})
}

// AdminPayments lists payment records with a success-rate rollup computed
// gateway-side.
func (d *Deps) AdminPayments(c *gin.Context) {
	payments, err := d.Upstream.Payments.List(c.Request.Context())
	if err != nil {
		d.respondError(c, err)
		return
	}

	var succeeded int
	var revenue float64
	for _, p := range payments {
		if p.Status == domain.PaymentSuccess {
			succeeded++
			revenue += p.Amount
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"payments":           payments,
		"totalTransactions":  len(payments),
		"successfulPayments": succeeded,
		"totalRevenue":       revenue,
	})
}

func (d *Deps) AdminReviews(c *gin.Context) {
	reviews, err := d.Upstream.Reviews.List(c.Request.Context())
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AdminAnalytics proxies the analytics payload for the charts page.
func (d *Deps) AdminAnalytics(c *gin.Context) {
	analytics, err := d.Upstream.Analytics.Fetch(c.Request.Context(), c.Query("period"))
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
