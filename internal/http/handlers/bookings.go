package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
	"github.com/kushal272003/tourbooking/internal/utils"
)

func (d *Deps) MyBookings(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	bookings, err := d.Upstream.Bookings.ByUser(c.Request.Context(), sess.User.ID)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ownedBooking loads the booking and enforces that the caller owns it or is
// an admin.
func (d *Deps) ownedBooking(c *gin.Context, id int64) (domain.Booking, bool) {
	sess := middleware.CurrentSession(c)
	booking, err := d.Upstream.Bookings.Get(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return domain.Booking{}, false
	}
	if booking.UserID != sess.User.ID && !sess.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "not your booking"})
		return domain.Booking{}, false
	}
	return booking, true
}

func (d *Deps) GetBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, ok := d.ownedBooking(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking is the user-initiated cancellation from the bookings page.
func (d *Deps) CancelBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := d.ownedBooking(c, id); !ok {
		return
	}

	booking, err := d.Upstream.Bookings.Cancel(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "cancel",
		"booking cancelled by owner")
	c.JSON(http.StatusOK, booking)
}

// BookingPayment returns the payment record behind a booking, used by the
// bookings page to decide between "retry payment" and "download receipt".
func (d *Deps) BookingPayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := d.ownedBooking(c, id); !ok {
		return
	}

	payment, err := d.Upstream.Payments.GetByBooking(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
