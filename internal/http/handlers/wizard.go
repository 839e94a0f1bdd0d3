package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
	"github.com/kushal272003/tourbooking/internal/wizard"
)

type startBookingRequest struct {
	TourID        int64 `json:"tourId"`
	NumberOfSeats int   `json:"numberOfSeats"`
}

// draftView decorates the raw draft with the derived values the passenger
// form needs.
type draftView struct {
	*wizard.Draft
	AdditionalSlots int `json:"additionalSlots"`
}

func viewOf(d *wizard.Draft) draftView {
	return draftView{Draft: d, AdditionalSlots: d.AdditionalSlots()}
}

// StartBooking opens a draft from the tour detail page. The tour is
// re-fetched so the draft's price and seat bound reflect the current record,
// not a stale card.
func (d *Deps) StartBooking(c *gin.Context) {
	var req startBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	if req.TourID <= 0 {
		d.respondError(c, domain.ValidationError{Field: "tourId", Msg: "tour is required"})
		return
	}

	tour, err := d.Upstream.Tours.Get(c.Request.Context(), req.TourID)
	if err != nil {
		d.respondError(c, err)
		return
	}

	sess := middleware.CurrentSession(c)
	draft, err := d.flow(c).Start(tour, req.NumberOfSeats, sess.User.ID)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(draft))
}

// GetDraft restores a draft mid-flow. A missing, expired, or foreign draft
// sends the user back to the tour listing to start over.
func (d *Deps) GetDraft(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	draft, err := d.flow(c).Draft(c.Param("draftId"), sess.User.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message":  "booking session expired, please start again",
			"redirect": "/tours",
		})
		return
	}
	c.JSON(http.StatusOK, viewOf(draft))
}

// SubmitPassengers applies the passenger step. Validation failures come
// back field-keyed so the form can attach each message to its input.
func (d *Deps) SubmitPassengers(c *gin.Context) {
	var info wizard.PassengerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}

	sess := middleware.CurrentSession(c)
	draft, fieldErrs, err := d.flow(c).Passengers(c.Param("draftId"), sess.User.ID, info)
	if err != nil {
		d.respondError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, viewOf(draft))
}

// ConfirmBooking creates the booking upstream and returns the checkout
// session for the payment widget.
func (d *Deps) ConfirmBooking(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	checkout, err := d.flow(c).ConfirmAndPay(c.Request.Context(), c.Param("draftId"), sess.User.ID)
	if err != nil {
		d.respondError(c, err)
		return
	}
	checkout.CallbackRoute = "/api/booking/drafts/" + checkout.DraftID + "/callback"
	checkout.DismissRoute = "/api/booking/drafts/" + checkout.DraftID + "/dismiss"
	c.JSON(http.StatusOK, checkout)
}

// PaymentCallback is the widget's success handler: it forwards the gateway
// identifiers for verification and returns the success-page summary.
func (d *Deps) PaymentCallback(c *gin.Context) {
	var res wizard.CallbackResult
	if err := c.ShouldBindJSON(&res); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}

	sess := middleware.CurrentSession(c)
	summary, err := d.flow(c).CompleteSuccess(c.Request.Context(), c.Param("draftId"), 0, sess.User.ID, res)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DismissPayment handles the widget's dismiss path: the pending booking is
// cancelled and the user stays on the payment page.
func (d *Deps) DismissPayment(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := d.flow(c).Dismiss(c.Request.Context(), c.Param("draftId"), sess.User.ID); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment cancelled, booking released"})
}

type paymentFailureRequest struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// ReportPaymentFailure records a gateway-side failure (card declined, etc.)
// against the order. The booking stays pending for a later retry.
func (d *Deps) ReportPaymentFailure(c *gin.Context) {
	var req paymentFailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	if req.OrderID == "" {
		d.respondError(c, domain.ValidationError{Field: "orderId", Msg: "order id is required"})
		return
	}

	msg, err := d.Upstream.Payments.ReportFailure(c.Request.Context(), req.OrderID, req.Reason)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// RetryPayment re-opens checkout for a booking whose payment never went
// through. Only the booking's owner may retry.
func (d *Deps) RetryPayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	sess := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	booking, err := d.Upstream.Bookings.Get(ctx, id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	if booking.UserID != sess.User.ID && !sess.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "not your booking"})
		return
	}

	checkout, err := d.flow(c).RetryPayment(ctx, id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	checkout.CallbackRoute = fmt.Sprintf("/api/bookings/%d/payment-callback", id)
	c.JSON(http.StatusOK, checkout)
}

// RetryCallback is the success handler for a retried payment, where no
// draft exists anymore; the booking id comes from the route.
func (d *Deps) RetryCallback(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := d.ownedBooking(c, id); !ok {
		return
	}

	var res wizard.CallbackResult
	if err := c.ShouldBindJSON(&res); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}

	sess := middleware.CurrentSession(c)
	summary, err := d.flow(c).CompleteSuccess(c.Request.Context(), "", id, sess.User.ID, res)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
