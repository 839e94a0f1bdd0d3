package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/upstream"
	"github.com/kushal272003/tourbooking/internal/utils"
)

// BookingsAPI is the slice of the upstream client the flow needs.
type BookingsAPI interface {
	Create(ctx context.Context, req upstream.BookingRequest) (domain.Booking, error)
	Get(ctx context.Context, id int64) (domain.Booking, error)
	Cancel(ctx context.Context, id int64) (domain.Booking, error)
}

type PaymentsAPI interface {
	CreateOrder(ctx context.Context, bookingID int64) (upstream.PaymentOrder, error)
	Verify(ctx context.Context, req upstream.VerificationRequest) (string, error)
}

// Flow drives a draft through confirm-and-pay against the upstream. Steps
// are strictly sequential; each upstream call must resolve before the next
// step is reachable.
type Flow struct {
	Bookings  BookingsAPI
	Payments  PaymentsAPI
	Drafts    *DraftStore
	KeyID     string // gateway key, used when the order omits it
	RequestID string
}

// Prefill seeds the gateway widget with the booking's contact data.
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutSession configures the third-party checkout widget for one order.
// Amount is in minor units. CallbackRoute and DismissRoute are filled by the
// HTTP layer, which owns the route shapes.
type CheckoutSession struct {
	DraftID       string  `json:"draftId,omitempty"`
	BookingID     int64   `json:"bookingId"`
	Key           string  `json:"key"`
	OrderID       string  `json:"orderId"`
	Amount        int64   `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	Prefill       Prefill `json:"prefill"`
	CallbackRoute string  `json:"callbackRoute,omitempty"`
	DismissRoute  string  `json:"dismissRoute,omitempty"`
}

// CallbackResult carries the gateway-issued identifiers from the widget's
// success callback.
type CallbackResult struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// Summary is what the success page renders.
type Summary struct {
	PaymentID    string  `json:"paymentId"`
	OrderID      string  `json:"orderId"`
	BookingID    int64   `json:"bookingId"`
	Amount       float64 `json:"amount"`
	AmountLabel  string  `json:"amountLabel"`
	TourTitle    string  `json:"tourTitle"`
	TourImageURL string  `json:"tourImageUrl,omitempty"`
}

// Start opens a draft from the tour-selection step and registers it under
// the starting user.
func (f Flow) Start(tour domain.Tour, seats int, userID int64) (*Draft, error) {
	d, err := NewDraft(tour, seats)
	if err != nil {
		return nil, err
	}
	d.OwnerID = userID
	f.Drafts.Put(d)
	utils.LogEvent(f.RequestID, "wizard", "start",
		fmt.Sprintf("draft=%s tour=%d seats=%d total=%s", d.ID, tour.ID, seats, utils.FormatMoney(d.TotalPrice)))
	return d, nil
}

// draftFor resolves a draft only for its owner. A foreign draft id behaves
// exactly like a missing one, so draft ids leak nothing.
func (f Flow) draftFor(draftID string, userID int64) (*Draft, error) {
	d, ok := f.Drafts.Get(draftID)
	if !ok || d.OwnerID != userID {
		return nil, domain.NotFoundError{Resource: "booking draft"}
	}
	return d, nil
}

// Draft restores a mid-flow draft for its owner.
func (f Flow) Draft(draftID string, userID int64) (*Draft, error) {
	return f.draftFor(draftID, userID)
}

// Passengers applies the second step. Validation failures come back as a
// field-keyed map and block the transition; the draft stays where it was.
func (f Flow) Passengers(draftID string, userID int64, info PassengerInfo) (*Draft, FieldErrors, error) {
	d, err := f.draftFor(draftID, userID)
	if err != nil {
		return nil, nil, err
	}
	if d.State != StateTourSelected && d.State != StatePassengerInfoCollected {
		return nil, nil, domain.ConflictError{Resource: "booking draft", Msg: "already submitted"}
	}
	if errs := ValidatePassengerInfo(info, d.Seats); len(errs) > 0 {
		return d, errs, nil
	}
	d.Contact = info.Contact
	d.Primary = info.Primary
	d.Additional = info.Additional
	d.State = StatePassengerInfoCollected
	return d, nil, nil
}

// ConfirmAndPay creates the booking upstream and immediately requests a
// payment order for it. If order creation fails after the booking was
// created, the booking is cancelled (compensation) before the error is
// surfaced; a later retry creates a new booking.
func (f Flow) ConfirmAndPay(ctx context.Context, draftID string, userID int64) (CheckoutSession, error) {
	d, err := f.draftFor(draftID, userID)
	if err != nil {
		return CheckoutSession{}, err
	}
	if d.State == StateConfirmedPendingPayment {
		return CheckoutSession{}, domain.ConflictError{Resource: "booking draft", Msg: "payment already in progress"}
	}
	if d.State != StatePassengerInfoCollected {
		return CheckoutSession{}, domain.ConflictError{Resource: "booking draft", Msg: "passenger details missing"}
	}

	req := upstream.BookingRequest{
		UserID:               userID,
		TourID:               d.Tour.ID,
		NumberOfSeats:        d.Seats,
		ContactEmail:         d.Contact.Email,
		ContactPhone:         d.Contact.Phone,
		PrimaryPassenger:     passengerPayload(d.Primary),
		AdditionalPassengers: make([]upstream.PassengerPayload, 0, len(d.Additional)),
	}
	for _, p := range d.Additional {
		req.AdditionalPassengers = append(req.AdditionalPassengers, passengerPayload(p))
	}

	booking, err := f.Bookings.Create(ctx, req)
	if err != nil {
		// No booking exists: nothing to unwind, no payment attempted.
		return CheckoutSession{}, err
	}
	d.BookingID = booking.BookingID
	utils.LogEvent(f.RequestID, "wizard", "booking_created",
		fmt.Sprintf("draft=%s booking=%d", d.ID, booking.BookingID))

	order, err := f.Payments.CreateOrder(ctx, booking.BookingID)
	if err != nil {
		if _, cancelErr := f.Bookings.Cancel(ctx, booking.BookingID); cancelErr != nil {
			utils.LogEvent(f.RequestID, "wizard", "compensate_failed",
				fmt.Sprintf("booking=%d err=%v", booking.BookingID, cancelErr))
		} else {
			utils.LogEvent(f.RequestID, "wizard", "booking_cancelled",
				fmt.Sprintf("booking=%d reason=order_creation_failed", booking.BookingID))
		}
		d.BookingID = 0
		return CheckoutSession{}, fmt.Errorf("initiate payment: %w", err)
	}

	d.State = StateConfirmedPendingPayment

	key := order.Key
	if key == "" {
		key = f.KeyID
	}
	return CheckoutSession{
		DraftID:     d.ID,
		BookingID:   booking.BookingID,
		Key:         key,
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Description: "Payment for " + firstNonEmpty(booking.TourTitle, d.Tour.Title),
		Prefill: Prefill{
			Name:    d.Primary.Name,
			Email:   d.Contact.Email,
			Contact: d.Contact.Phone,
		},
	}, nil
}

// CompleteSuccess forwards the gateway identifiers to upstream verification.
// Verified payments end the flow with a summary; a failed verification ends
// it too, but the booking stays PENDING upstream (the user retries from
// their bookings page). Either way the draft is invalidated.
func (f Flow) CompleteSuccess(ctx context.Context, draftID string, bookingID int64, userID int64, res CallbackResult) (Summary, error) {
	d, _ := f.draftFor(draftID, userID)
	if d != nil && d.BookingID != 0 {
		bookingID = d.BookingID
	}
	if bookingID <= 0 {
		return Summary{}, domain.ValidationError{Field: "bookingId", Msg: "booking id is required"}
	}

	_, err := f.Payments.Verify(ctx, upstream.VerificationRequest{
		RazorpayOrderID:   res.RazorpayOrderID,
		RazorpayPaymentID: res.RazorpayPaymentID,
		RazorpaySignature: res.RazorpaySignature,
		BookingID:         bookingID,
	})
	if err != nil {
		if d != nil {
			d.State = StatePaymentFailed
			f.Drafts.Remove(d.ID)
		}
		utils.LogEvent(f.RequestID, "wizard", "verify_failed",
			fmt.Sprintf("booking=%d err=%v", bookingID, err))
		return Summary{}, err
	}

	sum := Summary{
		PaymentID: res.RazorpayPaymentID,
		OrderID:   res.RazorpayOrderID,
		BookingID: bookingID,
	}
	if d != nil {
		sum.Amount = d.TotalPrice
		sum.TourTitle = d.Tour.Title
		sum.TourImageURL = d.Tour.ImageURL
		d.State = StatePaymentSucceeded
		f.Drafts.Remove(d.ID)
	} else if booking, getErr := f.Bookings.Get(ctx, bookingID); getErr == nil {
		sum.Amount = booking.TotalPrice
		sum.TourTitle = booking.TourTitle
		sum.TourImageURL = booking.TourImageURL
	}
	sum.AmountLabel = utils.FormatINR(sum.Amount)
	utils.LogEvent(f.RequestID, "wizard", "payment_verified",
		fmt.Sprintf("booking=%d payment=%s", bookingID, res.RazorpayPaymentID))
	return sum, nil
}

// Dismiss is the widget's ondismiss path: the user closed checkout without
// paying, so the just-created booking is cancelled server-side. This is the
// one case where the flow proactively unwinds a partial booking.
func (f Flow) Dismiss(ctx context.Context, draftID string, userID int64) error {
	d, err := f.draftFor(draftID, userID)
	if err != nil {
		return err
	}
	if d.State != StateConfirmedPendingPayment || d.BookingID == 0 {
		return domain.ConflictError{Resource: "booking draft", Msg: "no payment in progress"}
	}
	if _, err := f.Bookings.Cancel(ctx, d.BookingID); err != nil {
		return err
	}
	utils.LogEvent(f.RequestID, "wizard", "payment_dismissed",
		fmt.Sprintf("draft=%s booking=%d", d.ID, d.BookingID))
	d.State = StatePaymentCancelled
	f.Drafts.Remove(d.ID)
	return nil
}

// RetryPayment re-enters the flow at the payment-order step for a booking
// that is still pending, without creating a new booking.
func (f Flow) RetryPayment(ctx context.Context, bookingID int64) (CheckoutSession, error) {
	booking, err := f.Bookings.Get(ctx, bookingID)
	if err != nil {
		return CheckoutSession{}, err
	}
	if booking.Status != domain.BookingPending {
		return CheckoutSession{}, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("payment cannot be retried for a %s booking", strings.ToLower(string(booking.Status))),
		}
	}

	order, err := f.Payments.CreateOrder(ctx, bookingID)
	if err != nil {
		// The booking already exists and stays pending; no compensation here.
		return CheckoutSession{}, fmt.Errorf("initiate payment: %w", err)
	}

	key := order.Key
	if key == "" {
		key = f.KeyID
	}
	prefillName := booking.UserName
	for _, p := range booking.Passengers {
		if p.IsPrimary {
			prefillName = p.Name
			break
		}
	}
	return CheckoutSession{
		BookingID:   bookingID,
		Key:         key,
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Description: "Payment for " + booking.TourTitle,
		Prefill: Prefill{
			Name:    prefillName,
			Email:   booking.ContactEmail,
			Contact: booking.ContactPhone,
		},
	}, nil
}

func passengerPayload(p PassengerForm) upstream.PassengerPayload {
	return upstream.PassengerPayload{
		Name:    strings.TrimSpace(p.Name),
		Age:     p.Age,
		Gender:  strings.TrimSpace(p.Gender),
		IDProof: strings.TrimSpace(p.IDProof),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
