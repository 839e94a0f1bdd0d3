package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/upstream"
)

type fakeBookings struct {
	createErr error
	cancelErr error
	created   int
	cancelled []int64
	booking   domain.Booking
}

func (f *fakeBookings) Create(_ context.Context, req upstream.BookingRequest) (domain.Booking, error) {
	if f.createErr != nil {
		return domain.Booking{}, f.createErr
	}
	f.created++
	b := f.booking
	if b.BookingID == 0 {
		b.BookingID = 101
	}
	b.TourID = req.TourID
	b.UserID = req.UserID
	return b, nil
}

func (f *fakeBookings) Get(_ context.Context, id int64) (domain.Booking, error) {
	b := f.booking
	b.BookingID = id
	return b, nil
}

func (f *fakeBookings) Cancel(_ context.Context, id int64) (domain.Booking, error) {
	if f.cancelErr != nil {
		return domain.Booking{}, f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return domain.Booking{BookingID: id, Status: domain.BookingCancelled}, nil
}

type fakePayments struct {
	orderErr  error
	verifyErr error
	orders    int
}

func (f *fakePayments) CreateOrder(_ context.Context, bookingID int64) (upstream.PaymentOrder, error) {
	if f.orderErr != nil {
		return upstream.PaymentOrder{}, f.orderErr
	}
	f.orders++
	return upstream.PaymentOrder{OrderID: "order_abc", Currency: "INR", Amount: 2500000}, nil
}

func (f *fakePayments) Verify(_ context.Context, _ upstream.VerificationRequest) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return "Payment verified successfully", nil
}

func readyDraft(t *testing.T, store *DraftStore) *Draft {
	t.Helper()
	d, err := NewDraft(sampleTour(), 2)
	if err != nil {
		t.Fatalf("NewDraft: %v", err)
	}
	d.OwnerID = 9
	d.Contact = ContactDetails{Email: "a@b.co", Phone: "9876543210"}
	d.Primary = PassengerForm{Name: "Asha Rao", Age: 31, Gender: "female", IDProof: "AADHAAR1234"}
	d.Additional = []PassengerForm{{Name: "Passenger Two", Age: 25}}
	d.State = StatePassengerInfoCollected
	store.Put(d)
	return d
}

func TestConfirmAndPayHappyPath(t *testing.T) {
	store := NewDraftStore(time.Minute)
	bookings := &fakeBookings{}
	payments := &fakePayments{}
	flow := Flow{Bookings: bookings, Payments: payments, Drafts: store, KeyID: "rzp_test_key"}

	d := readyDraft(t, store)
	checkout, err := flow.ConfirmAndPay(context.Background(), d.ID, 9)
	if err != nil {
		t.Fatalf("ConfirmAndPay: %v", err)
	}
	if d.State != StateConfirmedPendingPayment {
		t.Fatalf("state = %s, want %s", d.State, StateConfirmedPendingPayment)
	}
	if checkout.OrderID != "order_abc" || checkout.BookingID != 101 {
		t.Fatalf("unexpected checkout: %+v", checkout)
	}
	if checkout.Key != "rzp_test_key" {
		t.Fatalf("key = %q, want configured fallback", checkout.Key)
	}
	if checkout.Prefill.Email != "a@b.co" || checkout.Prefill.Name != "Asha Rao" {
		t.Fatalf("unexpected prefill: %+v", checkout.Prefill)
	}
}

func TestConfirmAndPayCompensatesOnOrderFailure(t *testing.T) {
	store := NewDraftStore(time.Minute)
	bookings := &fakeBookings{}
	payments := &fakePayments{orderErr: errors.New("gateway down")}
	flow := Flow{Bookings: bookings, Payments: payments, Drafts: store}

	d := readyDraft(t, store)
	_, err := flow.ConfirmAndPay(context.Background(), d.ID, 9)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(bookings.cancelled) != 1 || bookings.cancelled[0] != 101 {
		t.Fatalf("booking not compensated: cancelled=%v", bookings.cancelled)
	}
	if d.BookingID != 0 {
		t.Fatalf("draft kept booking id %d after compensation", d.BookingID)
	}
	if d.State != StatePassengerInfoCollected {
		t.Fatalf("state = %s, want to stay at %s", d.State, StatePassengerInfoCollected)
	}
}

func TestConfirmAndPayRejectsDoubleSubmit(t *testing.T) {
	store := NewDraftStore(time.Minute)
	bookings := &fakeBookings{}
	flow := Flow{Bookings: bookings, Payments: &fakePayments{}, Drafts: store}

	d := readyDraft(t, store)
	if _, err := flow.ConfirmAndPay(context.Background(), d.ID, 9); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	_, err := flow.ConfirmAndPay(context.Background(), d.ID, 9)
	if !domain.IsConflict(err) {
		t.Fatalf("second confirm err = %v, want conflict", err)
	}
	if bookings.created != 1 {
		t.Fatalf("created %d bookings, want 1", bookings.created)
	}
}

func TestConfirmAndPayRequiresPassengerStep(t *testing.T) {
	store := NewDraftStore(time.Minute)
	flow := Flow{Bookings: &fakeBookings{}, Payments: &fakePayments{}, Drafts: store}

	d, _ := NewDraft(sampleTour(), 1)
	d.OwnerID = 9
	store.Put(d)
	if _, err := flow.ConfirmAndPay(context.Background(), d.ID, 9); !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestCompleteSuccessRemovesDraft(t *testing.T) {
	store := NewDraftStore(time.Minute)
	flow := Flow{Bookings: &fakeBookings{}, Payments: &fakePayments{}, Drafts: store}

	d := readyDraft(t, store)
	if _, err := flow.ConfirmAndPay(context.Background(), d.ID, 9); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	sum, err := flow.CompleteSuccess(context.Background(), d.ID, 0, 9, CallbackResult{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "sig",
	})
	if err != nil {
		t.Fatalf("CompleteSuccess: %v", err)
	}
	if sum.BookingID != 101 || sum.PaymentID != "pay_xyz" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.TourTitle != "Kerala Backwaters" {
		t.Fatalf("summary title = %q", sum.TourTitle)
	}
	if sum.AmountLabel == "" {
		t.Fatal("summary amount label is empty")
	}
	if _, ok := store.Get(d.ID); ok {
		t.Fatal("draft still present after success")
	}
}

func TestCompleteSuccessVerifyFailureKeepsBookingPending(t *testing.T) {
	store := NewDraftStore(time.Minute)
	bookings := &fakeBookings{}
	payments := &fakePayments{}
	flow := Flow{Bookings: bookings, Payments: payments, Drafts: store}

	d := readyDraft(t, store)
	if _, err := flow.ConfirmAndPay(context.Background(), d.ID, 9); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	payments.verifyErr = errors.New("signature mismatch")
	_, err := flow.CompleteSuccess(context.Background(), d.ID, 0, 9, CallbackResult{})
	if err == nil {
		t.Fatal("expected verify error")
	}
	// Verification failure never cancels the booking: it stays pending
	// upstream for a later retry.
	if len(bookings.cancelled) != 0 {
		t.Fatalf("booking cancelled on verify failure: %v", bookings.cancelled)
	}
	if _, ok := store.Get(d.ID); ok {
		t.Fatal("draft still present after failed verification")
	}
}

func TestDismissCancelsBooking(t *testing.T) {
	store := NewDraftStore(time.Minute)
	bookings := &fakeBookings{}
	flow := Flow{Bookings: bookings, Payments: &fakePayments{}, Drafts: store}

	d := readyDraft(t, store)
	if _, err := flow.ConfirmAndPay(context.Background(), d.ID, 9); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := flow.Dismiss(context.Background(), d.ID, 9); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	if len(bookings.cancelled) != 1 {
		t.Fatalf("cancelled = %v, want one cancellation", bookings.cancelled)
	}
	if _, ok := store.Get(d.ID); ok {
		t.Fatal("draft still present after dismiss")
	}
}

func TestDismissWithoutPendingPayment(t *testing.T) {
	store := NewDraftStore(time.Minute)
	flow := Flow{Bookings: &fakeBookings{}, Payments: &fakePayments{}, Drafts: store}

	d := readyDraft(t, store)
	if err := flow.Dismiss(context.Background(), d.ID, 9); !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestRetryPaymentOnlyForPending(t *testing.T) {
	bookings := &fakeBookings{booking: domain.Booking{
		Status:       domain.BookingPending,
		TourTitle:    "Kerala Backwaters",
		ContactEmail: "a@b.co",
		ContactPhone: "9876543210",
		Passengers:   []domain.Passenger{{Name: "Asha Rao", IsPrimary: true}},
	}}
	payments := &fakePayments{}
	flow := Flow{Bookings: bookings, Payments: payments, Drafts: NewDraftStore(time.Minute), KeyID: "rzp_test_key"}

	checkout, err := flow.RetryPayment(context.Background(), 55)
	if err != nil {
		t.Fatalf("RetryPayment: %v", err)
	}
	if checkout.BookingID != 55 || checkout.Prefill.Name != "Asha Rao" {
		t.Fatalf("unexpected checkout: %+v", checkout)
	}

	bookings.booking.Status = domain.BookingConfirmed
	if _, err := flow.RetryPayment(context.Background(), 55); !domain.IsConflict(err) {
		t.Fatalf("confirmed booking retry err = %v, want conflict", err)
	}
	if payments.orders != 1 {
		t.Fatalf("orders = %d, want 1", payments.orders)
	}
}

func TestPassengersBlocksAfterConfirm(t *testing.T) {
	store := NewDraftStore(time.Minute)
	flow := Flow{Bookings: &fakeBookings{}, Payments: &fakePayments{}, Drafts: store}

	d := readyDraft(t, store)
	if _, err := flow.ConfirmAndPay(context.Background(), d.ID, 9); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	_, _, err := flow.Passengers(d.ID, 9, validInfo(1))
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestDraftInvisibleToOtherUsers(t *testing.T) {
	store := NewDraftStore(time.Minute)
	bookings := &fakeBookings{}
	flow := Flow{Bookings: bookings, Payments: &fakePayments{}, Drafts: store}

	d := readyDraft(t, store) // owned by user 9
	const intruder = 10

	if _, err := flow.Draft(d.ID, intruder); !domain.IsNotFound(err) {
		t.Fatalf("Draft err = %v, want not found", err)
	}
	if _, _, err := flow.Passengers(d.ID, intruder, validInfo(1)); !domain.IsNotFound(err) {
		t.Fatalf("Passengers err = %v, want not found", err)
	}
	if _, err := flow.ConfirmAndPay(context.Background(), d.ID, intruder); !domain.IsNotFound(err) {
		t.Fatalf("ConfirmAndPay err = %v, want not found", err)
	}
	if err := flow.Dismiss(context.Background(), d.ID, intruder); !domain.IsNotFound(err) {
		t.Fatalf("Dismiss err = %v, want not found", err)
	}
	if bookings.created != 0 {
		t.Fatalf("intruder created %d bookings", bookings.created)
	}

	// The owner is unaffected.
	if _, err := flow.Draft(d.ID, 9); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
}

func TestDraftStoreExpiry(t *testing.T) {
	store := NewDraftStore(10 * time.Minute)
	base := time.Now()
	store.now = func() time.Time { return base }

	d, _ := NewDraft(sampleTour(), 1)
	d.CreatedAt = base
	store.Put(d)

	if _, ok := store.Get(d.ID); !ok {
		t.Fatal("fresh draft missing")
	}
	store.now = func() time.Time { return base.Add(11 * time.Minute) }
	if _, ok := store.Get(d.ID); ok {
		t.Fatal("expired draft still returned")
	}
}
