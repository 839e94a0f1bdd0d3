package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kushal272003/tourbooking/internal/domain"
)

type PaymentsService struct {
	c *Client
}

// PaymentOrder is the gateway order the upstream creates for a booking.
// Amount is in minor units (paise).
type PaymentOrder struct {
	OrderID   string `json:"orderId"`
	Currency  string `json:"currency"`
	Amount    int64  `json:"amount"`
	Key       string `json:"key"`
	BookingID string `json:"bookingId"`
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	UserPhone string `json:"userPhone,omitempty"`
}

// VerificationRequest forwards the gateway-issued identifiers for
// server-side signature verification.
type VerificationRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
	BookingID         int64  `json:"bookingId"`
}

func (s *PaymentsService) CreateOrder(ctx context.Context, bookingID int64) (PaymentOrder, error) {
	var out PaymentOrder
	err := s.c.post(ctx, fmt.Sprintf("/payments/create-order/%d", bookingID), nil, nil, &out)
	return out, err
}

func (s *PaymentsService) Verify(ctx context.Context, req VerificationRequest) (string, error) {
	var out string
	err := s.c.post(ctx, "/payments/verify", nil, req, &out)
	return out, err
}

// ReportFailure records a gateway-side failure against the order.
func (s *PaymentsService) ReportFailure(ctx context.Context, orderID, reason string) (string, error) {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("reason", reason)
	var out string
	err := s.c.post(ctx, "/payments/failed", q, nil, &out)
	return out, err
}

func (s *PaymentsService) List(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	err := s.c.get(ctx, "/payments", nil, &out)
	return out, err
}

func (s *PaymentsService) Get(ctx context.Context, id int64) (domain.Payment, error) {
	var out domain.Payment
	err := s.c.get(ctx, fmt.Sprintf("/payments/%d", id), nil, &out)
	return out, err
}

func (s *PaymentsService) GetByBooking(ctx context.Context, bookingID int64) (domain.Payment, error) {
	var out domain.Payment
	err := s.c.get(ctx, fmt.Sprintf("/payments/booking/%d", bookingID), nil, &out)
	return out, err
}
