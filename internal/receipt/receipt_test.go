package receipt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kushal272003/tourbooking/internal/domain"
)

func samplePayment() domain.Payment {
	return domain.Payment{
		ID:                12,
		BookingID:         101,
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		Amount:            25001.00,
		Currency:          "INR",
		Status:            domain.PaymentSuccess,
		CreatedAt:         "2026-08-30T12:00:00",
	}
}

func sampleBooking() domain.Booking {
	return domain.Booking{
		BookingID:       101,
		TourTitle:       "Kerala Backwaters",
		TourDestination: "Alleppey",
		TourStartDate:   "2026-10-01",
		NumberOfSeats:   2,
		UserName:        "Asha Rao",
		UserEmail:       "a@b.co",
		ContactPhone:    "9876543210",
	}
}

func TestBuildTextContents(t *testing.T) {
	content, filename := BuildText(samplePayment(), sampleBooking())
	text := string(content)

	for _, want := range []string{
		"PAYMENT RECEIPT",
		"Payment ID: 12",
		"Gateway Payment ID: pay_xyz",
		"Order ID: order_abc",
		"- Booking ID: #101",
		"- Tour: Kerala Backwaters",
		"- Number of Seats: 2",
		"- Amount: \u20b925,001.00",
		"- Name: Asha Rao",
		"Thank you for your booking!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}
	if !strings.HasPrefix(filename, "receipt-12-") || !strings.HasSuffix(filename, ".txt") {
		t.Fatalf("filename = %q", filename)
	}
}

func TestBuildTextBlanksBecomeNA(t *testing.T) {
	p := samplePayment()
	p.RazorpayPaymentID = ""
	b := sampleBooking()
	b.UserEmail = "  "

	content, _ := BuildText(p, b)
	text := string(content)
	if !strings.Contains(text, "Gateway Payment ID: N/A") {
		t.Fatalf("missing N/A fallback:\n%s", text)
	}
	if !strings.Contains(text, "- Email: N/A") {
		t.Fatalf("blank email not replaced:\n%s", text)
	}
}

func TestBuildInvoicePDF(t *testing.T) {
	content, filename, err := BuildInvoicePDF(samplePayment(), sampleBooking())
	if err != nil {
		t.Fatalf("BuildInvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "INV-101-12.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
