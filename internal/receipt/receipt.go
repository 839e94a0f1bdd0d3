// Package receipt assembles downloadable payment artifacts from payment and
// booking fields: a plain-text receipt and a PDF invoice. Neither is a
// backend artifact; both are produced gateway-side.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/utils"
)

// BuildText renders the plain-text receipt offered as a browser download.
func BuildText(payment domain.Payment, booking domain.Booking) (content []byte, filename string) {
	var b strings.Builder
	line := strings.Repeat("=", 40)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "PAYMENT RECEIPT")
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Payment ID: %d\n", payment.ID)
	fmt.Fprintf(&b, "Gateway Payment ID: %s\n", safe(payment.RazorpayPaymentID))
	fmt.Fprintf(&b, "Order ID: %s\n", safe(payment.RazorpayOrderID))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Booking Details:")
	fmt.Fprintf(&b, "- Booking ID: #%d\n", booking.BookingID)
	fmt.Fprintf(&b, "- Tour: %s\n", safe(booking.TourTitle))
	fmt.Fprintf(&b, "- Destination: %s\n", safe(booking.TourDestination))
	fmt.Fprintf(&b, "- Number of Seats: %d\n", booking.NumberOfSeats)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Payment Details:")
	fmt.Fprintf(&b, "- Amount: %s\n", utils.FormatINR(payment.Amount))
	fmt.Fprintf(&b, "- Currency: %s\n", safe(payment.Currency))
	fmt.Fprintf(&b, "- Status: %s\n", payment.Status)
	fmt.Fprintf(&b, "- Date: %s\n", safe(payment.CreatedAt))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Customer Details:")
	fmt.Fprintf(&b, "- Name: %s\n", safe(booking.UserName))
	fmt.Fprintf(&b, "- Email: %s\n", safe(booking.UserEmail))
	fmt.Fprintf(&b, "- Phone: %s\n", safe(booking.ContactPhone))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "Thank you for your booking!")
	fmt.Fprintln(&b, line)

	filename = fmt.Sprintf("receipt-%d-%d.txt", payment.ID, time.Now().Unix())
	return []byte(b.String()), filename
}

// BuildInvoicePDF renders a one-page PDF invoice for a paid booking.
func BuildInvoicePDF(payment domain.Payment, booking domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d-%d", booking.BookingID, payment.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(booking.UserName)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(booking.UserEmail)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(booking.ContactPhone)))
	pdf.Ln(10)

	desc := fmt.Sprintf("%s, %s (%s, %d seats)",
		safe(booking.TourTitle), safe(booking.TourDestination),
		utils.FormatDisplayDate(booking.TourStartDate), booking.NumberOfSeats,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	perSeat := payment.Amount
	if booking.NumberOfSeats > 0 {
		perSeat = payment.Amount / float64(booking.NumberOfSeats)
	}
	// Core PDF fonts cannot encode the rupee sign, so amounts use "INR".
	pdf.Cell(0, 6, "Price (per seat): INR "+utils.FormatMoney(perSeat))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: INR "+utils.FormatMoney(payment.Amount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Payment %s via gateway order %s.",
		strings.ToLower(string(payment.Status)), safe(payment.RazorpayOrderID)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", invNo)
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
