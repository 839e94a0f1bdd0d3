package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/receipt"
)

// DownloadReceipt streams the plain-text receipt for a paid booking as a
// file download.
func (d *Deps) DownloadReceipt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, ok := d.ownedBooking(c, id)
	if !ok {
		return
	}

	payment, err := d.Upstream.Payments.GetByBooking(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	if payment.Status != domain.PaymentSuccess {
		d.respondError(c, domain.ConflictError{Resource: "payment", Msg: "receipt is available only after a successful payment"})
		return
	}

	content, filename := receipt.BuildText(payment, booking)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
}

// DownloadInvoice streams the PDF invoice for a paid booking.
func (d *Deps) DownloadInvoice(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, ok := d.ownedBooking(c, id)
	if !ok {
		return
	}

	payment, err := d.Upstream.Payments.GetByBooking(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return
	}
	if payment.Status != domain.PaymentSuccess {
		d.respondError(c, domain.ConflictError{Resource: "payment", Msg: "invoice is available only after a successful payment"})
		return
	}

	content, filename, err := receipt.BuildInvoicePDF(payment, booking)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", content)
}
