// Package handlers exposes the storefront's HTTP surface: session endpoints,
// tour browsing, the booking wizard, payments, wishlist, reviews, admin
// views, and downloadable receipts. Handlers stay thin; flow rules live in
// the wizard and session packages, data access in the upstream client.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/config"
	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
	"github.com/kushal272003/tourbooking/internal/session"
	"github.com/kushal272003/tourbooking/internal/upstream"
	"github.com/kushal272003/tourbooking/internal/utils"
	"github.com/kushal272003/tourbooking/internal/wizard"
)

// Deps bundles the shared collaborators every handler needs.
type Deps struct {
	Env      config.Env
	Upstream *upstream.Client
	Sessions *session.Manager
	Drafts   *wizard.DraftStore
}

// flow builds the wizard controller bound to this request's id.
func (d *Deps) flow(c *gin.Context) wizard.Flow {
	return wizard.Flow{
		Bookings:  d.Upstream.Bookings,
		Payments:  d.Upstream.Payments,
		Drafts:    d.Drafts,
		KeyID:     d.Env.RazorpayKeyID,
		RequestID: middleware.GetRequestID(c),
	}
}

// respondError maps the error taxonomy onto HTTP responses. An auth failure
// additionally clears the persisted session so the next request starts
// logged out; the client follows the redirect field to the login page.
func (d *Deps) respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var ve domain.ValidationError
		errors.As(err, &ve)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "field": ve.Field})
	case domain.IsAuth(err):
		d.Sessions.Clear(c.Writer, c.Request)
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":  "session expired, please log in again",
			"redirect": middleware.LoginRoute,
		})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case domain.IsTransport(err):
		var te domain.TransportError
		errors.As(err, &te)
		utils.LogUpstreamFailure(middleware.GetRequestID(c), te.Op, err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "service temporarily unavailable, please try again later"})
	default:
		// Upstream business errors surface verbatim.
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	}
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return id, true
}
