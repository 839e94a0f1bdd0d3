package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
)

type reviewRequest struct {
	TourID    int64  `json:"tourId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	BookingID int64  `json:"bookingId"`
}

func validateReview(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "rating must be between 1 and 5"}
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return domain.ValidationError{Field: "comment", Msg: "comment is required"}
	}
	if len(comment) < 10 {
		return domain.ValidationError{Field: "comment", Msg: "comment must be at least 10 characters"}
	}
	return nil
}

// CreateReview posts a review as the session user. Whether the user is
// allowed to review (completed booking, no duplicate) is the upstream's
// rule; its rejection surfaces verbatim.
func (d *Deps) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	if req.TourID <= 0 {
		d.respondError(c, domain.ValidationError{Field: "tourId", Msg: "tour is required"})
		return
	}
	if err := validateReview(req.Rating, req.Comment); err != nil {
		d.respondError(c, err)
		return
	}

	sess := middleware.CurrentSession(c)
	review, err := d.Upstream.Reviews.Create(c.Request.Context(), req.TourID, sess.User.ID, req.Rating, req.Comment, req.BookingID)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (d *Deps) MyReviews(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	reviews, err := d.Upstream.Reviews.ByUser(c.Request.Context(), sess.User.ID)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (d *Deps) UpdateReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	if err := validateReview(req.Rating, req.Comment); err != nil {
		d.respondError(c, err)
		return
	}

	sess := middleware.CurrentSession(c)
	review, err := d.Upstream.Reviews.Update(c.Request.Context(), id, sess.User.ID, req.Rating, req.Comment)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review; the upstream enforces ownership unless the
// caller is an admin.
func (d *Deps) DeleteReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	sess := middleware.CurrentSession(c)
	if err := d.Upstream.Reviews.Delete(c.Request.Context(), id, sess.User.ID, sess.IsAdmin()); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
