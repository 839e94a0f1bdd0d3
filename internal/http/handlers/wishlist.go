package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/http/middleware"
)

func (d *Deps) MyWishlist(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	entries, err := d.Upstream.Wishlist.ByUser(c.Request.Context(), sess.User.ID)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ToggleWishlist flips membership for (user, tour): present removes, absent
// adds. The response reports the resulting state so the heart icon can
// render without a second round trip.
func (d *Deps) ToggleWishlist(c *gin.Context) {
	tourID, ok := paramID(c, "tourId")
	if !ok {
		return
	}
	sess := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	if d.Upstream.Wishlist.Check(ctx, sess.User.ID, tourID) {
		if err := d.Upstream.Wishlist.Remove(ctx, sess.User.ID, tourID); err != nil {
			d.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"isInWishlist": false})
		return
	}

	if _, err := d.Upstream.Wishlist.Add(ctx, sess.User.ID, tourID); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isInWishlist": true})
}

func (d *Deps) RemoveFromWishlist(c *gin.Context) {
	tourID, ok := paramID(c, "tourId")
	if !ok {
		return
	}
	sess := middleware.CurrentSession(c)
	if err := d.Upstream.Wishlist.Remove(c.Request.Context(), sess.User.ID, tourID); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isInWishlist": false})
}

func (d *Deps) WishlistCount(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	count := d.Upstream.Wishlist.Count(c.Request.Context(), sess.User.ID)
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (d *Deps) ClearWishlist(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := d.Upstream.Wishlist.Clear(c.Request.Context(), sess.User.ID); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "wishlist cleared"})
}
