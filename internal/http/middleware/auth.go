package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/session"
	"github.com/kushal272003/tourbooking/internal/upstream"
)

const sessionKey = "session"

// LoginRoute is where unauthenticated (or de-authenticated) requests are
// pointed. Clients treat the "redirect" field as a navigation target.
const LoginRoute = "/login"

// Session restores the cookie session on every request and, when a live
// token is present, attaches it to the request context so upstream calls
// carry the bearer header.
func Session(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := mgr.Current(c.Request)
		c.Set(sessionKey, sess)
		if sess.IsAuthenticated() {
			c.Request = c.Request.WithContext(upstream.WithToken(c.Request.Context(), sess.Token))
		}
		c.Next()
	}
}

// CurrentSession returns the restored session; zero value when logged out.
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{}
}

// RequireAuth blocks unauthenticated requests before any upstream call.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  "login required",
				"redirect": LoginRoute,
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin guards admin routes. Non-admin users are turned away with an
// access-denied notice without any admin upstream call being issued.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":  "access denied: admin only",
				"redirect": "/",
			})
			return
		}
		c.Next()
	}
}
