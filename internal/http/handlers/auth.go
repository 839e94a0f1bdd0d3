package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
	"github.com/kushal272003/tourbooking/internal/upstream"
	"github.com/kushal272003/tourbooking/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the upstream and persists the session. The
// response echoes the user so the client can route admins to the dashboard.
func (d *Deps) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		d.respondError(c, domain.ValidationError{Field: "email", Msg: "email and password are required"})
		return
	}

	user, err := d.Sessions.Login(c.Request.Context(), c.Writer, c.Request, req.Email, req.Password)
	if err != nil {
		// A wrong password comes back as 401 upstream; there is no session
		// to clear, so it surfaces as a plain login failure.
		if domain.IsAuth(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
			return
		}
		d.respondError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user="+req.Email)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Register creates the account upstream. The user logs in afterwards; no
// session is created here.
func (d *Deps) Register(c *gin.Context) {
	var req upstream.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case req.Name == "":
		d.respondError(c, domain.ValidationError{Field: "name", Msg: "name is required"})
		return
	case !utils.IsEmail(req.Email):
		d.respondError(c, domain.ValidationError{Field: "email", Msg: "invalid email format"})
		return
	case len(req.Password) < 6:
		d.respondError(c, domain.ValidationError{Field: "password", Msg: "password must be at least 6 characters"})
		return
	}

	user, err := d.Sessions.Register(c.Request.Context(), req)
	if err != nil {
		d.respondError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "user="+req.Email)
	c.JSON(http.StatusCreated, gin.H{"user": user, "message": "registration successful, please log in"})
}

func (d *Deps) Logout(c *gin.Context) {
	d.Sessions.Logout(c.Writer, c.Request)
	c.JSON(http.StatusOK, gin.H{"message": "logged out", "redirect": middleware.LoginRoute})
}

// Me returns the restored session's user record.
func (d *Deps) Me(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// Profile fetches the fresh profile from upstream rather than trusting the
// persisted copy.
func (d *Deps) Profile(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	user, err := d.Upstream.Users.Profile(c.Request.Context(), sess.User.ID)
	if err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile writes the changes upstream and refreshes the persisted
// user so the header and dashboards show the new values immediately.
func (d *Deps) UpdateProfile(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req upstream.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}

	user, err := d.Upstream.Users.UpdateProfile(c.Request.Context(), sess.User.ID, req)
	if err != nil {
		d.respondError(c, err)
		return
	}
	if err := d.Sessions.RefreshUser(c.Writer, c.Request, user); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (d *Deps) ChangePassword(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		d.respondError(c, domain.ValidationError{Field: "body", Msg: "invalid request body"})
		return
	}
	if len(req.NewPassword) < 6 {
		d.respondError(c, domain.ValidationError{Field: "newPassword", Msg: "password must be at least 6 characters"})
		return
	}

	if err := d.Upstream.Users.ChangePassword(c.Request.Context(), sess.User.ID, req.CurrentPassword, req.NewPassword); err != nil {
		d.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
