package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chirp/apperror"
	"chirp/session"
)

// LoginForm renders the sign-in page. Logged-in users are sent home.
func (h *Handlers) LoginForm(c *gin.Context) {
	if session.UserFrom(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", page{Title: "Sign In"})
}

// Login authenticates the form credentials and establishes the session
// cookie. Credential failures are re-rendered inline with HTTP 200.
func (h *Handlers) Login(c *gin.Context) {
	if session.UserFrom(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := c.PostForm("username")
	user, err := h.users.Authenticate(c.Request.Context(), username, c.PostForm("password"))
	if apperror.IsAuth(err) {
		h.render(c, http.StatusOK, "login.html", page{
			Title:    "Sign In",
			Error:    apperror.MessageOf(err),
			Username: username,
		})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := session.Issue([]byte(h.cfg.SessionSecret), user.ID.Hex(), h.cfg.SessionTTL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.SetCookie(session.CookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	h.flash(c, "You were logged in")
	c.Redirect(http.StatusFound, "/")
}

// RegisterForm renders the sign-up page.
func (h *Handlers) RegisterForm(c *gin.Context) {
	if session.UserFrom(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "register.html", page{Title: "Sign Up"})
}

// Register validates the form and creates the account. The password
// confirmation check lives here; everything else is the store's concern.
// Validation failures are re-rendered inline with HTTP 200.
func (h *Handlers) Register(c *gin.Context) {
	if session.UserFrom(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := c.PostForm("username")
	email := c.PostForm("email")

	renderError := func(msg string) {
		h.render(c, http.StatusOK, "register.html", page{
			Title:    "Sign Up",
			Error:    msg,
			Username: username,
			Email:    email,
		})
	}

	if c.PostForm("password") != c.PostForm("password2") {
		renderError("The two passwords do not match")
		return
	}

	_, err := h.users.Register(c.Request.Context(), username, email, c.PostForm("password"))
	if apperror.IsValidation(err) {
		renderError(apperror.MessageOf(err))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	h.flash(c, "You were successfully registered and can login now")
	c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session cookie and returns to the public timeline.
func (h *Handlers) Logout(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	h.flash(c, "You were logged out")
	c.Redirect(http.StatusFound, "/public")
}
