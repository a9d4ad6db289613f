package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chirp/apperror"
	"chirp/session"
)

// AddMessage records a new message for the current user. Empty text is
// rejected without touching the store; either way the user lands back on
// their timeline with a flash.
func (h *Handlers) AddMessage(c *gin.Context) {
	user := session.UserFrom(c)

	_, err := h.messages.Post(c.Request.Context(), user, c.PostForm("text"))
	switch {
	case apperror.IsValidation(err):
		h.flash(c, apperror.MessageOf(err))
	case err != nil:
		h.fail(c, err)
		return
	default:
		h.flash(c, "Your message was recorded")
	}
	c.Redirect(http.StatusFound, "/")
}
