package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chirp/session"
)

// Home shows the personal timeline, or redirects anonymous visitors to the
// public one.
func (h *Handlers) Home(c *gin.Context) {
	user := session.UserFrom(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/public")
		return
	}

	msgs, err := h.timeline.Personal(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "timeline.html", page{Title: "My Timeline", Messages: msgs})
}

// PublicTimeline shows the latest messages of all users.
func (h *Handlers) PublicTimeline(c *gin.Context) {
	msgs, err := h.timeline.Public(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "timeline.html", page{Title: "Public Timeline", Public: true, Messages: msgs})
}

// UserTimeline shows one user's messages and the viewer's follow state.
func (h *Handlers) UserTimeline(c *gin.Context) {
	profile, err := h.users.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	msgs, followed, err := h.timeline.User(c.Request.Context(), profile, session.UserFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "timeline.html", page{
		Title:    profile.Username + "'s Timeline",
		Profile:  profile,
		Followed: followed,
		Messages: msgs,
	})
}
