package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"chirp/session"
)

// FollowUser adds the target to the current user's followed-set. The route
// is gated by session.RequireUser, so the current user is always resolved.
func (h *Handlers) FollowUser(c *gin.Context) {
	user := session.UserFrom(c)
	whom, err := h.users.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.follows.Follow(c.Request.Context(), user.ID, whom.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.flash(c, fmt.Sprintf("You are now following %q", whom.Username))
	c.Redirect(http.StatusFound, "/"+whom.Username)
}

// UnfollowUser removes the target from the followed-set; a no-op when the
// target was not followed.
func (h *Handlers) UnfollowUser(c *gin.Context) {
	user := session.UserFrom(c)
	whom, err := h.users.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.follows.Unfollow(c.Request.Context(), user.ID, whom.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.flash(c, fmt.Sprintf("You are no longer following %q", whom.Username))
	c.Redirect(http.StatusFound, "/"+whom.Username)
}
