// Package handlers implements the HTTP route handlers. Every handler gets
// its dependencies through the Handlers struct; there is no package state.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chirp/apperror"
	"chirp/config"
	"chirp/models"
	"chirp/session"
	"chirp/store"
)

const flashCookie = "chirp_flash"

// Handlers holds the injected dependencies of all route handlers.
type Handlers struct {
	cfg      *config.Config
	log      *slog.Logger
	users    store.UserStore
	follows  store.FollowStore
	messages store.MessageStore
	timeline *store.Timeline
}

func New(cfg *config.Config, log *slog.Logger, users store.UserStore, follows store.FollowStore, messages store.MessageStore) *Handlers {
	return &Handlers{
		cfg:      cfg,
		log:      log,
		users:    users,
		follows:  follows,
		messages: messages,
		timeline: store.NewTimeline(messages, follows),
	}
}

// page is the data passed to every template.
type page struct {
	Title    string
	User     *models.User
	Flashes  []string
	Messages []models.Message
	Profile  *models.User
	Followed bool
	Public   bool
	Error    string
	Username string
	Email    string
}

// flash stores a one-shot notice in a short-lived cookie, consumed by the
// next page render.
func (h *Handlers) flash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

func (h *Handlers) takeFlashes(c *gin.Context) []string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return []string{msg}
}

func (h *Handlers) render(c *gin.Context, status int, name string, p page) {
	p.User = session.UserFrom(c)
	p.Flashes = h.takeFlashes(c)
	c.HTML(status, name, p)
}

// fail maps store errors to terminal responses. Validation and auth errors
// never reach here; the form handlers surface those inline.
func (h *Handlers) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var ae *apperror.Error
	if errors.As(err, &ae) {
		status = ae.StatusCode()
	}
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	}
	c.String(status, "%d %s", status, http.StatusText(status))
	c.Abort()
}
