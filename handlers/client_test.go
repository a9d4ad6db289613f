package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"chirp/config"
	"chirp/routes"
	"chirp/session"
)

type testApp struct {
	router   *gin.Engine
	users    *fakeUsers
	follows  *fakeFollows
	messages *fakeMessages
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SessionSecret:      "test secret",
		SessionTTL:         time.Hour,
		Port:               "8080",
		CORSAllowedOrigins: []string{"http://localhost:8080"},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &testApp{
		users:    newFakeUsers(),
		follows:  newFakeFollows(),
		messages: newFakeMessages(),
	}
	app.router = routes.SetupRouter(cfg, log, app.users, app.follows, app.messages)
	return app
}

// client returns a fresh browser-like client with its own cookie jar.
func (a *testApp) client(t *testing.T) *testClient {
	return &testClient{t: t, router: a.router, cookies: make(map[string]*http.Cookie)}
}

type testClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func (c *testClient) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
		} else {
			c.cookies[ck.Name] = ck
		}
	}
	return w
}

func (c *testClient) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *testClient) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, form)
}

func (c *testClient) register(username, email, password string) {
	c.t.Helper()
	w := c.postForm("/register", url.Values{
		"username":  {username},
		"email":     {email},
		"password":  {password},
		"password2": {password},
	})
	require.Equal(c.t, http.StatusFound, w.Code)
	require.Equal(c.t, "/login", w.Header().Get("Location"))
}

func (c *testClient) login(username, password string) {
	c.t.Helper()
	w := c.postForm("/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(c.t, http.StatusFound, w.Code)
	require.Equal(c.t, "/", w.Header().Get("Location"))
	require.Contains(c.t, c.cookies, session.CookieName)
}

func (c *testClient) signUpAndIn(username, email, password string) {
	c.t.Helper()
	c.register(username, email, password)
	c.login(username, password)
}

func (c *testClient) loggedIn() bool {
	_, ok := c.cookies[session.CookieName]
	return ok
}
