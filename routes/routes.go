// Package routes assembles the gin router: middleware chain, templates and
// the route table.
package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"chirp/config"
	"chirp/handlers"
	"chirp/metrics"
	"chirp/session"
	"chirp/store"
	"chirp/templates"
)

// SetupRouter wires the full HTTP surface. Stores are passed in already
// constructed; the router holds no connection state of its own.
func SetupRouter(cfg *config.Config, log *slog.Logger, users store.UserStore, follows store.FollowStore, messages store.MessageStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	router.SetHTMLTemplate(templates.Must())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	router.Use(collector.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	// Session resolution runs before every application route; mutating
	// routes additionally require an authenticated user.
	router.Use(session.CurrentUser([]byte(cfg.SessionSecret), users))

	h := handlers.New(cfg, log, users, follows, messages)

	router.GET("/", h.Home)
	router.GET("/public", h.PublicTimeline)
	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterForm)
	router.POST("/register", h.Register)
	router.GET("/logout", h.Logout)
	router.POST("/add_message", session.RequireUser(), h.AddMessage)
	router.GET("/:username", h.UserTimeline)
	router.GET("/:username/follow", session.RequireUser(), h.FollowUser)
	router.GET("/:username/unfollow", session.RequireUser(), h.UnfollowUser)

	return router
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
