package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"chirp/config"
	"chirp/database"
	"chirp/logger"
	"chirp/routes"
	"chirp/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.SetupDefault(os.Stdout)
	log := slog.Default()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Error("mongodb connect failed", "err", err)
		os.Exit(1)
	}
	log.Info("connected to mongodb", "database", cfg.MongoDB)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = db.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		log.Error("index creation failed", "err", err)
		os.Exit(1)
	}

	// Stores are built before route registration; nothing below holds
	// ambient globals.
	users := store.NewUsers(db)
	follows := store.NewFollowers(db)
	messages := store.NewMessages(db)

	router := routes.SetupRouter(cfg, log, users, follows, messages)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "err", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Disconnect(ctx); err != nil {
		log.Error("mongodb disconnect failed", "err", err)
	}

	log.Info("server stopped")
}
