// Package server boots the store API: configuration, database, cache,
// storage, routes and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/routes"
	"github.com/shashiranjanraj/vendora/config"
	"github.com/shashiranjanraj/vendora/database/seeders"
	"github.com/shashiranjanraj/vendora/pkg/cache"
	"github.com/shashiranjanraj/vendora/pkg/database"
	"github.com/shashiranjanraj/vendora/pkg/logger"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
	"github.com/shashiranjanraj/vendora/pkg/middleware"
	"github.com/shashiranjanraj/vendora/pkg/reqid"
	"github.com/shashiranjanraj/vendora/pkg/router"
	"github.com/shashiranjanraj/vendora/pkg/storage"
	"github.com/shashiranjanraj/vendora/pkg/ws"
)

const shutdownTimeout = 15 * time.Second

// logSink is the optional MongoDB log sink, flushed on shutdown.
var logSink *logger.MongoSink

// Boot loads configuration and connects the backing services. Safe to call
// from any CLI command that needs the database.
func Boot() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.MongoLogURI(); uri != "" {
		sink, err := logger.EnableMongoSink(uri, config.MongoLogDatabase(), config.MongoLogCollection())
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			logSink = sink
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("cache disabled", "error", err)
	}

	storage.Connect()
	return nil
}

// Migrate creates or updates the schema for every model.
func Migrate() error {
	return database.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// Seed runs every registered database seeder.
func Seed() error {
	return seeders.RunAll(database.DB)
}

// NewRouter builds the fully wired router. Exposed so tests and the
// route:list command can inspect routes without starting a listener.
func NewRouter(feed *ws.Feed) *router.Router {
	r := router.New()

	r.Use(
		reqid.Middleware(),
		metrics.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.RegisterAPI(r, feed)
	return r
}

// Start boots everything, migrates the schema and serves HTTP until an
// interrupt or terminate signal arrives, then drains in-flight requests.
func Start() error {
	if err := Boot(); err != nil {
		return err
	}

	if err := Migrate(); err != nil {
		return err
	}

	feed := ws.NewFeed()
	go feed.Run()

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(feed).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("vendora listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if logSink != nil {
		logSink.Close()
	}
	return nil
}
