package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yatriai/sos-alerts/internal/api"
	"github.com/yatriai/sos-alerts/internal/config"
	"github.com/yatriai/sos-alerts/internal/events"
	"github.com/yatriai/sos-alerts/internal/logging"
	"github.com/yatriai/sos-alerts/internal/notify"
	"github.com/yatriai/sos-alerts/internal/registry"
	"github.com/yatriai/sos-alerts/internal/repository"
	"github.com/yatriai/sos-alerts/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broadcaster := events.NewBroadcaster()

	// Without credentials the dispatcher still runs, recording every event as
	// pending so the audit log shows what was never attempted.
	var provider notify.Provider
	if cfg.Twilio.HasCredentials() {
		provider = notify.NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, cfg.Dispatch.AttemptTimeout)
		slog.Info("sms provider configured", "to", notify.MaskPhone(cfg.Twilio.EmergencyNumber))
	} else {
		slog.Warn("sms provider not configured, notifications will be recorded as pending")
	}

	dispatcher := notify.NewDispatcher(provider, db, notify.Options{
		Workers:        cfg.Dispatch.Workers,
		BufferSize:     cfg.Dispatch.BufferSize,
		AttemptTimeout: cfg.Dispatch.AttemptTimeout,
		To:             cfg.Twilio.EmergencyNumber,
	})
	dispatcher.Start(ctx)

	svc := service.New(registry.New(), dispatcher, broadcaster, db)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(10, 20))

	handler := api.NewHandler(svc, broadcaster, func() notify.Status {
		return notify.Status{
			Configured:     cfg.Twilio.Configured(),
			HasCredentials: cfg.Twilio.HasCredentials(),
			HasTarget:      cfg.Twilio.EmergencyNumber != "",
			TargetNumber:   notify.MaskPhone(cfg.Twilio.EmergencyNumber),
		}
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	// Close streams first so SSE clients drain, then stop accepting requests,
	// then let the dispatcher finish queued notification attempts.
	broadcaster.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	dispatcher.Stop()
	cancel()

	slog.Info("shutdown complete")
}
