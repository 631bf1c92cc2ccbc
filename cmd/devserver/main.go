// The devserver binds the portal's backend protocol onto the in-memory
// dataset so the real-mode client path can be exercised without the
// production backend.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"fieldforce/internal/auth"
	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/mockstore"
	"fieldforce/internal/platform/config"
	"fieldforce/internal/platform/metrics"
	"fieldforce/internal/transport/http/handlers"
	"fieldforce/internal/transport/http/middleware"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		// Dev-only fallback; tokens do not survive a restart.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			logger.Error("secret generation failed", "err", err)
			os.Exit(1)
		}
		secret = hex.EncodeToString(buf)
		logger.Warn("FF_JWT_SECRET not set, using an ephemeral secret")
	}

	data := workforce.SeedData(time.Now())
	store := mockstore.New(data, time.Now)

	credentials := map[string]string{}
	for email, password := range map[string]string{
		data.HRAdminUser.Email: cfg.DevAdminPassword,
		data.PMUser.Email:      cfg.DevPMPassword,
	} {
		hash, err := auth.HashPassword(password)
		if err != nil {
			logger.Error("password hash failed", "err", err)
			os.Exit(1)
		}
		credentials[email] = hash
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Auth(secret))

	if cfg.MetricsEnabled {
		collector := metrics.New()
		router.Use(collector.Middleware)
		router.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := handlers.New(store, secret, credentials)
	handler.RegisterRoutes(router, middleware.RateLimit(cfg.RateLimitPerMinute))

	logger.Info("devserver listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
