package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/pulselytics/pulselytics-go/internal/config"
	"github.com/pulselytics/pulselytics-go/internal/handler"
	"github.com/pulselytics/pulselytics-go/internal/middleware"
	"github.com/pulselytics/pulselytics-go/internal/repository"
	"github.com/pulselytics/pulselytics-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// The server stays up without a store; data-path handlers then
	// answer every request with "Database not configured".
	var store *repository.Store
	if cfg.DatabaseURL != "" {
		s, err := repository.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			slog.Warn("document store connection failed — running without store", "error", err)
		} else {
			store = s
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				store.Close(ctx)
			}()
		}
	} else {
		slog.Warn("DATABASE_URL not set — running without store")
	}

	var authService *service.AuthService
	var analyticsService *service.AnalyticsService
	if store != nil {
		authService = service.NewAuthService(repository.NewUserRepository(store), cfg.JWTSecret, cfg.TokenExpiry)
		analyticsService = service.NewAnalyticsService(repository.NewEventRepository(store))
	}

	authHandler := handler.NewAuthHandler(authService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, authService)
	systemHandler := handler.NewSystemHandler(store, cfg)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)

	r.Get("/", systemHandler.HandleRoot)
	r.Get("/test", systemHandler.HandleTest)

	r.Post("/auth/register", authHandler.HandleRegister)
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authService))
		r.Get("/auth/me", authHandler.HandleMe)
	})

	r.Post("/events", analyticsHandler.HandleTrackEvent)
	r.Get("/analytics/summary", analyticsHandler.HandleSummary)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
