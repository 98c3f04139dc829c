// console-gate - remote administration console server
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

	"github.com/ashureev/console-gate/internal/api"
	"github.com/ashureev/console-gate/internal/auth"
	"github.com/ashureev/console-gate/internal/config"
	"github.com/ashureev/console-gate/internal/console"
	"github.com/ashureev/console-gate/internal/feed"
	"github.com/ashureev/console-gate/internal/middleware"
	"github.com/ashureev/console-gate/internal/proc"
	"github.com/ashureev/console-gate/internal/registry"
	"github.com/ashureev/console-gate/internal/session"
	"github.com/ashureev/console-gate/internal/store"
	"github.com/ashureev/console-gate/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const version = "0.3.0"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting console", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	cred, err := auth.EnsureCredential(context.Background(), repo, cfg.Principal, cfg.Secret)
	if err != nil {
		slog.Error("Failed to establish console credentials", "error", err)
		os.Exit(1)
	}

	// The shared output sink: every console line goes to stdout and to
	// live feed subscribers. Captures tee off this handle per command.
	broadcaster := feed.NewBroadcaster(cfg.FeedQueueSize)
	out := console.NewOutput(console.MultiSink{
		console.NewWriterSink(os.Stdout),
		broadcaster,
	})

	// Initialize services.
	sessions := session.NewStore(cfg.SessionIdleTimeout)
	authGw := auth.NewGateway(cred, sessions)
	commands := console.NewGateway(
		out,
		registry.New(out, version),
		console.NewHistory(cfg.HistoryLimit),
		proc.NewTCPProbe(cfg.ServerAddr, cfg.ServerPort),
	)

	// Initialize handlers.
	wsHandler := feed.NewWebSocketHandler(authGw, broadcaster, cfg.IsDevelopment())
	consoleHandler := api.NewConsoleHandler(authGw, commands,
		web.Page("login.html"), web.Page("console.html"), wsHandler)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))

	consoleHandler.RegisterRoutes(r)

	// Create server.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // websocket feed connections stay open
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out.Println("Console ready on port " + cfg.Port)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
