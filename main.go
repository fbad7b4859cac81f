package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/CAFxX/httpcompression"

	"github.com/campusevents/campus-events/internal/handler"
	"github.com/campusevents/campus-events/internal/repository/sqlite"
	"github.com/campusevents/campus-events/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, logOpts)))

	port := envOrDefault("PORT", "8080")
	dbPath := envOrDefault("DATABASE_PATH", "campus-events.db")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(jwtSecret) < 32 {
		slog.Error("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	// Default to secure cookies; disable only for local development.
	cookieSecure := os.Getenv("COOKIE_SECURE") != "false"

	bcryptCost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid BCRYPT_COST", "error", err)
			os.Exit(1)
		}
		if parsed < 4 || parsed > 14 {
			slog.Error("BCRYPT_COST must be between 4 and 14", "value", parsed)
			os.Exit(1)
		}
		bcryptCost = parsed
	}

	// The sink the registration notifier posts to. By default it is this
	// server's own send-email endpoint.
	notifyURL := envOrDefault("NOTIFY_URL", "http://localhost:"+port+"/api/send-email")
	recipient := envOrDefault("NOTIFY_RECIPIENT", "campus-admin@example.com")

	var mailer service.Mailer = service.LogMailer{}
	if smtpAddr := os.Getenv("SMTP_ADDR"); smtpAddr != "" {
		mailer = service.NewSMTPMailer(
			smtpAddr,
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASS"),
			envOrDefault("MAIL_FROM", "campusevents@example.com"),
		)
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	notifier := service.NewHTTPNotifier(notifyURL)
	session := service.NewSessionService(db.Users(), notifier, service.StubIdentityProvider{}, jwtSecret, bcryptCost)
	catalog := service.NewCatalogService(db.Events())
	favorites := service.NewFavoriteService(db.Favorites())
	mail := handler.NewMailHandler(mailer, recipient)

	// Restore a persisted session, if any, before serving requests.
	session.Restore(context.Background())

	// Burst of 5 auth attempts per IP, refilling one per two seconds.
	limiter := service.NewTokenBucket(0.5, 5)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, session, catalog, favorites, mail, limiter, cookieSecure)

	compress, err := httpcompression.DefaultAdapter()
	if err != nil {
		slog.Error("failed to create compression adapter", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(compress(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
