package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dstepanenko/applytrack-backend/internal/adapter/postgres"
	companyrepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/company"
	contactrepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/contact"
	historyrepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/history"
	resumerepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/resume"
	staterepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/state"
	"github.com/dstepanenko/applytrack-backend/internal/auth"
	"github.com/dstepanenko/applytrack-backend/internal/config"
	"github.com/dstepanenko/applytrack-backend/internal/service/resume"
	"github.com/dstepanenko/applytrack-backend/internal/transport/middleware"
	"github.com/dstepanenko/applytrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services, and serves HTTP until the
// context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	resumeSvc := resume.NewService(
		logger,
		companyrepo.New(pool),
		contactrepo.New(pool),
		resumerepo.New(pool),
		historyrepo.New(pool),
		staterepo.New(pool),
		txm,
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	resumeHandler := rest.NewResumeHandler(resumeSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(newRouter(resumeHandler, healthHandler))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// newRouter registers all REST routes on a ServeMux using Go 1.22 method
// patterns.
func newRouter(resumes *rest.ResumeHandler, health *rest.HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /resumes", resumes.Save)
	mux.HandleFunc("GET /resumes", resumes.List)
	mux.HandleFunc("GET /resumes/{id}", resumes.Get)
	mux.HandleFunc("PATCH /resumes/{id}/status", resumes.ChangeStatus)
	mux.HandleFunc("GET /resumes/{id}/history", resumes.History)
	mux.HandleFunc("GET /states", resumes.States)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	return mux
}
