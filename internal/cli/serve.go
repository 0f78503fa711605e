package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/uk_books_app/internal/analytics"
	"github.com/SscSPs/uk_books_app/internal/core/services"
	"github.com/SscSPs/uk_books_app/internal/handlers"
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/SscSPs/uk_books_app/internal/middleware"
	"github.com/SscSPs/uk_books_app/internal/obs"
	"github.com/SscSPs/uk_books_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(rt *runtime) *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, rt, migrateFirst)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", true, "Apply pending migrations before serving")
	return cmd
}

func runServe(ctx context.Context, rt *runtime, migrateFirst bool) error {
	cfg, logger := rt.cfg, rt.logger

	if migrateFirst {
		migrationDB, err := database.OpenSQL(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open database connection for migrations: %w", err)
		}
		if err := database.MigrateUp(migrationDB, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Info("Database connection pool established.")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := obs.NewMetrics(registry)
	metrics.SetBuildInfo(version, commit)

	tracker := analytics.NewPosthogTracker(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer tracker.Close()

	catalog := localization.Default()
	svcs := services.NewServiceContainer(st.repositories(), catalog, metrics, tracker)

	limiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Language", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.MetricsMiddleware(metrics),
		middleware.RateLimit(limiter),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	handlers.RegisterRoutes(r, cfg, svcs, catalog, tracker)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed to run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
