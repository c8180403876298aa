package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/irosadie/fifa-ranking/internal/adapters/catalog"
	"github.com/irosadie/fifa-ranking/internal/adapters/http/api"
	"github.com/irosadie/fifa-ranking/internal/adapters/http/swagger"
	"github.com/irosadie/fifa-ranking/internal/adapters/provider"
	"github.com/irosadie/fifa-ranking/internal/app"
	"github.com/irosadie/fifa-ranking/internal/config"
	"github.com/irosadie/fifa-ranking/pkg/logger"
	"github.com/irosadie/fifa-ranking/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 30 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	client := provider.NewHTTPClient(
		provider.WithBaseURL(cfg.ProviderBaseURL),
		provider.WithTimeout(time.Duration(cfg.ProviderTimeoutMS)*time.Millisecond),
		provider.WithRetryCount(cfg.ProviderRetries),
	)
	countries := catalog.New(client,
		catalog.WithTTL(time.Duration(cfg.CatalogTTLMinutes)*time.Minute),
	)
	svc := app.New(client,
		app.WithWorkers(cfg.FetchWorkers),
		app.WithCatalog(countries),
		app.WithLogger(log.Named("app")),
	)

	go startSystemMetricsUpdater(ctx)

	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc).Register(ctx, mux)

	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}
	if len(cfg.CORSOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.CORSOrigins
	}
	handler := cors.New(corsOptions).Handler(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater refreshes system-level gauges periodically.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.UpdateSystemMemoryUsage(m.Alloc)
			metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
		}
	}
}
