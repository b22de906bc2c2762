package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "encomendas/internal/app"
	"encomendas/internal/handlers/rest/customer_get"
	"encomendas/internal/handlers/rest/customer_post"
	"encomendas/internal/handlers/rest/customer_put"
	"encomendas/internal/handlers/rest/customers_get"
	"encomendas/internal/handlers/rest/export_customers_get"
	"encomendas/internal/handlers/rest/export_parcels_get"
	"encomendas/internal/handlers/rest/healthcheck_head"
	"encomendas/internal/handlers/rest/home_get"
	"encomendas/internal/handlers/rest/lookup_get"
	"encomendas/internal/handlers/rest/parcel_get"
	"encomendas/internal/handlers/rest/parcel_post"
	"encomendas/internal/handlers/rest/parcel_put"
	"encomendas/internal/handlers/rest/parcels_get"
	"encomendas/internal/handlers/rest/ping_get"
	"encomendas/internal/handlers/rest/report_get"
	"encomendas/internal/handlers/rest/settlement_commit_post"
	"encomendas/internal/handlers/rest/settlement_preview_post"
	"encomendas/internal/pkg/config"
	"encomendas/internal/pkg/dotenv"
	metrics_system "encomendas/internal/pkg/metrics"
	"encomendas/internal/pkg/middlewares/allowed_hosts"
	"encomendas/internal/pkg/middlewares/basic_auth"
	"encomendas/internal/pkg/middlewares/graceful_shutdown"
	"encomendas/internal/pkg/middlewares/metrics"
	"encomendas/internal/pkg/middlewares/rate_limiter"
	"encomendas/internal/pkg/middlewares/timeout"
	"encomendas/internal/pkg/pagination"
	"encomendas/internal/pkg/postgres"
	"encomendas/pkg/logger"
	"encomendas/pkg/logger/zap_adapter"
	"encomendas/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting encomendas application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM: it is only
	// cancelled after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not descend from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(allowed_hosts.Middleware(cfg.Server.AllowedHosts))
	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// Public surface: the banner and the parcel lookup counter terminal.
	router.Handle("/", home_get.New(log, app.ServiceReport)).Methods("GET")
	router.Handle("/lookup", lookup_get.New(log, app.ServiceLookup)).Methods("GET")

	policy := pagination.Policy{
		DefaultPageSize: cfg.App.ListPageSize,
		MaxPageSize:     cfg.App.ListMaxPageSize,
	}

	// Staff surface, behind HTTP basic auth.
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(basic_auth.Middleware(cfg.Auth.SuperuserUsername, cfg.Auth.SuperuserPassword))

	admin.Handle("/customer/{id}", customer_get.New(log, app.ServiceCustomer)).Methods("GET")
	admin.Handle("/customers", customers_get.New(log, app.ServiceCustomer, policy)).Methods("GET")
	admin.Handle("/customer", customer_post.New(log, app.ServiceCustomer)).Methods("POST")
	admin.Handle("/customer", customer_put.New(log, app.ServiceCustomer)).Methods("PUT")

	admin.Handle("/parcel/{id}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	admin.Handle("/parcels", parcels_get.New(log, app.ServiceParcel, policy)).Methods("GET")
	admin.Handle("/parcel", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	admin.Handle("/parcel", parcel_put.New(log, app.ServiceParcel)).Methods("PUT")

	admin.Handle("/settlement/preview", settlement_preview_post.New(log, app.ServiceParcel)).Methods("POST")
	admin.Handle("/settlement/commit", settlement_commit_post.New(log, app.ServiceParcel)).Methods("POST")

	admin.Handle("/report", report_get.New(log, app.ServiceReport)).Methods("GET")

	admin.Handle("/export/customers.xml", export_customers_get.New(log, app.ServiceExport)).Methods("GET")
	admin.Handle("/export/parcels.xml", export_parcels_get.New(log, app.ServiceExport)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
