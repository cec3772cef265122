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
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "github.com/bidbinh/vnss-tms-sub009/internal/app"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_delete"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_patch"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actor_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/actors_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/healthcheck_head"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_delete"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_history_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_patch"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_payment_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/order_transition_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/orders_assigned_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/orders_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/ping_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_delete"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_patch"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_post"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationship_projection_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest/relationships_get"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/config"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/dotenv"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/kafka"
	metrics_system "github.com/bidbinh/vnss-tms-sub009/internal/pkg/metrics"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/middlewares/graceful_shutdown"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/middlewares/metrics"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/middlewares/rate_limiter"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/middlewares/timeout"
	"github.com/bidbinh/vnss-tms-sub009/internal/pkg/postgres"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger/zap_adapter"
	"github.com/bidbinh/vnss-tms-sub009/pkg/token_bucket"
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

	mainLog.Info("starting tms-core application")

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

//nolint:contextcheck // Graceful shutdown contexts deliberately derive from context.Background().
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

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(&cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx feeds BaseContext and must survive SIGTERM. It is
	// cancelled only after server.Shutdown() so in-flight requests can
	// finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
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
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

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
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled
	// at this point.
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

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.Handle("/actors", actor_post.New(log, app.ServiceActor)).Methods("POST")
	api.Handle("/actors", actors_get.New(log, app.ServiceActor)).Methods("GET")
	api.Handle("/actors/{id}", actor_get.New(log, app.ServiceActor)).Methods("GET")
	api.Handle("/actors/{id}", actor_patch.New(log, app.ServiceActor)).Methods("PATCH")
	api.Handle("/actors/{id}", actor_delete.New(log, app.ServiceActor)).Methods("DELETE")

	api.Handle("/actors/{id}/relationships", relationship_post.New(log, app.ServiceRelationship)).Methods("POST")
	api.Handle("/actors/{id}/relationships", relationships_get.New(log, app.ServiceRelationship)).Methods("GET")
	api.Handle("/actors/{id}/relationships/{relId}", relationships_get.New(log, app.ServiceRelationship)).Methods("GET")
	api.Handle("/actors/{id}/relationships/{relId}", relationship_patch.New(log, app.ServiceRelationship)).Methods("PATCH")
	api.Handle("/actors/{id}/relationships/{relId}", relationship_delete.New(log, app.ServiceRelationship)).Methods("DELETE")
	api.Handle("/actors/{id}/{projection:"+relationship_projection_get.Projections+"}", relationship_projection_get.New(log, app.ServiceRelationship)).Methods("GET")

	api.Handle("/unified-orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/unified-orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/unified-orders/assigned-to-me", orders_assigned_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/unified-orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/unified-orders/{id}", order_patch.New(log, app.ServiceOrder)).Methods("PATCH")
	api.Handle("/unified-orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")
	api.Handle("/unified-orders/{id}/history", order_history_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/unified-orders/{id}/{action:"+order_transition_post.Actions+"}", order_transition_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/unified-orders/{id}/{leg:"+order_payment_post.Legs+"}", order_payment_post.New(log, app.ServiceOrder)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
