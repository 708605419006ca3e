package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go-redirector/internal/redirect/background"
	"go-redirector/internal/redirect/cache"
	"go-redirector/internal/redirect/config"
	"go-redirector/internal/redirect/database"
	httpdelivery "go-redirector/internal/redirect/delivery/http"
	"go-redirector/internal/redirect/enrichment"
	"go-redirector/internal/redirect/metrics"
	"go-redirector/internal/redirect/publisher"
	"go-redirector/internal/redirect/ratelimit"
	"go-redirector/internal/redirect/repository/sqlstore"
	"go-redirector/internal/redirect/usecase"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// A missing store degrades every redirect to config-error instead of
	// refusing to start.
	db, dialect := openStore(cfg.DatabaseURL, logger)

	m := metrics.New()
	baseURL := cfg.ParsedBaseURL()

	geo := enrichment.NewGeoResolver(cfg.GeoIPDBPath, logger)
	defer geo.Close()

	pub, err := publisher.New(publisher.Config{
		Kind:         cfg.ClickPublisher,
		DaprPubSub:   cfg.DaprPubSub,
		DaprTopic:    cfg.DaprTopic,
		KafkaBrokers: cfg.KafkaBrokers,
		KafkaTopic:   cfg.KafkaTopic,
	})
	if err != nil {
		// Downstream notification is optional; clicks are still stored.
		logger.Warn("click publisher unavailable, publishing disabled",
			zap.String("kind", cfg.ClickPublisher),
			zap.Error(err),
		)
		pub = publisher.Noop{}
	}

	// Wire dependencies
	var (
		links  usecase.LinkRepository
		clicks usecase.ClickRepository
		pinger httpdelivery.Pinger
	)
	if db != nil {
		links = sqlstore.NewLinkRepository(db, dialect)
		clicks = sqlstore.NewClickRepository(db, dialect)
		pinger = db
	}

	processor := usecase.NewClickProcessor(
		clicks,
		enrichment.NewDeviceDetector(),
		geo,
		enrichment.NewRefererClassifier(),
		pub,
		cfg.EnrichRecencyWindow,
		m,
		logger,
	)

	runner, err := background.NewRunner(processor, logger,
		background.WithJobTimeout(cfg.EnrichTimeout),
		background.WithDrainTimeout(cfg.ShutdownTimeout),
		background.WithErrorHandler(func(job usecase.ClickJob, err error) {
			m.BackgroundFailure()
		}),
	)
	if err != nil {
		logger.Fatal("failed to create background runner", zap.Error(err))
	}

	runnerCtx, stopRunner := context.WithCancel(context.Background())
	defer stopRunner()
	go func() {
		if err := runner.Run(runnerCtx); err != nil {
			logger.Error("background runner stopped", zap.Error(err))
		}
	}()
	<-runner.Running()

	var sink usecase.ClickSink
	if clicks != nil {
		sink = usecase.NewClickSink(cfg.ClickLogMode, clicks, runner, cfg.ClickWriteTimeout, m, logger)
	} else {
		sink = usecase.NewBlockingSink(nil, nil, 0, m, logger)
	}

	resolver := usecase.NewLinkResolver(links, cache.New(cfg.CacheTTL), m, logger)
	service := usecase.NewRedirectService(resolver, usecase.NewClickRecorder(cfg.IPHashSalt), sink, baseURL, m, logger)
	handler := httpdelivery.NewHandler(service, pinger, logger)
	rateLimiter := httpdelivery.NewRateLimitMiddleware(ratelimit.New(cfg.RateLimitWindow, cfg.RateLimitMax), m.RateLimited)
	router := httpdelivery.NewRouter(handler, rateLimiter, m.Handler(), logger,
		httpdelivery.WithTrustedProxyHeaders(cfg.TrustProxyHeaders),
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("base_url", baseURL.String()),
			zap.String("click_log_mode", sink.Mode()),
			zap.String("click_publisher", cfg.ClickPublisher),
			zap.Bool("store_configured", db != nil),
			zap.Int("rate_limit", cfg.RateLimitMax),
			zap.Duration("rate_limit_window", cfg.RateLimitWindow),
			zap.Bool("trust_proxy_headers", cfg.TrustProxyHeaders),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	// Requests are finished; let their click jobs drain before closing the
	// publisher and store they use.
	if err := runner.Close(); err != nil {
		logger.Error("background runner close failed", zap.Error(err))
	}
	if err := pub.Close(); err != nil {
		logger.Error("click publisher close failed", zap.Error(err))
	}
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("database close failed", zap.Error(err))
		}
	}

	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.IsLocal() {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func openStore(dsn string, logger *zap.Logger) (*sql.DB, database.Dialect) {
	if dsn == "" {
		logger.Warn("DATABASE_URL not set, running without a link store")
		return nil, ""
	}

	if !strings.Contains(dsn, "://") && dsn != ":memory:" {
		// Ensure data directory exists
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			logger.Error("failed to create data directory", zap.Error(err))
			return nil, ""
		}
	}

	db, dialect, err := database.Open(dsn)
	if err != nil {
		logger.Error("failed to open database, running without a link store", zap.Error(err))
		return nil, ""
	}

	if err := database.RunMigrations(db, dialect); err != nil {
		logger.Error("failed to run migrations, running without a link store", zap.Error(err))
		db.Close()
		return nil, ""
	}

	logger.Info("database initialized", zap.String("dialect", string(dialect)))
	return db, dialect
}
