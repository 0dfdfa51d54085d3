package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/netutil"

	"linkly/internal/cache"
	"linkly/internal/config"
	"linkly/internal/expiry"
	"linkly/internal/geo"
	"linkly/internal/handler"
	"linkly/internal/metrics"
	custommiddleware "linkly/internal/middleware"
	"linkly/internal/qr"
	"linkly/internal/repository/memory"
	repomongo "linkly/internal/repository/mongo"
	"linkly/internal/service"
	"linkly/internal/shortener"
	"linkly/internal/tracker"
	"linkly/internal/validation"
)

const (
	redisKeyPrefix      = "linkly:"
	infraSampleInterval = 10 * time.Second
	shutdownTimeout     = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger = newLogger(cfg.Log.Level)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	links, analytics, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = openRedis(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	var pool *pgxpool.Pool
	if cfg.Metrics.Enabled {
		pool, err = openMetricsDB(ctx, &cfg.Postgres, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	recorder := metrics.NewRecorder(pool, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	var local *cache.Local
	if cfg.Cache.LocalEnabled {
		local, err = cache.NewLocal(cfg.Cache.MaxSizePow2)
		if err != nil {
			return fmt.Errorf("failed to create local cache: %w", err)
		}
		defer local.Close()
	}
	var shared *cache.Redis
	if rdb != nil {
		shared = cache.NewRedis(rdb, redisKeyPrefix, logger)
	}
	linkCache := cache.NewTiered(cfg.Cache.TTL, local, shared)

	var (
		scheduler service.ExpiryScheduler
		timers    *expiry.TimerScheduler
	)
	if rdb != nil {
		scheduler = expiry.NewScheduler(rdb)
	} else {
		logger.Warn("redis disabled, link expiry uses in-process timers")
		timers = expiry.NewTimerScheduler(logger)
		defer timers.Stop()
		scheduler = timers
	}

	httpClient := &http.Client{}

	linkService := service.NewLinkService(
		links,
		shortener.New(cfg.Code.Length),
		scheduler,
		linkCache,
		cfg.App.BaseURL,
		cfg.Code.MaxAttempts,
		recorder,
		logger,
	)
	analyticsService := service.NewAnalyticsService(
		analytics,
		geo.NewClient(httpClient, cfg.Geo.BaseURL, cfg.Geo.Timeout, logger),
		recorder,
	)
	resolver := service.NewCachedResolver(linkService, analyticsService, linkCache, cfg.Cache.TTL, recorder, logger)
	eraser := service.NewEraser(linkService, analyticsService, resolver, logger)

	var background sync.WaitGroup
	defer background.Wait()
	ctx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	if timers != nil {
		timers.Bind(eraser)
	} else if cfg.Expiry.ListenerEnabled {
		listener := expiry.NewListener(rdb, eraser, &cfg.Expiry, logger)
		background.Go(func() { listener.Run(ctx) })
	}

	clicks := tracker.New(analyticsService, recorder, &cfg.Tracker, logger)
	clicks.Start(ctx)
	defer clicks.Close()

	if cfg.Metrics.Enabled {
		src := metrics.Sources{Pool: pool, Tracker: clicks}
		if local != nil {
			src.Cache = local
		}
		if timers != nil {
			src.Expiry = timers
		}
		sampler := metrics.NewSampler(recorder, src, infraSampleInterval)
		background.Go(func() { sampler.Run(ctx) })
	}

	h := handler.New(
		linkService,
		resolver,
		eraser,
		clicks,
		validation.New(&cfg.Validation),
		qr.NewClient(httpClient, cfg.QR.APIURL, cfg.QR.Timeout),
		recorder,
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.IPExtractor, err = custommiddleware.IPExtractor(cfg.Server.TrustedProxies)
	if err != nil {
		return fmt.Errorf("failed to configure client ip extraction: %w", err)
	}
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger, "/api/v1/health"))
	e.Use(custommiddleware.Owner(&cfg.Auth))

	h.Register(e)

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.Server.MaxConnections)
	}

	srv := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			slog.String("addr", addr),
			slog.String("store", cfg.App.Store),
			slog.Bool("redis", rdb != nil),
			slog.Int("max_connections", cfg.Server.MaxConnections))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.LinkRepository, service.AnalyticsRepository, func(), error) {
	switch cfg.App.Store {
	case "memory":
		logger.Warn("using in-memory store, data is lost on restart")
		return memory.NewLinkRepository(), memory.NewAnalyticsRepository(), func() {}, nil
	case "mongo":
	default:
		return nil, nil, nil, fmt.Errorf("unknown store %q", cfg.App.Store)
	}

	client, err := repomongo.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect mongo", slog.String("error", err.Error()))
		}
	}

	db := client.Database(cfg.Mongo.Database)
	links, err := repomongo.NewLinkRepository(ctx, db)
	if err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	analytics, err := repomongo.NewAnalyticsRepository(ctx, db)
	if err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	return links, analytics, closeFn, nil
}

func openRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func openMetricsDB(ctx context.Context, cfg *config.PostgresConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	if err := metrics.Migrate(cfg.DSN(), logger); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	return pool, nil
}
