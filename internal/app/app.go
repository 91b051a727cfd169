package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"fxproxy/internal/adapters"
	"fxproxy/internal/adapters/cache"
	"fxproxy/internal/adapters/postgres"
	"fxproxy/internal/adapters/ratesapi"
	"fxproxy/internal/api"
	"fxproxy/internal/config"
	"fxproxy/internal/metrics"
	"fxproxy/internal/platform/db"
	httpserver "fxproxy/internal/platform/http"
	"fxproxy/internal/rate"
	"fxproxy/internal/rate/handler"
)

// Run wires the application components and starts the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if appCfg.DbServer.Migrate {
		if err = db.Migrate(startupCtx, appCfg.DbServer.GetConnectionStr()); err != nil {
			logrus.WithError(err).Error("Failed to apply migrations")
			return err
		}
		logrus.Info("✅ Migrations applied")
	}

	// Rate table cache
	rateCache, closeCache, err := newRateCache(appCfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to create rate cache")
		return err
	}
	defer closeCache()
	logrus.Infof("✅ Rate cache ready (backend=%s, ttl=%s)", appCfg.Cache.Backend, appCfg.Cache.TTL())

	// Upstream rates client (configurable timeout)
	httpTimeout := time.Duration(appCfg.RatesAPI.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	rateSource := ratesapi.NewClient(&http.Client{Timeout: httpTimeout}, appCfg.RatesAPI.BaseURL)

	// Repositories, metrics, fetch client
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	appMetrics := metrics.New()
	fetcher := rate.NewFetcher(rateSource, rateCache,
		rate.WithSnapshots(snapshotRepo),
		rate.WithMetrics(appMetrics),
		rate.WithRetryWait(time.Duration(appCfg.RatesAPI.RetryWaitMs)*time.Millisecond),
	)

	// Services
	supportedCodes := make(map[string]struct{}, len(appCfg.Currencies.Supported))
	for _, code := range appCfg.Currencies.Supported {
		supportedCodes[code] = struct{}{}
	}
	if len(supportedCodes) == 0 {
		return fmt.Errorf("no supported currencies configured")
	}
	rateService := rate.NewService(fetcher, snapshotRepo, appMetrics)
	rateValidator := rate.NewValidator(supportedCodes)

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateValidator, rateService)
	router := api.NewRouter(rateHandler, appMetrics)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// newRateCache builds the configured cache backend and a close func for it.
func newRateCache(appCfg *config.AppConfig) (adapters.RateCache, func(), error) {
	ttl := appCfg.Cache.TTL()
	if ttl <= 0 {
		ttl = time.Minute
	}

	switch appCfg.Cache.Backend {
	case "", "memory":
		return cache.NewMemoryCache(ttl), func() {}, nil
	case "ristretto":
		c, err := cache.NewRistrettoCache(appCfg.Cache.MaxItems, ttl)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	case "redis":
		redisOpts, err := redis.ParseURL(appCfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		client := redis.NewClient(redisOpts)
		return cache.NewRedisCache(client, ttl), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", appCfg.Cache.Backend)
	}
}
