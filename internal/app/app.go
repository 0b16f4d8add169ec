package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/showreel/internal/config"
	"github.com/MrSnakeDoc/showreel/internal/httpserver"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
	"github.com/MrSnakeDoc/showreel/internal/index"
	"github.com/MrSnakeDoc/showreel/internal/logger"
	"github.com/MrSnakeDoc/showreel/internal/redis"
	"github.com/MrSnakeDoc/showreel/internal/render"
	"github.com/MrSnakeDoc/showreel/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/showreel/internal/store/redis"
	"github.com/MrSnakeDoc/showreel/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	pages       *cache.Cache
	reloader    *scheduler.CatalogReloader
	watcher     *scheduler.FileWatcher
	gc          *scheduler.GarbageCollector
}

// New wires every component from the configuration.
// Redis is optional; when an address is configured it must answer.
func New(cfg *config.Config) (*App, error) {
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	var (
		redisClient *goredis.Client
		store       *redisstore.Store
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient.Named("redis"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisClient = client
		store = redisstore.NewStore(client)
		loggerClient.Info("Redis initialized successfully")
	} else {
		loggerClient.Info("redis not configured, play counters stay in memory")
	}

	memIndex := index.NewMemoryIndex()

	renderer, err := render.New(render.Options{ScrollOffset: cfg.ScrollOffset})
	if err != nil {
		closeRedis(redisClient, loggerClient)
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Rendered page cache (0 TTL disables it)
	var pages *cache.Cache
	if cfg.PageCacheTTL > 0 {
		pages = cache.New(cfg.PageCacheTTL, 2*cfg.PageCacheTTL)
	}

	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewCatalogReloader(
		cfg.CatalogFile,
		cfg.AboutFile,
		store,
		memIndex,
		loggerClient.Named("reloader"),
		cfg.ReloadInterval,
		reloadTrigger,
	)
	if pages != nil {
		reloader.OnReload(pages.Flush)
	}

	if store != nil {
		syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient.Named("sync"))
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to sync play counters from redis on startup",
				logger.Error(err))
		}
		reloader.WithFallback(syncer)
	}

	var watcher *scheduler.FileWatcher
	if files := reloader.WatchedFiles(); cfg.WatchCatalog && len(files) > 0 {
		watcher = scheduler.NewFileWatcher(files, reloadTrigger, scheduler.DefaultWatchDebounce, loggerClient.Named("watcher"))
	}

	gc := scheduler.NewGarbageCollector(store, memIndex, loggerClient.Named("gc"), cfg.GCInterval)

	httpLog := loggerClient.Named("http")

	// Dependencies passed to routes
	d := deps.Deps{
		Logger:          httpLog,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		MemoryIndex:     memIndex,
		Renderer:        renderer,
		Pages:           pages,
		Store:           store,
		RedisClient:     redisClient,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		AssetsDir:       cfg.AssetsDir,
		ReloadTrigger:   reloadTrigger,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, httpLog, d),
		redisClient: redisClient,
		memIndex:    memIndex,
		pages:       pages,
		reloader:    reloader,
		watcher:     watcher,
		gc:          gc,
	}, nil
}

// Run starts the background jobs and the HTTP server, and blocks until SIGINT/SIGTERM.
func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Showreel %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Showreel %s", version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial load, then periodic and manual reloads
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.Int("entries", a.memIndex.Count()),
		logger.String("source", a.memIndex.Source()),
		logger.Duration("interval", a.cfg.ReloadInterval))

	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			a.logger.Warn("file watcher disabled", logger.Error(err))
			a.watcher = nil
		}
	}

	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	a.reloader.Stop()
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	closeRedis(a.redisClient, a.logger)
	_ = a.logger.Sync()

	if runErr != nil {
		return runErr
	}
	a.logger.Info("✅ Showreel stopped cleanly")
	return nil
}

func closeRedis(client *goredis.Client, log logger.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Warnf("failed to close redis: %v", err)
		return
	}
	log.Info("✅ Redis closed cleanly")
}
