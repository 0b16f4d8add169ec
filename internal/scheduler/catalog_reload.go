package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	"github.com/MrSnakeDoc/showreel/internal/index"
	"github.com/MrSnakeDoc/showreel/internal/logger"
	aboutsrc "github.com/MrSnakeDoc/showreel/internal/sources/about"
	catalogsrc "github.com/MrSnakeDoc/showreel/internal/sources/catalog"
	redisstore "github.com/MrSnakeDoc/showreel/internal/store/redis"
)

// CatalogReloader handles loading and periodic reloading of the catalog and about page
type CatalogReloader struct {
	catalogLoader *catalogsrc.Loader
	mapper        *catalogsrc.Mapper
	aboutLoader   *aboutsrc.Loader
	store         *redisstore.Store
	index         *index.MemoryIndex
	fallback      *RedisSyncer
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
	onReload      func()
}

// NewCatalogReloader creates a new catalog reloader.
// Empty file paths select the bundled content. store may be nil.
func NewCatalogReloader(
	catalogFile string,
	aboutFile string,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		catalogLoader: catalogsrc.NewLoader(catalogFile),
		mapper:        catalogsrc.NewMapper(),
		aboutLoader:   aboutsrc.NewLoader(aboutFile),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// OnReload registers a hook run after every successful reload (ex: page cache flush)
func (cr *CatalogReloader) OnReload(fn func()) {
	cr.onReload = fn
}

// WithFallback restores the Redis snapshot when the initial load fails
func (cr *CatalogReloader) WithFallback(s *RedisSyncer) {
	cr.fallback = s
}

// WatchedFiles returns the configured content files, bundled ones excluded
func (cr *CatalogReloader) WatchedFiles() []string {
	var files []string
	if p := cr.catalogLoader.FilePath(); p != "" {
		files = append(files, p)
	}
	if p := cr.aboutLoader.FilePath(); p != "" {
		files = append(files, p)
	}
	return files
}

// Start loads the catalog and begins the periodic reload process
func (cr *CatalogReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		if !cr.restoreSnapshot(ctx, err) {
			return fmt.Errorf("initial reload failed: %w", err)
		}
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cr.reloadAndLog(ctx)
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				cr.reloadAndLog(ctx)
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

func (cr *CatalogReloader) reloadAndLog(ctx context.Context) {
	if err := cr.Reload(ctx); err != nil {
		cr.logger.Error("failed to reload catalog, keeping previous one",
			logger.String("source", cr.catalogLoader.Source()),
			logger.Error(err))
	}
}

// Reload loads the catalog and about page and swaps them into the index.
// On any error the index is left untouched.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	source := cr.catalogLoader.Source()
	cr.logger.Info("reloading catalog", logger.String("source", source))

	cat, err := cr.loadCatalog()
	if err != nil {
		return err
	}

	about, err := cr.aboutLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load about page: %w", err)
	}

	cr.index.UpdateCatalog(cat, source)
	cr.index.UpdateAbout(about)

	cr.logger.Info("catalog loaded",
		logger.String("source", source),
		logger.Int("categories", len(cat.Categories)),
		logger.Int("entries", cat.EntryCount()))

	// Update Redis store (best effort)
	if cr.store != nil {
		if err := cr.store.SaveCatalog(ctx, cat, source); err != nil {
			cr.logger.Warn("failed to save catalog snapshot to redis",
				logger.Error(err))
			// Don't fail - memory index is the primary source
		}
	}

	if cr.onReload != nil {
		cr.onReload()
	}

	return nil
}

func (cr *CatalogReloader) loadCatalog() (*domain.Catalog, error) {
	file, err := cr.catalogLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	cat, err := cr.mapper.Map(file)
	if err != nil {
		return nil, fmt.Errorf("failed to map catalog: %w", err)
	}

	return cat, nil
}

// restoreSnapshot serves the last good catalog from Redis after a failed initial load
func (cr *CatalogReloader) restoreSnapshot(ctx context.Context, cause error) bool {
	if cr.fallback == nil {
		return false
	}

	cr.logger.Warn("initial catalog load failed, trying redis snapshot", logger.Error(cause))

	ok, err := cr.fallback.RestoreCatalog(ctx)
	if err != nil || !ok {
		if err != nil {
			cr.logger.Error("failed to restore catalog snapshot", logger.Error(err))
		}
		return false
	}

	// The about page has no snapshot, fall back to the bundled one when the file is broken too
	about, err := cr.aboutLoader.Load()
	if err != nil {
		cr.logger.Warn("about page unavailable, using bundled one", logger.Error(err))
		if about, err = aboutsrc.NewLoader("").Load(); err != nil {
			return false
		}
	}
	cr.index.UpdateAbout(about)

	if cr.onReload != nil {
		cr.onReload()
	}
	return true
}
