package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/showreel/internal/index"
	"github.com/MrSnakeDoc/showreel/internal/logger"
	redisstore "github.com/MrSnakeDoc/showreel/internal/store/redis"
)

// RedisSyncer restores state from Redis into the memory index on startup
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads play counters from Redis into the memory index
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing play counters from redis to memory")

	stats, err := rs.store.GetPlayStats(ctx)
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		rs.logger.Info("no play counters found in redis")
		return nil
	}

	rs.index.SetPlays(stats)

	rs.logger.Info("synced play counters from redis",
		logger.Int("count", len(stats)))

	return nil
}

// RestoreCatalog loads the catalog snapshot into the memory index.
// Returns false when Redis holds no snapshot.
func (rs *RedisSyncer) RestoreCatalog(ctx context.Context) (bool, error) {
	snap, err := rs.store.GetCatalog(ctx)
	if err != nil {
		return false, err
	}
	if snap == nil {
		rs.logger.Info("no catalog snapshot found in redis")
		return false, nil
	}

	rs.index.UpdateCatalog(snap.Catalog, "redis:"+snap.Source)

	rs.logger.Warn("serving catalog snapshot from redis",
		logger.String("source", snap.Source),
		logger.Time("saved_at", snap.SavedAt),
		logger.Int("entries", snap.Catalog.EntryCount()))

	return true, nil
}
