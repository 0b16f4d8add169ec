package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/index"
	"github.com/MrSnakeDoc/showreel/internal/logger"
	redisstore "github.com/MrSnakeDoc/showreel/internal/store/redis"
)

// GarbageCollector drops play counters of videos no longer in the catalog
type GarbageCollector struct {
	store    *redisstore.Store
	index    *index.MemoryIndex
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewGarbageCollector creates a new garbage collector. store may be nil.
func NewGarbageCollector(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
) *GarbageCollector {
	return &GarbageCollector{
		store:    store,
		index:    idx,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic garbage collection process
func (gc *GarbageCollector) Start(ctx context.Context) error {
	// Run immediately on start
	if _, err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect removes counters whose video is absent from the current catalog
// and returns how many were dropped from memory.
func (gc *GarbageCollector) Collect(ctx context.Context) (int, error) {
	cat := gc.index.Catalog()
	if cat == nil {
		gc.logger.Debug("no catalog loaded, skipping garbage collection")
		return 0, nil
	}
	live := cat.VideoIDs()

	var stale []string
	for id := range gc.index.PlayStats() {
		if _, ok := live[id]; !ok {
			stale = append(stale, id)
		}
	}
	gc.index.DeletePlays(stale...)

	// Redis may hold counters this process never saw
	storeDeleted := 0
	if gc.store != nil {
		stats, err := gc.store.GetPlayStats(ctx)
		if err != nil {
			return len(stale), err
		}
		var staleStored []string
		for id := range stats {
			if _, ok := live[id]; !ok {
				staleStored = append(staleStored, id)
			}
		}
		if err := gc.store.DeletePlays(ctx, staleStored...); err != nil {
			return len(stale), err
		}
		storeDeleted = len(staleStored)
	}

	if len(stale) > 0 || storeDeleted > 0 {
		gc.logger.Info("garbage collection completed",
			logger.Int("memory_deleted", len(stale)),
			logger.Int("redis_deleted", storeDeleted))
	} else {
		gc.logger.Debug("no play counters to garbage collect")
	}

	return len(stale), nil
}
