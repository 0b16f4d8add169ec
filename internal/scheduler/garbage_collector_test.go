package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	"github.com/MrSnakeDoc/showreel/internal/index"
	"github.com/MrSnakeDoc/showreel/internal/logger"
)

func TestGarbageCollector_Collect(t *testing.T) {
	log := logger.New("error", false)
	memIndex := index.NewMemoryIndex()

	memIndex.UpdateCatalog(&domain.Catalog{
		Categories: []*domain.Category{
			{Slug: "ads", Title: "Ads", Kind: domain.KindVideo, Videos: []domain.Video{
				{Title: "Kept", ExternalID: "kept-video"},
			}},
		},
	}, "test")

	memIndex.SetPlays(map[string]int64{
		"kept-video":    5,
		"removed-video": 3,
		"another-gone":  1,
	})

	gc := NewGarbageCollector(
		nil, // no Redis store for this test
		memIndex,
		log,
		24*time.Hour,
	)

	deleted, err := gc.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Collect() deleted %d counters, want 2", deleted)
	}

	stats := memIndex.PlayStats()
	if len(stats) != 1 {
		t.Errorf("Expected 1 counter after GC, got %d", len(stats))
	}
	if stats["kept-video"] != 5 {
		t.Errorf("Counter of a catalog video was changed: %v", stats)
	}
}

func TestGarbageCollector_CollectWithoutCatalog(t *testing.T) {
	memIndex := index.NewMemoryIndex()
	memIndex.SetPlays(map[string]int64{"orphan": 1})

	gc := NewGarbageCollector(nil, memIndex, logger.NewNop(), time.Hour)

	deleted, err := gc.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Collect() without catalog deleted %d counters, want 0", deleted)
	}
	if memIndex.Plays("orphan") != 1 {
		t.Error("counters must be kept until a catalog is loaded")
	}
}
