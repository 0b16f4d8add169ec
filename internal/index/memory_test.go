package index

import (
	"sync"
	"testing"

	"github.com/MrSnakeDoc/showreel/internal/domain"
)

func testCatalog(ids ...string) *domain.Catalog {
	videos := make([]domain.Video, 0, len(ids))
	for _, id := range ids {
		videos = append(videos, domain.Video{Title: "Video " + id, ExternalID: id})
	}
	return &domain.Catalog{
		Categories: []*domain.Category{
			{Slug: "shortform", Title: "Short-form Edits", Kind: domain.KindVideo, Videos: videos},
			{Slug: "thumbnails", Title: "Thumbnails", Kind: domain.KindImage, Images: []domain.Image{{Title: "One", Filename: "one.jpg"}}},
		},
	}
}

func TestNewMemoryIndex(t *testing.T) {
	index := NewMemoryIndex()
	if index == nil {
		t.Fatal("NewMemoryIndex() returned nil")
	}
	if index.Catalog() != nil {
		t.Error("NewMemoryIndex() should start without catalog")
	}
	if index.Count() != 0 {
		t.Errorf("NewMemoryIndex() Count() = %v, want 0", index.Count())
	}
	if !index.GetLastReload().IsZero() {
		t.Error("NewMemoryIndex() should have zero last reload")
	}
}

func TestUpdateCatalog(t *testing.T) {
	index := NewMemoryIndex()

	index.UpdateCatalog(testCatalog("aaa", "bbb"), "bundled")

	if index.Count() != 3 {
		t.Errorf("UpdateCatalog() Count() = %v, want 3", index.Count())
	}
	if index.Source() != "bundled" {
		t.Errorf("Source() = %q, want bundled", index.Source())
	}
	if !index.HasVideo("aaa") || index.HasVideo("zzz") {
		t.Error("HasVideo() does not reflect the catalog")
	}
	if index.GetLastReload().IsZero() {
		t.Error("UpdateCatalog() should set last reload")
	}
}

func TestUpdateCatalogOverwrites(t *testing.T) {
	index := NewMemoryIndex()

	index.UpdateCatalog(testCatalog("aaa"), "first.yaml")
	index.UpdateCatalog(testCatalog("bbb", "ccc"), "second.yaml")

	if index.HasVideo("aaa") {
		t.Error("UpdateCatalog() should drop ids of the previous catalog")
	}
	if index.Count() != 3 {
		t.Errorf("UpdateCatalog() should overwrite, got Count() = %v want 3", index.Count())
	}
}

func TestIncrementPlays(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateCatalog(testCatalog("aaa"), "bundled")

	if got := index.IncrementPlays("aaa"); got != 1 {
		t.Errorf("IncrementPlays() = %v, want 1", got)
	}
	if got := index.IncrementPlays("aaa"); got != 2 {
		t.Errorf("IncrementPlays() = %v, want 2", got)
	}
	if index.Plays("aaa") != 2 {
		t.Errorf("Plays() = %v, want 2", index.Plays("aaa"))
	}
}

func TestIncrementPlaysNonExistent(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateCatalog(testCatalog("aaa"), "bundled")

	// Increment for a video outside the catalog should not create a counter
	if got := index.IncrementPlays("nonexistent"); got != 0 {
		t.Errorf("IncrementPlays() on non-existent = %v, want 0", got)
	}
	if len(index.PlayStats()) != 0 {
		t.Errorf("PlayStats() = %v, want empty", index.PlayStats())
	}
}

func TestSetPlaysKeepsHighest(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateCatalog(testCatalog("aaa", "bbb"), "bundled")

	index.IncrementPlays("aaa")
	index.IncrementPlays("aaa")
	index.IncrementPlays("aaa")

	index.SetPlays(map[string]int64{"aaa": 1, "bbb": 7})

	if index.Plays("aaa") != 3 {
		t.Errorf("Plays(aaa) = %v, want 3", index.Plays("aaa"))
	}
	if index.Plays("bbb") != 7 {
		t.Errorf("Plays(bbb) = %v, want 7", index.Plays("bbb"))
	}
}

func TestDeletePlays(t *testing.T) {
	index := NewMemoryIndex()
	index.SetPlays(map[string]int64{"aaa": 1, "bbb": 2, "ccc": 3})

	index.DeletePlays("aaa", "ccc")

	stats := index.PlayStats()
	if len(stats) != 1 || stats["bbb"] != 2 {
		t.Errorf("PlayStats() after DeletePlays = %v, want map[bbb:2]", stats)
	}
}

func TestPlayStatsReturnsCopy(t *testing.T) {
	index := NewMemoryIndex()
	index.SetPlays(map[string]int64{"aaa": 1})

	stats := index.PlayStats()
	stats["aaa"] = 99

	if index.Plays("aaa") != 1 {
		t.Error("PlayStats() should return a copy")
	}
}

func TestUpdateAbout(t *testing.T) {
	index := NewMemoryIndex()
	if index.About() != nil {
		t.Fatal("About() should be nil before update")
	}

	index.UpdateAbout(&domain.AboutPage{Title: "About Me"})
	if index.About() == nil || index.About().Title != "About Me" {
		t.Errorf("About() = %+v", index.About())
	}
}

func TestConcurrentAccess(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateCatalog(testCatalog("service1", "service2"), "bundled")

	var wg sync.WaitGroup

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = index.Catalog()
			_ = index.PlayStats()
		}()
	}

	// Concurrent counter increments
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			index.IncrementPlays("service1")
		}()
	}

	// Concurrent reloads
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			index.UpdateCatalog(testCatalog("service1", "service2"), "bundled")
		}()
	}

	wg.Wait()

	if got := index.Plays("service1"); got != 100 {
		t.Errorf("Concurrent IncrementPlays() counter = %v, want 100", got)
	}
}
