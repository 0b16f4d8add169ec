package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	EntriesLoaded *int   `json:"entries_loaded,omitempty"`
	Categories    *int   `json:"categories,omitempty"`
	Items         *int   `json:"items,omitempty"`
	Source        string `json:"source,omitempty"`
	LastReload    string `json:"last_reload,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Impact        string `json:"impact,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports the state of every component behind the pages.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"catalog":    catalogStatus(d),
			"about":      {OK: d.MemoryIndex.About() != nil},
			"redis":      checkRedis(r.Context(), d),
			"page_cache": pageCacheStatus(d),
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		})
	}
}

func catalogStatus(d deps.Deps) componentStatus {
	cat := d.MemoryIndex.Catalog()
	if cat == nil {
		return componentStatus{OK: false, Error: "not loaded"}
	}

	entries := cat.EntryCount()
	categories := len(cat.Categories)
	lastReload := "never"
	if t := d.MemoryIndex.GetLastReload(); !t.IsZero() {
		lastReload = t.Format("2006-01-02 15:04:05")
	}

	return componentStatus{
		OK:            entries > 0,
		EntriesLoaded: &entries,
		Categories:    &categories,
		Source:        d.MemoryIndex.Source(),
		LastReload:    lastReload,
	}
}

func pageCacheStatus(d deps.Deps) componentStatus {
	if d.Pages == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}
	items := d.Pages.ItemCount()
	return componentStatus{OK: true, Mode: "enabled", Items: &items}
}

// determineServingMode: no catalog is critical, an unreachable Redis is degraded.
func determineServingMode(components map[string]componentStatus) string {
	if c, ok := components["catalog"]; ok && !c.OK {
		return "critical"
	}
	if r, ok := components["redis"]; ok && !r.OK {
		return "degraded"
	}
	return "optimal"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "play-counters-in-memory-only",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "play-counters-not-persisted",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "play-counters-persisted",
	}
}
