package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
	"github.com/MrSnakeDoc/showreel/internal/logger"
)

// PageCacheHeader reports whether a rendered page came from the page cache.
const PageCacheHeader = "X-Page-Cache"

// Home renders the portfolio page. The "play" query parameter selects the video
// shown in the modal; unknown or malformed ids render the page with the modal closed.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.MemoryIndex.Catalog()
		if cat == nil {
			d.Logger.Warn("home requested before the catalog was loaded")
			http.Error(w, "catalog not loaded yet", http.StatusServiceUnavailable)
			return
		}

		state := domain.PlaybackFromQuery(cat, r.URL.Query().Get("play"))
		playing, open := state.Current()
		if open && r.Method == http.MethodGet {
			recordPlay(r.Context(), d, playing)
		}

		key := r.URL.Path
		if open {
			key += "?play=" + playing
		}

		body, hit, err := cachedPage(d, key, func() ([]byte, error) {
			return d.Renderer.Home(cat, state)
		})
		if err != nil {
			d.Logger.Error("failed to render home page", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		setCacheHeader(w, hit)
		writeHTML(w, http.StatusOK, body)
	}
}

// About renders the about page in the site shell.
func About(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := d.MemoryIndex.About()
		if page == nil {
			d.Logger.Warn("about requested before the page was loaded")
			http.Error(w, "about page not loaded yet", http.StatusServiceUnavailable)
			return
		}

		cat := d.MemoryIndex.Catalog()
		body, hit, err := cachedPage(d, r.URL.Path, func() ([]byte, error) {
			return d.Renderer.About(cat, page)
		})
		if err != nil {
			d.Logger.Error("failed to render about page", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		setCacheHeader(w, hit)
		writeHTML(w, http.StatusOK, body)
	}
}

// NotFound renders the 404 page in the site shell. Not cached: paths are unbounded.
func NotFound(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := d.Renderer.NotFound(d.MemoryIndex.Catalog(), r.URL.Path)
		if err != nil {
			d.Logger.Error("failed to render not found page", logger.Error(err))
			http.NotFound(w, r)
			return
		}
		writeHTML(w, http.StatusNotFound, body)
	}
}

// recordPlay counts a modal opening in memory, then in Redis (best effort).
func recordPlay(ctx context.Context, d deps.Deps, id string) {
	n := d.MemoryIndex.IncrementPlays(id)
	d.Logger.Debug("video opened", logger.String("id", id), logger.Int64("plays", n))

	if d.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if _, err := d.Store.IncrementPlays(ctx, id); err != nil {
		d.Logger.Debug("failed to persist play counter",
			logger.String("id", id),
			logger.Error(err))
	}
}

func cachedPage(d deps.Deps, key string, build func() ([]byte, error)) ([]byte, bool, error) {
	if d.Pages != nil {
		if v, ok := d.Pages.Get(key); ok {
			if body, ok := v.([]byte); ok {
				return body, true, nil
			}
		}
	}

	body, err := build()
	if err != nil {
		return nil, false, err
	}

	if d.Pages != nil {
		d.Pages.SetDefault(key, body)
	}
	return body, false, nil
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(PageCacheHeader, "hit")
		return
	}
	w.Header().Set(PageCacheHeader, "miss")
}
