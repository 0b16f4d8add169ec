package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
	"github.com/MrSnakeDoc/showreel/internal/render"
)

type collageJSON struct {
	URL  string `json:"url"`
	Alt  string `json:"alt"`
	Side string `json:"side"`
}

type profileJSON struct {
	SiteTitle string        `json:"site_title"`
	Name      string        `json:"name"`
	Role      string        `json:"role"`
	Owner     string        `json:"owner"`
	CTA       string        `json:"cta"`
	Collage   []collageJSON `json:"collage"`
}

type videoJSON struct {
	Title     string `json:"title"`
	URL       string `json:"url,omitempty"`
	ID        string `json:"id"`
	Thumbnail string `json:"thumbnail"`
	Embed     string `json:"embed"`
	Play      string `json:"play"`
	Plays     int64  `json:"plays"`
}

type imageJSON struct {
	Title string `json:"title"`
	File  string `json:"file"`
	URL   string `json:"url"`
}

type categoryJSON struct {
	Slug   string      `json:"slug"`
	Title  string      `json:"title"`
	Nav    string      `json:"nav"`
	Kind   domain.Kind `json:"kind"`
	Count  int         `json:"count"`
	Videos []videoJSON `json:"videos,omitempty"`
	Images []imageJSON `json:"images,omitempty"`
}

type catalogJSON struct {
	Source     string         `json:"source"`
	LastReload string         `json:"last_reload"`
	Profile    profileJSON    `json:"profile"`
	Categories []categoryJSON `json:"categories"`
}

// Catalog returns the whole catalog with derived thumbnail, embed and asset URLs.
func Catalog(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.MemoryIndex.Catalog()
		if cat == nil {
			writeError(w, http.StatusServiceUnavailable, "catalog not loaded yet")
			return
		}

		resp := catalogJSON{
			Source:     d.MemoryIndex.Source(),
			LastReload: d.MemoryIndex.GetLastReload().UTC().Format(time.RFC3339),
			Profile:    toProfileJSON(cat.Profile),
			Categories: make([]categoryJSON, 0, len(cat.Categories)),
		}
		for _, c := range cat.Categories {
			resp.Categories = append(resp.Categories, toCategoryJSON(c, d.MemoryIndex.Plays))
		}

		w.Header().Set("Cache-Control", "public, max-age=60")
		writeJSON(w, http.StatusOK, resp)
	}
}

// Category returns one category by slug, 404 when unknown.
func Category(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.MemoryIndex.Catalog()
		if cat == nil {
			writeError(w, http.StatusServiceUnavailable, "catalog not loaded yet")
			return
		}

		c, err := cat.Category(chi.URLParam(r, "slug"))
		if errors.Is(err, domain.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=60")
		writeJSON(w, http.StatusOK, toCategoryJSON(c, d.MemoryIndex.Plays))
	}
}

func toProfileJSON(p domain.Profile) profileJSON {
	out := profileJSON{
		SiteTitle: p.SiteTitle,
		Name:      p.Name,
		Role:      p.Role,
		Owner:     p.Owner,
		CTA:       p.CTALabel,
		Collage:   make([]collageJSON, 0, len(p.Collage)),
	}
	for _, img := range p.Collage {
		out.Collage = append(out.Collage, collageJSON{URL: img.URL(), Alt: img.Alt, Side: img.Side})
	}
	return out
}

func toCategoryJSON(c *domain.Category, plays func(string) int64) categoryJSON {
	out := categoryJSON{
		Slug:  c.Slug,
		Title: c.Title,
		Nav:   c.NavLabel,
		Kind:  c.Kind,
		Count: c.Len(),
	}
	for _, v := range c.Videos {
		out.Videos = append(out.Videos, videoJSON{
			Title:     v.Title,
			URL:       v.URL,
			ID:        v.ExternalID,
			Thumbnail: v.ThumbnailURL(),
			Embed:     v.EmbedURL(),
			Play:      render.PlayHref(v.ExternalID, c.Slug),
			Plays:     plays(v.ExternalID),
		})
	}
	for _, img := range c.Images {
		out.Images = append(out.Images, imageJSON{
			Title: img.Title,
			File:  img.Filename,
			URL:   img.AssetURL(),
		})
	}
	return out
}
