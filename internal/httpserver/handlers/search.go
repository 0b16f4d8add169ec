package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
	"github.com/MrSnakeDoc/showreel/internal/logger"
	"github.com/MrSnakeDoc/showreel/internal/render"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type searchResult struct {
	Category string      `json:"category"`
	Kind     domain.Kind `json:"kind"`
	Title    string      `json:"title"`
	ID       string      `json:"id,omitempty"`
	File     string      `json:"file,omitempty"`
	Image    string      `json:"image"`
	Href     string      `json:"href"`
	Score    float64     `json:"score"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Total   int            `json:"total"`
	Results []searchResult `json:"results"`
}

// Search ranks catalog entries against ?q=, most played videos first on ties.
// ?limit= caps the result list (default 10, max 50).
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("q"))
		if raw == "" {
			writeError(w, http.StatusBadRequest, "missing query parameter q")
			return
		}

		limit := defaultSearchLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = min(n, maxSearchLimit)
		}

		cat := d.MemoryIndex.Catalog()
		if cat == nil {
			writeError(w, http.StatusServiceUnavailable, "catalog not loaded yet")
			return
		}

		query := domain.ParseQuery(raw)
		candidates := domain.RankCandidates(query, cat.Entries(), d.MemoryIndex.Plays)

		d.Logger.Debug("search request",
			logger.String("query", query.Raw),
			logger.Int("matches", len(candidates)))

		resp := searchResponse{
			Query:   query.Raw,
			Total:   len(candidates),
			Results: make([]searchResult, 0, min(len(candidates), limit)),
		}
		for i, c := range candidates {
			if i == limit {
				break
			}
			resp.Results = append(resp.Results, toSearchResult(c))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func toSearchResult(c *domain.Candidate) searchResult {
	e := c.Entry
	res := searchResult{
		Category: e.Category,
		Kind:     e.Kind,
		Title:    e.Title,
		ID:       e.ExternalID,
		File:     e.Filename,
		Score:    c.TotalScore,
	}
	if e.Kind == domain.KindVideo {
		res.Image = domain.ThumbnailURL(e.ExternalID)
		res.Href = render.PlayHref(e.ExternalID, e.Category)
	} else {
		res.Image = domain.Image{Title: e.Title, Filename: e.Filename}.AssetURL()
		res.Href = res.Image
	}
	return res
}
