package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready   bool   `json:"ready"`
	Catalog bool   `json:"catalog"`
	Redis   string `json:"redis"`
}

// Readyz is the readiness probe: ready once a catalog is loaded.
// Redis is optional and reported without affecting readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{
			Catalog: d.MemoryIndex.Catalog() != nil,
			Redis:   checkRedis(r.Context(), d).Mode,
		}
		resp.Ready = resp.Catalog

		w.Header().Set("Cache-Control", "no-store")
		if !resp.Ready {
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
