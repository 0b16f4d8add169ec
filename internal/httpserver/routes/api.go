package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/mw"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(api chi.Router) {
		api.Use(mw.CORS())
		api.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:      d.RateLimitBurst,
			PerMinute:  d.RateLimitPerMin,
			MaxEntries: 10000,
			TrustProxy: d.TrustProxy,
		}))

		api.Get("/catalog", handlers.Catalog(d))
		api.Get("/categories/{slug}", handlers.Category(d))
		api.Get("/search", handlers.Search(d))
	})
}
