package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
	"github.com/MrSnakeDoc/showreel/internal/httpserver/handlers"
)

func init() { Register(registerAssets) }

func registerAssets(r chi.Router, d deps.Deps) {
	r.Get("/static/*", handlers.Static())

	if d.AssetsDir == "" {
		d.Logger.Warn("assets directory not configured, thumbnails and collage images are not served")
		return
	}
	assets := handlers.Assets(d.AssetsDir)
	r.Get(domain.AssetPrefix+"*", assets)
	r.Get(domain.CollagePrefix+"*", assets)
}
