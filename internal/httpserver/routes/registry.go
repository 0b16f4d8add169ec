package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/showreel/internal/httpserver/deps"
)

// Registrar mounts a group of routes on the router.
type Registrar func(r chi.Router, d deps.Deps)

var registry []Registrar

// Register adds a registrar; called from init() in each route file.
func Register(reg Registrar) {
	registry = append(registry, reg)
}

// RegisterAll mounts every registered group, each in its own chi group
// so middlewares added by one registrar never leak into another.
// Called once from httpserver.NewRouter().
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, reg := range registry {
		r.Group(func(g chi.Router) {
			reg(g, d)
		})
	}
}
