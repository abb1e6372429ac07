// Package router sets up all HTTP routes and middleware chains for the
// GameGrove site.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gamegrove/internal/handlers"
	"gamegrove/internal/middleware"
	"gamegrove/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Crawler surfaces.
	r.Get("/robots.txt", public.Robots)
	r.Get("/sitemap.xml", public.Sitemap)

	// Static assets (compiled stylesheet, game thumbnails).
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
	}

	// Public pages.
	r.Get("/", public.Home)
	r.Get("/games/{slug}", public.Game)
	r.Get("/category/{slug}", public.Category)

	// Everything else is the one user-visible failure: a rendered 404.
	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
