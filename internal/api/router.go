// filepath: internal/api/router.go
package api

import (
	"moviecatalog/internal/api/handlers"
	"moviecatalog/internal/config"
	"moviecatalog/internal/metrics"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, m *metrics.Metrics, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(m))
	r.Use(limitBody(cfg.MaxUploadBytes))

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.Handle("/metrics", m.Handler()).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/info", h.GetInfo).Methods("GET")
	apiRouter.HandleFunc("/home", h.GetHome).Methods("GET")
	apiRouter.HandleFunc("/flashes", h.GetFlashes).Methods("GET")

	addMovieRoutes(apiRouter, h)
	addThemeRoutes(apiRouter, h)
	addDriveRoutes(apiRouter, h)

	return r
}

// addMovieRoutes configures routes related to movie management.
func addMovieRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/movies", h.ListMovies).Methods("GET")
	r.HandleFunc("/movies", h.CreateMovie).Methods("POST")
	r.HandleFunc("/movies/by-title", h.ListMoviesByTitle).Methods("GET")
	r.HandleFunc("/movies/{id:[0-9]+}", h.GetMovie).Methods("GET")
	r.HandleFunc("/movies/{id:[0-9]+}", h.UpdateMovie).Methods("PUT", "POST")
	r.HandleFunc("/movies/{id:[0-9]+}", h.DeleteMovie).Methods("DELETE")
	r.HandleFunc("/movies/{id:[0-9]+}/watched", h.ToggleWatched).Methods("POST")
}

// addThemeRoutes configures routes related to themes.
func addThemeRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/themes", h.ListThemes).Methods("GET")
	r.HandleFunc("/themes", h.CreateTheme).Methods("POST")
	r.HandleFunc("/themes/{id:[0-9]+}", h.DeleteTheme).Methods("DELETE")
	r.HandleFunc("/themes/{id:[0-9]+}/movies", h.MoviesByTheme).Methods("GET")
}

// addDriveRoutes configures the filesystem scan routes.
func addDriveRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/drives", h.ListDrives).Methods("GET")
	r.HandleFunc("/drives/history", h.DriveHistory).Methods("GET")
	r.HandleFunc("/scan", h.ScanPath).Methods("GET")
	r.HandleFunc("/scan/{path:.*}", h.ScanPath).Methods("GET")
}
