package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"callcenter-forecast/server/middleware"
)

// AnalysisRoutes are the endpoints served by handlers.AnalysisHandler.
type AnalysisRoutes interface {
	GetAnalysis(w http.ResponseWriter, r *http.Request)
	GetAnalysisChart(w http.ResponseWriter, r *http.Request)
	GetRunHistory(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	analysisHandler AnalysisRoutes
	metricsHandler  http.Handler
	staticHandler   http.Handler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes. staticHandler may be nil
// when no front-end build is available.
func NewRouter(
	analysisHandler AnalysisRoutes,
	metricsHandler http.Handler,
	staticHandler http.Handler,
	router *mux.Router) *Router {
	return &Router{
		analysisHandler: analysisHandler,
		metricsHandler:  metricsHandler,
		staticHandler:   staticHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(middleware.Metrics)

	r.router.HandleFunc("/api/analizar", r.analysisHandler.GetAnalysis).Methods(http.MethodGet)
	r.router.HandleFunc("/api/analizar/grafico", r.analysisHandler.GetAnalysisChart).Methods(http.MethodGet)
	// expects ?limit={count(int)}, optional
	r.router.HandleFunc("/api/historial", r.analysisHandler.GetRunHistory).Methods(http.MethodGet)

	r.router.HandleFunc("/health", r.analysisHandler.Health).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// Must stay last: it matches every remaining path.
	if r.staticHandler != nil {
		r.router.PathPrefix("/").Handler(r.staticHandler).Methods(http.MethodGet, http.MethodHead)
	}
}
