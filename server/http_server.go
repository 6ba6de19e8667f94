package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"callcenter-forecast/server/middleware"
)

const shutdownTimeout = 5 * time.Second

type ForecastHttpServer struct {
	router         *Router
	muxRouter      *mux.Router
	port           string
	allowedOrigins []string
}

func NewForecastHttpServer(router *Router, muxRouter *mux.Router, port string, allowedOrigins []string) *ForecastHttpServer {
	return &ForecastHttpServer{
		router:         router,
		muxRouter:      muxRouter,
		port:           port,
		allowedOrigins: allowedOrigins,
	}
}

// Handler registers the routes and wraps them with request logging and CORS.
func (s *ForecastHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()

	var handler http.Handler = s.muxRouter
	handler = middleware.Logger(log.With().Str("component", "http").Logger())(handler)
	handler = middleware.CORS(s.allowedOrigins)(handler)
	return handler
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *ForecastHttpServer) Start() error {
	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}
	log.Info().Msg("Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("Server exiting")
	return nil
}
