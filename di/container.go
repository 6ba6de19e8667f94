package di

import (
	"context"
	"fmt"
	"net/http"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"callcenter-forecast/config"
	"callcenter-forecast/dao"
	"callcenter-forecast/dao/redis"
	"callcenter-forecast/db"
	"callcenter-forecast/metrics"
	"callcenter-forecast/server"
	"callcenter-forecast/server/handlers"
	services "callcenter-forecast/service"
)

const redisConnectTimeout = 5 * time.Second

// Container holds all application dependencies.
type Container struct {
	RedisClient        db.RedisClient // nil when the run log is disabled
	RunDao             dao.RunDAO
	AnalysisService    *services.AnalysisService
	AnalysisHandler    *handlers.AnalysisHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	ForecastHttpServer *server.ForecastHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	// Run log: Redis when configured, otherwise a no-op store
	var redisClient db.RedisClient
	var runDao dao.RunDAO = dao.NewNoopRunDAO()
	if cfg.RunLogEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
		defer cancel()

		client, err := db.NewGoRedisClient(ctx, goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize run log: %w", err)
		}
		redisClient = client
		runDao = redis.NewRedisRunDAO(client, cfg.RunLogSize)
	} else {
		log.Info().Msg("REDIS_ADDR not set, run log disabled")
	}

	analysisService := services.NewAnalysisService(services.AnalysisOptions{
		CSVPath:         cfg.CSVPath,
		TrainCutoff:     cfg.TrainCutoff,
		ValidationStart: cfg.ValidationStart,
		Order:           config.ModelOrder,
	}, runDao)

	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// Static dashboard, only when a build exists
	var staticHandler http.Handler
	spa := handlers.NewSPAHandler(cfg.FrontendDist)
	if spa.Available() {
		staticHandler = spa
		log.Info().Str("dist", cfg.FrontendDist).Msg("Serving front-end build")
	} else {
		log.Warn().Str("dist", cfg.FrontendDist).Msg("Front-end build not found, static files disabled")
	}

	muxRouter := mux.NewRouter()
	router := server.NewRouter(analysisHandler, metrics.Handler(), staticHandler, muxRouter)
	httpServer := server.NewForecastHttpServer(router, muxRouter, cfg.Port, cfg.AllowedOrigins)

	return &Container{
		RedisClient:        redisClient,
		RunDao:             runDao,
		AnalysisService:    analysisService,
		AnalysisHandler:    analysisHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		ForecastHttpServer: httpServer,
	}, nil
}

// Close releases external connections.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
