package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"callcenter-forecast/config"
	"callcenter-forecast/di"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("port", cfg.Port).
		Str("csv_path", cfg.CSVPath).
		Str("train_until", cfg.TrainCutoff.Format(time.DateOnly)).
		Str("valid_from", cfg.ValidationStart.Format(time.DateOnly)).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("starting call-center forecast server")

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize dependencies")
	}
	defer container.Close()

	if err := container.ForecastHttpServer.Start(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		container.Close()
		os.Exit(1)
	}
}
