package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"callcenter-forecast/dao"
	"callcenter-forecast/metrics"
	"callcenter-forecast/models"
	"callcenter-forecast/pipeline"
	"callcenter-forecast/sarima"
	"callcenter-forecast/util"
)

// AnalysisOptions fixes the data source, split dates and model of every analysis.
type AnalysisOptions struct {
	CSVPath         string
	TrainCutoff     time.Time
	ValidationStart time.Time
	Order           sarima.Order
}

// AnalysisService runs the forecast pipeline over the interval CSV.
type AnalysisService struct {
	opts   AnalysisOptions
	runDao dao.RunDAO
	logger zerolog.Logger
	now    func() time.Time
}

// NewAnalysisService constructs a new AnalysisService recording runs in runDao.
func NewAnalysisService(opts AnalysisOptions, runDao dao.RunDAO) *AnalysisService {
	return &AnalysisService{
		opts:   opts,
		runDao: runDao,
		logger: log.With().Str("component", "AnalysisService").Logger(),
		now:    time.Now,
	}
}

// Analyze re-reads the source file and runs the whole pipeline.
// Failures the dashboard should display are returned as *UserError.
func (s *AnalysisService) Analyze(ctx context.Context) (*models.AnalysisResponse, error) {
	started := s.now()
	resp, summary, err := s.analyze(ctx)

	var userErr *UserError
	switch {
	case errors.As(err, &userErr):
		metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeUserError).Inc()
		s.logger.Warn().Err(userErr.Err).Msg(userErr.Message)
		return nil, err
	case err != nil:
		metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		s.logger.Error().Err(err).Msg("Analysis failed")
		return nil, err
	}

	metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.ObserveValidation(resp.Validation.RMSE, resp.Validation.MAE, resp.Validation.R2)

	summary.RunID = uuid.NewString()
	summary.StartedAt = started.UTC()
	summary.Duration = s.now().Sub(started)
	s.recordRun(ctx, summary)

	s.logger.Info().
		Str("run_id", summary.RunID).
		Int("days", summary.Days).
		Float64("rmse", summary.RMSE).
		Float64("mae", summary.MAE).
		Float64("r2", summary.R2).
		Dur("duration", summary.Duration).
		Msg("Analysis completed")
	return resp, nil
}

func (s *AnalysisService) analyze(ctx context.Context) (*models.AnalysisResponse, models.RunSummary, error) {
	var summary models.RunSummary
	opts := s.opts

	stage := time.Now()
	if _, err := os.Stat(opts.CSVPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, summary, sourceNotFound(opts.CSVPath, err)
		}
		return nil, summary, fmt.Errorf("stat %s: %w", opts.CSVPath, err)
	}
	raw, err := util.ReadIntervalRecords(opts.CSVPath)
	if err != nil {
		return nil, summary, err
	}
	observeStage("load", stage)
	metrics.IntervalRowsRead.Set(float64(len(raw)))
	summary.IntervalRows = len(raw)

	stage = time.Now()
	daily := pipeline.AggregateDaily(pipeline.NormalizeDates(raw))
	series := pipeline.DailySeries(daily)
	observeStage("aggregate", stage)
	summary.Days = len(series)

	train, valid, err := pipeline.Split(series, opts.TrainCutoff, opts.ValidationStart)
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientData) {
			return nil, summary, insufficientData(err)
		}
		return nil, summary, err
	}
	summary.TrainingDays = len(train)
	summary.ValidationDays = len(valid)
	s.logger.Debug().
		Int("interval_rows", len(raw)).
		Int("train_days", len(train)).
		Int("valid_days", len(valid)).
		Msg("Series split")

	if err := ctx.Err(); err != nil {
		return nil, summary, err
	}

	stage = time.Now()
	lastValid, _ := valid.Last()
	preds, model, err := pipeline.Forecast(train, opts.Order, pipeline.HorizonStart(opts.TrainCutoff), lastValid.Date)
	if err != nil {
		return nil, summary, fmt.Errorf("forecast: %w", err)
	}
	observeStage("forecast", stage)
	summary.ForecastDays = len(preds)
	s.logger.Debug().
		Str("order", opts.Order.String()).
		Floats64("ar", model.ARCoeffs).
		Floats64("ma", model.MACoeffs).
		Floats64("sar", model.SARCoeffs).
		Floats64("sma", model.SMACoeffs).
		Float64("aic", model.AIC).
		Int("evaluations", model.Evaluations).
		Msg("Model fitted")

	stage = time.Now()
	from, to := pipeline.MonthWindow(opts.ValidationStart)
	validation, err := pipeline.Score(valid, preds, from, to)
	if err != nil {
		return nil, summary, fmt.Errorf("score: %w", err)
	}
	stats := pipeline.Summarize(series, daily)
	observeStage("score", stage)
	summary.RMSE, summary.MAE, summary.R2 = validation.RMSE, validation.MAE, validation.R2

	resp := &models.AnalysisResponse{
		Series:      make([]models.SeriesPoint, len(series)),
		Predictions: make([]models.PredictionPoint, len(preds)),
		Validation:  validation,
		Stats:       stats,
		KeyDates: models.KeyDates{
			TrainUntil: opts.TrainCutoff.Format(models.DateLayout),
			ValidFrom:  opts.ValidationStart.Format(models.DateLayout),
		},
	}
	for i, p := range series {
		resp.Series[i] = models.SeriesPoint{Date: p.Date.Format(models.DateLayout), TotalCalls: p.Value}
	}
	for i, p := range preds {
		resp.Predictions[i] = models.PredictionPoint{Date: p.Date.Format(models.DateLayout), Prediction: p.Value}
	}
	summary.TrainUntil = resp.KeyDates.TrainUntil
	summary.ValidationStart = resp.KeyDates.ValidFrom
	return resp, summary, nil
}

// recordRun appends the summary to the run log. Failures never fail the analysis.
func (s *AnalysisService) recordRun(ctx context.Context, summary models.RunSummary) {
	if err := s.runDao.SaveRun(ctx, summary); err != nil {
		metrics.RunLogWriteFailuresTotal.Inc()
		s.logger.Warn().Err(err).Str("run_id", summary.RunID).Msg("Failed to record run")
	}
}

// RecentRuns returns up to limit run summaries, newest first.
func (s *AnalysisService) RecentRuns(ctx context.Context, limit int) ([]models.RunSummary, error) {
	return s.runDao.RecentRuns(ctx, limit)
}

func observeStage(stage string, start time.Time) {
	metrics.StageDurationSeconds.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
