package models

import "time"

// RunSummary is the run-log entry written after a successful analysis.
type RunSummary struct {
	RunID           string        `json:"run_id"`
	StartedAt       time.Time     `json:"started_at"`
	Duration        time.Duration `json:"duration_ns"`
	IntervalRows    int           `json:"interval_rows"`
	Days            int           `json:"days"`
	TrainingDays    int           `json:"training_days"`
	ValidationDays  int           `json:"validation_days"`
	ForecastDays    int           `json:"forecast_days"`
	RMSE            float64       `json:"rmse"`
	MAE             float64       `json:"mae"`
	R2              float64       `json:"r2"`
	TrainUntil      string        `json:"train_hasta"`
	ValidationStart string        `json:"valid_desde"`
}
