package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callcenter-forecast/models"
	"callcenter-forecast/sarima"
)

var weeklyOrder = sarima.Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 7}

func weeklyVolume(i int) float64 {
	profile := []float64{120, 110, 105, 108, 115, 40, 20}
	return 300 + 0.8*float64(i) + profile[i%7]
}

func TestForecastHorizonScenario(t *testing.T) {
	train := dailyRange(models.Date(2025, time.June, 1), models.Date(2025, time.August, 31), weeklyVolume)
	cutoff := models.Date(2025, time.August, 31)
	start := HorizonStart(cutoff)
	end := models.Date(2025, time.October, 31)

	preds, model, err := Forecast(train, weeklyOrder, start, end)
	require.NoError(t, err)
	require.NotNil(t, model)

	require.Len(t, preds, 61)
	assert.Equal(t, "2025-09-01", preds[0].Date.Format(models.DateLayout))
	assert.Equal(t, "2025-10-31", preds[len(preds)-1].Date.Format(models.DateLayout))
	for i := 1; i < len(preds); i++ {
		assert.Equal(t, preds[i-1].Date.AddDate(0, 0, 1), preds[i].Date, "forecast dates must be contiguous")
	}
	// the training signal is exactly representable, so the forecast continues it
	assert.InDelta(t, weeklyVolume(92), preds[0].Value, 1e-6)
	assert.InDelta(t, weeklyVolume(152), preds[60].Value, 1e-6)
}

func TestForecastTrainingEndsBeforeCutoff(t *testing.T) {
	// data stops on Aug 25; forecasting still has to start on Sep 1
	train := dailyRange(models.Date(2025, time.June, 1), models.Date(2025, time.August, 25), weeklyVolume)
	start := HorizonStart(models.Date(2025, time.August, 31))
	end := models.Date(2025, time.September, 10)

	preds, _, err := Forecast(train, weeklyOrder, start, end)
	require.NoError(t, err)
	require.Len(t, preds, 10)
	assert.Equal(t, "2025-09-01", preds[0].Date.Format(models.DateLayout))
	assert.InDelta(t, weeklyVolume(92), preds[0].Value, 1e-6)
}

func TestForecastEmptyHorizon(t *testing.T) {
	train := dailyRange(models.Date(2025, time.June, 1), models.Date(2025, time.August, 31), weeklyVolume)

	_, _, err := Forecast(train, weeklyOrder, models.Date(2025, time.October, 1), models.Date(2025, time.September, 1))
	assert.True(t, errors.Is(err, ErrEmptyHorizon))
}

func TestForecastOneMonthTrainingWindow(t *testing.T) {
	train := dailyRange(models.Date(2025, time.August, 1), models.Date(2025, time.August, 31), weeklyVolume)

	preds, _, err := Forecast(train, weeklyOrder, models.Date(2025, time.September, 1), models.Date(2025, time.October, 31))
	require.NoError(t, err)
	require.Len(t, preds, 61)
	assert.InDelta(t, weeklyVolume(31), preds[0].Value, 1e-6)
}

func TestForecastPropagatesModelFailure(t *testing.T) {
	// one week cannot survive (1-B)(1-B^7)
	train := dailyRange(models.Date(2025, time.August, 25), models.Date(2025, time.August, 31), weeklyVolume)

	_, _, err := Forecast(train, weeklyOrder, models.Date(2025, time.September, 1), models.Date(2025, time.September, 30))
	assert.True(t, errors.Is(err, sarima.ErrInsufficientData), "expected model failure, got %v", err)
}

func TestForecastFitsMissingDaysAsZero(t *testing.T) {
	full := dailyRange(models.Date(2025, time.June, 1), models.Date(2025, time.August, 31), weeklyVolume)
	var train models.Series
	for _, p := range full {
		if p.Date.Weekday() != time.Wednesday {
			train = append(train, p)
		}
	}

	_, model, err := Forecast(train, weeklyOrder, models.Date(2025, time.September, 1), models.Date(2025, time.September, 7))
	require.NoError(t, err)
	assert.Equal(t, len(full), model.NObs, "every calendar day is an observation")
}

func TestFillDailyGaps(t *testing.T) {
	series := models.Series{
		{Date: models.Date(2025, time.June, 1), Value: 4},
		{Date: models.Date(2025, time.June, 4), Value: 7},
	}

	filled := FillDailyGaps(series)
	assert.Equal(t, []float64{4, 0, 0, 7}, filled.Values())
	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"}, filled.DateStrings())
	assert.Empty(t, FillDailyGaps(nil))
}
