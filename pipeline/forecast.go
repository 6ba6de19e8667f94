package pipeline

import (
	"fmt"
	"math"
	"time"

	"callcenter-forecast/models"
	"callcenter-forecast/sarima"
)

// HorizonStart is the first forecast day for a training cutoff.
func HorizonStart(cutoff time.Time) time.Time {
	return cutoff.AddDate(0, 0, 1)
}

// Forecast fits a model of the given order on train and returns one prediction per day
// from horizonStart through horizonEnd.
//
// The model needs a contiguous daily index, so days absent from train are fitted as zero
// volume rather than skipped. A center closed on weekends is therefore modelled as a
// weekly pattern with zero-volume days, not as a shorter series.
func Forecast(train models.Series, order sarima.Order, horizonStart, horizonEnd time.Time) (models.Series, *sarima.Model, error) {
	if horizonEnd.Before(horizonStart) {
		return nil, nil, fmt.Errorf("%w: %s is after %s", ErrEmptyHorizon,
			horizonStart.Format(models.DateLayout), horizonEnd.Format(models.DateLayout))
	}
	filled := FillDailyGaps(train)
	last, ok := filled.Last()
	if !ok {
		return nil, nil, ErrInsufficientData
	}
	if !last.Date.Before(horizonStart) {
		return nil, nil, fmt.Errorf("training data ends %s, not before the horizon start %s",
			last.Date.Format(models.DateLayout), horizonStart.Format(models.DateLayout))
	}

	model := sarima.New(order)
	if err := model.Fit(filled.Values()); err != nil {
		return nil, nil, fmt.Errorf("fit %s: %w", order, err)
	}

	steps := daysBetween(last.Date, horizonEnd)
	preds, err := model.Predict(steps)
	if err != nil {
		return nil, nil, fmt.Errorf("predict %d steps: %w", steps, err)
	}

	out := make(models.Series, 0, steps)
	for h, v := range preds {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("%w: forecast step %d is not finite", sarima.ErrNonConvergence, h+1)
		}
		date := last.Date.AddDate(0, 0, h+1)
		if date.Before(horizonStart) {
			continue
		}
		out = append(out, models.Point{Date: date, Value: v})
	}
	return out, model, nil
}

// FillDailyGaps reindexes series onto consecutive days, inserting zero for missing days.
func FillDailyGaps(series models.Series) models.Series {
	if len(series) == 0 {
		return models.Series{}
	}
	first := series[0].Date
	n := daysBetween(first, series[len(series)-1].Date) + 1
	out := make(models.Series, n)
	for i := range out {
		out[i] = models.Point{Date: first.AddDate(0, 0, i)}
	}
	for _, p := range series {
		out[daysBetween(first, p.Date)].Value = p.Value
	}
	return out
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Round(time.Hour).Hours() / 24)
}
