package pipeline

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"callcenter-forecast/models"
)

// MonthWindow returns the comparison range from start through the last day of its month.
func MonthWindow(start time.Time) (from, to time.Time) {
	firstOfNext := models.Date(start.Year(), start.Month(), 1).AddDate(0, 1, 0)
	return start, firstOfNext.AddDate(0, 0, -1)
}

// Score compares actual and pred over [from, to]. Both series must hold exactly the same
// dates inside the window.
func Score(actual, pred models.Series, from, to time.Time) (models.Validation, error) {
	r := actual.Between(from, to)
	p := pred.Between(from, to)
	if len(r) == 0 || len(r) != len(p) {
		return models.Validation{}, fmt.Errorf("%w: %d real and %d predicted days between %s and %s",
			ErrMisalignedWindow, len(r), len(p), from.Format(models.DateLayout), to.Format(models.DateLayout))
	}
	for i := range r {
		if !r[i].Date.Equal(p[i].Date) {
			return models.Validation{}, fmt.Errorf("%w: real %s against predicted %s", ErrMisalignedWindow,
				r[i].Date.Format(models.DateLayout), p[i].Date.Format(models.DateLayout))
		}
	}

	rv, pv := r.Values(), p.Values()
	n := float64(len(rv))
	return models.Validation{
		Dates: r.DateStrings(),
		Real:  rv,
		Pred:  pv,
		RMSE:  floats.Distance(rv, pv, 2) / math.Sqrt(n),
		MAE:   floats.Distance(rv, pv, 1) / n,
		R2:    rSquared(pv, rv),
	}, nil
}

// rSquared is the coefficient of determination. A constant truth scores 1 when matched
// exactly and 0 otherwise, as scikit-learn's r2_score does with force_finite.
func rSquared(estimates, values []float64) float64 {
	mean := stat.Mean(values, nil)
	var ssTot, ssRes float64
	for i, v := range values {
		ssTot += (v - mean) * (v - mean)
		ssRes += (v - estimates[i]) * (v - estimates[i])
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return stat.RSquaredFrom(estimates, values, nil)
}
