package pipeline

import (
	"gonum.org/v1/gonum/stat"

	"callcenter-forecast/models"
)

// outlierSigmas is how many standard deviations from the mean a day must be to count
// as a peak or a valley.
const outlierSigmas = 2

// Summarize computes the mean and sample standard deviation of series, flags peak and
// valley days, and averages the non-null daily rates.
func Summarize(series models.Series, daily []models.DailyAggregate) models.Stats {
	st := models.Stats{
		PeakDays:   []string{},
		ValleyDays: []string{},
	}
	values := series.Values()
	if len(values) > 0 {
		st.Mean = models.Float(stat.Mean(values, nil))
	}
	if len(values) > 1 {
		st.StdDev = models.Float(stat.StdDev(values, nil))
	}

	if st.Mean.Valid && st.StdDev.Valid {
		upper := st.Mean.Value + outlierSigmas*st.StdDev.Value
		lower := st.Mean.Value - outlierSigmas*st.StdDev.Value
		for _, p := range series {
			switch {
			case p.Value > upper:
				st.PeakDays = append(st.PeakDays, p.Date.Format(models.DateLayout))
			case p.Value < lower:
				st.ValleyDays = append(st.ValleyDays, p.Date.Format(models.DateLayout))
			}
		}
	}

	var sla, abandon []float64
	for _, d := range daily {
		if d.SLARate.Valid {
			sla = append(sla, d.SLARate.Value)
		}
		if d.AbandonRate.Valid {
			abandon = append(abandon, d.AbandonRate.Value)
		}
	}
	st.AvgSLARate = meanOrNull(sla)
	st.AvgAbandonRate = meanOrNull(abandon)
	return st
}

func meanOrNull(values []float64) models.NullFloat {
	if len(values) == 0 {
		return models.Null()
	}
	return models.Float(stat.Mean(values, nil))
}
