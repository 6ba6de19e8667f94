package pipeline

import (
	"sort"
	"time"

	"callcenter-forecast/models"
)

// AggregateDaily sums the interval counts of every calendar day and derives the
// abandonment and service-level rates. Rows without a date are skipped.
func AggregateDaily(records []models.CleanRecord) []models.DailyAggregate {
	type totals struct {
		answered, abandoned, sla models.NullFloat
	}
	byDate := make(map[time.Time]*totals)

	for _, r := range records {
		if !r.HasDate {
			continue
		}
		acc, ok := byDate[r.Date]
		if !ok {
			acc = &totals{answered: models.Float(0), abandoned: models.Float(0), sla: models.Float(0)}
			byDate[r.Date] = acc
		}
		acc.answered = acc.answered.Add(models.ParseNullFloat(r.Answered))
		acc.abandoned = acc.abandoned.Add(models.ParseNullFloat(r.Abandoned))
		acc.sla = acc.sla.Add(models.ParseNullFloat(r.SLACompliant))
	}

	out := make([]models.DailyAggregate, 0, len(byDate))
	for date, acc := range byDate {
		offered := acc.answered.Add(acc.abandoned)
		out = append(out, models.DailyAggregate{
			Date:         date,
			Answered:     acc.answered.Value,
			Abandoned:    acc.abandoned.Value,
			SLACompliant: acc.sla.Value,
			AbandonRate:  acc.abandoned.Div(offered).Scale(100),
			SLARate:      acc.sla.Div(acc.answered).Scale(100),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// DailySeries returns the answered-call volume of every aggregated day.
func DailySeries(daily []models.DailyAggregate) models.Series {
	out := make(models.Series, len(daily))
	for i, d := range daily {
		out[i] = models.Point{Date: d.Date, Value: d.Answered}
	}
	return out
}
