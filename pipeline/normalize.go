package pipeline

import (
	"strings"
	"time"

	"callcenter-forecast/models"
)

// dateLayouts are tried in order. Day comes before month except for year-first ISO forms.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2006-1-2",
	"2006/1/2",
	"2/1/06",
	"2-1-06",
}

// NormalizeDates splits every interval start into a calendar date and a time of day.
// Rows whose date cannot be parsed are kept with HasDate=false.
func NormalizeDates(records []models.RawRecord) []models.CleanRecord {
	out := make([]models.CleanRecord, len(records))
	for i, r := range records {
		datePart, timePart := splitIntervalStart(r.IntervalStart)
		date, ok := ParseDayFirst(datePart)
		if timePart == "" {
			timePart = models.DefaultIntervalTime
		}
		out[i] = models.CleanRecord{
			Date:         date,
			HasDate:      ok,
			Time:         timePart,
			Answered:     r.Answered,
			Abandoned:    r.Abandoned,
			SLACompliant: r.SLACompliant,
		}
	}
	return out
}

// ParseDayFirst parses a calendar date written day-first, returning midnight UTC.
func ParseDayFirst(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.Date(t.Year(), t.Month(), t.Day()), true
		}
	}
	return time.Time{}, false
}

func splitIntervalStart(s string) (datePart, timePart string) {
	s = strings.TrimSpace(s)
	datePart, timePart, _ = strings.Cut(s, " ")
	return datePart, strings.TrimSpace(timePart)
}
