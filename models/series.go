package models

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Point is one day of a daily series.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is a daily series ordered by date.
type Series []Point

// DateStrings returns the dates formatted with DateLayout.
func (s Series) DateStrings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Date.Format(DateLayout)
	}
	return out
}

// Values returns the values of the series.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Between returns the points with from <= date <= to.
func (s Series) Between(from, to time.Time) Series {
	out := Series{}
	for _, p := range s {
		if p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Last returns the final point. ok is false for an empty series.
func (s Series) Last() (p Point, ok bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}
