package models

import "time"

// Input CSV columns.
const (
	ColumnIntervalStart = "inicio_del_intervalo"
	ColumnAnswered      = "contestadas"
	ColumnAbandoned     = "abandonadas"
	ColumnSLACompliant  = "cumplen_el_sla"
)

// DefaultIntervalTime is used when an interval start carries no time portion.
const DefaultIntervalTime = "00:00"

// RawRecord is one interval row as read from the CSV. Every field is kept as text;
// numeric coercion happens during aggregation.
type RawRecord struct {
	IntervalStart string
	Answered      string
	Abandoned     string
	SLACompliant  string
}

// CleanRecord is a RawRecord with its interval start split into a calendar date
// and a time of day. HasDate is false when the date could not be parsed.
type CleanRecord struct {
	Date         time.Time
	HasDate      bool
	Time         string
	Answered     string
	Abandoned    string
	SLACompliant string
}
