package models

import "time"

// DailyAggregate holds the summed interval counts for one calendar day.
type DailyAggregate struct {
	Date         time.Time
	Answered     float64
	Abandoned    float64
	SLACompliant float64

	// AbandonRate is abandoned / (answered + abandoned) * 100.
	AbandonRate NullFloat
	// SLARate is slaCompliant / answered * 100.
	SLARate NullFloat
}
