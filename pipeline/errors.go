package pipeline

import "errors"

var (
	// ErrInsufficientData means one side of the temporal split is empty.
	ErrInsufficientData = errors.New("insufficient data for the configured split dates")
	// ErrMisalignedWindow means real and predicted values do not cover the same comparison dates.
	ErrMisalignedWindow = errors.New("real and predicted series are not aligned over the comparison window")
	// ErrEmptyHorizon means the forecast horizon contains no day.
	ErrEmptyHorizon = errors.New("forecast horizon is empty")
)
