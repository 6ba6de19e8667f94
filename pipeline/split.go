package pipeline

import (
	"fmt"
	"time"

	"callcenter-forecast/models"
)

// Split partitions series into the days up to and including cutoff and the days
// from validFrom onwards.
func Split(series models.Series, cutoff, validFrom time.Time) (train, valid models.Series, err error) {
	train = models.Series{}
	valid = models.Series{}
	for _, p := range series {
		if !p.Date.After(cutoff) {
			train = append(train, p)
		}
		if !p.Date.Before(validFrom) {
			valid = append(valid, p)
		}
	}
	if len(train) == 0 || len(valid) == 0 {
		return nil, nil, fmt.Errorf("%w: %d training days up to %s, %d validation days from %s",
			ErrInsufficientData, len(train), cutoff.Format(models.DateLayout),
			len(valid), validFrom.Format(models.DateLayout))
	}
	return train, valid, nil
}
