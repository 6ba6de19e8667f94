package dao

import (
	"context"

	"callcenter-forecast/models"
)

// RunDAO records analysis run summaries.
type RunDAO interface {
	SaveRun(ctx context.Context, run models.RunSummary) error
	// RecentRuns returns up to limit summaries, newest first.
	RecentRuns(ctx context.Context, limit int) ([]models.RunSummary, error)
}

// NoopRunDAO is used when the run log is disabled
type NoopRunDAO struct{}

func NewNoopRunDAO() *NoopRunDAO { return &NoopRunDAO{} }

func (d *NoopRunDAO) SaveRun(_ context.Context, _ models.RunSummary) error { return nil }
func (d *NoopRunDAO) RecentRuns(_ context.Context, _ int) ([]models.RunSummary, error) {
	return []models.RunSummary{}, nil
}
