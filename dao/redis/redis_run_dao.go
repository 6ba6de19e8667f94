package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"callcenter-forecast/db"
	"callcenter-forecast/models"
)

const RUNS_KEY_V1 = "analysis_runs_v1"

// RedisRunDAO keeps a capped list of run summaries in Redis.
type RedisRunDAO struct {
	client db.RedisClient
	size   int
}

// NewRedisRunDAO initializes a RedisRunDAO keeping at most size runs.
func NewRedisRunDAO(client db.RedisClient, size int) *RedisRunDAO {
	return &RedisRunDAO{client: client, size: size}
}

// SaveRun prepends the summary to the capped run list. The list is the only key written.
func (dao *RedisRunDAO) SaveRun(ctx context.Context, run models.RunSummary) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run %s: %w", run.RunID, err)
	}
	if err := dao.client.PushCapped(ctx, RUNS_KEY_V1, string(data), dao.size); err != nil {
		return fmt.Errorf("failed to append run %s: %w", run.RunID, err)
	}
	log.Debug().Str("component", "RedisRunDAO").Str("run_id", run.RunID).Msg("Run saved")
	return nil
}

// RecentRuns returns up to limit summaries, newest first.
func (dao *RedisRunDAO) RecentRuns(ctx context.Context, limit int) ([]models.RunSummary, error) {
	if limit < 1 {
		return []models.RunSummary{}, nil
	}
	entries, err := dao.client.Range(ctx, RUNS_KEY_V1, 0, limit-1)
	if err != nil {
		return nil, err
	}

	runs := make([]models.RunSummary, 0, len(entries))
	for _, entry := range entries {
		var run models.RunSummary
		if err := json.Unmarshal([]byte(entry), &run); err != nil {
			log.Warn().Str("component", "RedisRunDAO").Err(err).Msg("Skipping malformed run entry")
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}
