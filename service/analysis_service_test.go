package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callcenter-forecast/models"
	"callcenter-forecast/pipeline"
	"callcenter-forecast/sarima"
)

var weeklyOrder = sarima.Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 7}

// recordingRunDAO keeps saved runs in memory.
type recordingRunDAO struct {
	runs []models.RunSummary
	err  error
}

func (d *recordingRunDAO) SaveRun(_ context.Context, run models.RunSummary) error {
	if d.err != nil {
		return d.err
	}
	d.runs = append([]models.RunSummary{run}, d.runs...)
	return nil
}

func (d *recordingRunDAO) RecentRuns(_ context.Context, limit int) ([]models.RunSummary, error) {
	return d.runs[:min(limit, len(d.runs))], nil
}

// writeIntervals writes two intervals per day from start through end with a weekly volume profile.
func writeIntervals(t *testing.T, start, end time.Time) string {
	t.Helper()
	profile := []int{40, 35, 30, 32, 38, -60, -115}

	var b strings.Builder
	b.WriteString("inicio_del_intervalo,cola,contestadas,abandonadas,cumplen_el_sla\n")
	for i, d := 0, start; !d.After(end); i, d = i+1, d.AddDate(0, 0, 1) {
		volume := 300 + i + profile[i%7]
		morning := volume / 2
		date := d.Format("02/01/2006")
		fmt.Fprintf(&b, "%s 08:00,general,%d,3,%d\n", date, morning, morning-5)
		fmt.Fprintf(&b, "%s 14:30,general,%d,2,%d\n", date, volume-morning, volume-morning-5)
	}
	b.WriteString("sin fecha,general,999,0,0\n")

	path := filepath.Join(t.TempDir(), "llamadas_callcenter.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func newService(path string, runDao *recordingRunDAO) *AnalysisService {
	return NewAnalysisService(AnalysisOptions{
		CSVPath:         path,
		TrainCutoff:     models.Date(2025, 8, 31),
		ValidationStart: models.Date(2025, 10, 1),
		Order:           weeklyOrder,
	}, runDao)
}

func TestAnalyze_TemporalSplitScenario(t *testing.T) {
	path := writeIntervals(t, models.Date(2025, 6, 1), models.Date(2025, 10, 31))
	runDao := &recordingRunDAO{}

	resp, err := newService(path, runDao).Analyze(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Series, 153)
	assert.Equal(t, "2025-06-01", resp.Series[0].Date)
	assert.Equal(t, "2025-10-31", resp.Series[152].Date)

	require.Len(t, resp.Predictions, 61)
	assert.Equal(t, "2025-09-01", resp.Predictions[0].Date)
	assert.Equal(t, "2025-10-31", resp.Predictions[60].Date)

	require.Len(t, resp.Validation.Dates, 31)
	assert.Equal(t, "2025-10-01", resp.Validation.Dates[0])
	assert.Len(t, resp.Validation.Real, 31)
	assert.Len(t, resp.Validation.Pred, 31)
	// trend plus weekly profile is reproduced by the seasonal differencing
	assert.InDelta(t, 0, resp.Validation.RMSE, 1e-3)
	assert.InDelta(t, 1, resp.Validation.R2, 1e-6)

	assert.Equal(t, models.KeyDates{TrainUntil: "2025-08-31", ValidFrom: "2025-10-01"}, resp.KeyDates)
	assert.True(t, resp.Stats.Mean.Valid)
	assert.True(t, resp.Stats.AvgSLARate.Valid)
	require.True(t, resp.Stats.AvgAbandonRate.Valid)
	assert.Greater(t, resp.Stats.AvgAbandonRate.Value, 0.5)
	assert.Less(t, resp.Stats.AvgAbandonRate.Value, 3.0)

	require.Len(t, runDao.runs, 1)
	run := runDao.runs[0]
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, 307, run.IntervalRows)
	assert.Equal(t, 153, run.Days)
	assert.Equal(t, 92, run.TrainingDays)
	assert.Equal(t, 31, run.ValidationDays)
	assert.Equal(t, 61, run.ForecastDays)
	assert.Equal(t, "2025-08-31", run.TrainUntil)
}

func TestAnalyze_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llamadas_callcenter.csv")

	_, err := newService(path, &recordingRunDAO{}).Analyze(context.Background())

	var userErr *UserError
	require.True(t, errors.As(err, &userErr), "expected UserError, got %v", err)
	assert.Equal(t, "No se encontró el archivo "+path, userErr.Message)
	assert.True(t, errors.Is(err, ErrSourceNotFound))
}

func TestAnalyze_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llamadas_callcenter.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	runDao := &recordingRunDAO{}

	_, err := newService(path, runDao).Analyze(context.Background())

	var userErr *UserError
	require.True(t, errors.As(err, &userErr), "expected UserError, got %v", err)
	assert.Equal(t, msgInsufficientData, userErr.Message)
	assert.True(t, errors.Is(err, pipeline.ErrInsufficientData))
	assert.Empty(t, runDao.runs)
}

func TestAnalyze_NoValidationRecords(t *testing.T) {
	path := writeIntervals(t, models.Date(2025, 6, 1), models.Date(2025, 9, 30))

	_, err := newService(path, &recordingRunDAO{}).Analyze(context.Background())

	var userErr *UserError
	require.True(t, errors.As(err, &userErr), "expected UserError, got %v", err)
	assert.Equal(t, msgInsufficientData, userErr.Message)
}

func TestAnalyze_OneMonthTrainingWindow(t *testing.T) {
	path := writeIntervals(t, models.Date(2025, 8, 1), models.Date(2025, 10, 31))

	resp, err := newService(path, &recordingRunDAO{}).Analyze(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Series, 92)
	assert.Len(t, resp.Predictions, 61)
	assert.Len(t, resp.Validation.Dates, 31)
}

func TestAnalyze_ShortTrainingWindowFails(t *testing.T) {
	// a single training week cannot be seasonally differenced
	path := writeIntervals(t, models.Date(2025, 8, 25), models.Date(2025, 10, 31))

	_, err := newService(path, &recordingRunDAO{}).Analyze(context.Background())

	require.Error(t, err)
	var userErr *UserError
	assert.False(t, errors.As(err, &userErr))
	assert.True(t, errors.Is(err, sarima.ErrInsufficientData))
}

func TestAnalyze_MissingColumnFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llamadas_callcenter.csv")
	require.NoError(t, os.WriteFile(path, []byte("inicio_del_intervalo,contestadas\n01/06/2025 08:00,10\n"), 0o644))

	_, err := newService(path, &recordingRunDAO{}).Analyze(context.Background())

	require.Error(t, err)
	var userErr *UserError
	assert.False(t, errors.As(err, &userErr))
}

func TestAnalyze_RunLogFailureIsIgnored(t *testing.T) {
	path := writeIntervals(t, models.Date(2025, 6, 1), models.Date(2025, 10, 31))
	runDao := &recordingRunDAO{err: errors.New("redis down")}

	resp, err := newService(path, runDao).Analyze(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Predictions, 61)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	path := writeIntervals(t, models.Date(2025, 6, 1), models.Date(2025, 10, 31))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(path, &recordingRunDAO{}).Analyze(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRecentRuns(t *testing.T) {
	runDao := &recordingRunDAO{runs: []models.RunSummary{{RunID: "b"}, {RunID: "a"}}}

	runs, err := newService("unused.csv", runDao).RecentRuns(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "b", runs[0].RunID)
}
