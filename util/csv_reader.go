package util

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"callcenter-forecast/models"
)

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{
	models.ColumnIntervalStart,
	models.ColumnAnswered,
	models.ColumnAbandoned,
	models.ColumnSLACompliant,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadIntervalRecords loads the interval rows of a call-center CSV export.
// A file without data rows yields no records and no error.
func ReadIntervalRecords(path string) ([]models.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	if dataLines(data) < 2 {
		return []models.RawRecord{}, nil
	}

	// Every column stays a string; numeric coercion happens per cell.
	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse CSV %q: %w", path, df.Err)
	}

	columns := make(map[string][]string, len(requiredColumns))
	names := df.Names()
	for _, name := range requiredColumns {
		if !contains(names, name) {
			return nil, fmt.Errorf("%w %q in %s", ErrMissingColumn, name, path)
		}
		columns[name] = df.Col(name).Records()
	}

	records := make([]models.RawRecord, df.Nrow())
	for i := range records {
		records[i] = models.RawRecord{
			IntervalStart: columns[models.ColumnIntervalStart][i],
			Answered:      columns[models.ColumnAnswered][i],
			Abandoned:     columns[models.ColumnAbandoned][i],
			SLACompliant:  columns[models.ColumnSLACompliant][i],
		}
	}
	return records, nil
}

// dataLines counts the non-blank lines, header included.
func dataLines(data []byte) int {
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
