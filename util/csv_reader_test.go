package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callcenter-forecast/models"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "llamadas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadIntervalRecords(t *testing.T) {
	path := writeCSV(t, "inicio_del_intervalo,cola,contestadas,abandonadas,cumplen_el_sla\n"+
		"01/06/2025 08:00,ventas,10,2,8\n"+
		"01/06/2025 08:30,ventas,,1,x\n"+
		"02/06/2025,soporte,7,0,7\n")

	records, err := ReadIntervalRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, models.RawRecord{
		IntervalStart: "01/06/2025 08:00",
		Answered:      "10",
		Abandoned:     "2",
		SLACompliant:  "8",
	}, records[0])
	assert.Equal(t, "02/06/2025", records[2].IntervalStart)

	// blank and non-numeric cells are read as missing counts
	assert.False(t, models.ParseNullFloat(records[1].Answered).Valid)
	assert.False(t, models.ParseNullFloat(records[1].SLACompliant).Valid)
	assert.Equal(t, 1.0, models.ParseNullFloat(records[1].Abandoned).Value)
}

func TestReadIntervalRecords_StripsByteOrderMark(t *testing.T) {
	path := writeCSV(t, "\ufeffinicio_del_intervalo,contestadas,abandonadas,cumplen_el_sla\n"+
		"01/06/2025 08:00,10,2,8\n")

	records, err := ReadIntervalRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10", records[0].Answered)
}

func TestReadIntervalRecords_NoDataRows(t *testing.T) {
	for name, content := range map[string]string{
		"empty file":  "",
		"blank lines": "\n\n",
		"header only": "inicio_del_intervalo,contestadas,abandonadas,cumplen_el_sla\n",
	} {
		t.Run(name, func(t *testing.T) {
			records, err := ReadIntervalRecords(writeCSV(t, content))
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestReadIntervalRecords_MissingColumn(t *testing.T) {
	path := writeCSV(t, "inicio_del_intervalo,contestadas,abandonadas\n01/06/2025 08:00,10,2\n")

	_, err := ReadIntervalRecords(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), models.ColumnSLACompliant)
}

func TestReadIntervalRecords_MissingFile(t *testing.T) {
	_, err := ReadIntervalRecords(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
