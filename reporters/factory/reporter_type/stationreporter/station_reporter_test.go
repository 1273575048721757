package stationreporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
	"bikeshare/testutil"
)

func newDataset(stations [][2]string) *dataset.Dataset {
	data := &dataset.Dataset{City: "chicago"}
	startTime := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	for idx, pair := range stations {
		data.Trips = append(data.Trips, trip.NewTripData(idx+2, startTime.Add(time.Duration(idx)*time.Hour), pair[0], pair[1]))
	}
	return data
}

func TestComputeStationStats_TieBrokenByLoadOrder(t *testing.T) {
	data := newDataset([][2]string{
		{"StationA", "StationC"},
		{"StationB", "StationD"},
		{"StationA", "StationD"},
		{"StationB", "StationC"},
	})

	stationStats, err := ComputeStationStats(data, " - ")
	require.NoError(t, err)
	assert.Equal(t, "StationA", stationStats.MostCommonStartStation.Value)
	assert.Equal(t, 2, stationStats.MostCommonStartStation.Count)
	assert.Equal(t, "StationC", stationStats.MostCommonEndStation.Value)
	assert.Equal(t, "StationA - StationC", stationStats.MostCommonTrip.Value)
	assert.Equal(t, 1, stationStats.MostCommonTrip.Count)
}

func TestComputeStationStats_Chicago(t *testing.T) {
	stationStats, err := ComputeStationStats(testutil.LoadDataset(t, "chicago"), " - ")
	require.NoError(t, err)

	assert.Equal(t, "Canal St & Adams St", stationStats.MostCommonStartStation.Value)
	assert.Equal(t, 3, stationStats.MostCommonStartStation.Count)
	assert.Equal(t, "Clinton St & Madison St", stationStats.MostCommonEndStation.Value)
	assert.Equal(t, 2, stationStats.MostCommonEndStation.Count)
	assert.Equal(t, "Canal St & Adams St - Clinton St & Madison St", stationStats.MostCommonTrip.Value)
	assert.Equal(t, 2, stationStats.MostCommonTrip.Count)
}

func TestStationReporter_Separator(t *testing.T) {
	data := newDataset([][2]string{{"A", "B"}})

	report, err := NewStationReporter(" -> ").GenerateReport(data)
	require.NoError(t, err)
	assert.Equal(t, "A -> B", report.(*StationStats).MostCommonTrip.Value)

	report, err = NewStationReporter("").GenerateReport(data)
	require.NoError(t, err)
	assert.Equal(t, "A - B", report.(*StationStats).MostCommonTrip.Value)
}

func TestComputeStationStats_EmptyDataset(t *testing.T) {
	_, err := ComputeStationStats(&dataset.Dataset{}, " - ")
	assert.ErrorIs(t, err, dataErrors.ErrAggregation)
}

func TestStationStats_Render(t *testing.T) {
	stationStats, err := ComputeStationStats(newDataset([][2]string{{"A", "B"}, {"A", "C"}}), " - ")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	stationStats.Render(output.NewPrinterWithWriters(out, &bytes.Buffer{}, false))
	assert.Contains(t, out.String(), "Most common start station: A (2 trips)")
	assert.Contains(t, out.String(), "Most common end station: B (1 trips)")
	assert.Contains(t, out.String(), "Most common trip: A - B (1 trips)")
}
