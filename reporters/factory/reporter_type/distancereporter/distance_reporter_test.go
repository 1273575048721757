package distancereporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/output"
	"bikeshare/testutil"
)

func TestComputeDistanceStats_Chicago(t *testing.T) {
	distanceStats := ComputeDistanceStats(testutil.LoadDataset(t, "chicago"))

	assert.True(t, distanceStats.Available)
	assert.Equal(t, 6, distanceStats.Measured)
	assert.Zero(t, distanceStats.UnknownStations)
	assert.True(t, distanceStats.AverageDistance.Valid)

	assert.Equal(t, "Canal St & Adams St", distanceStats.MostCommonTripStart)
	assert.Equal(t, "Clinton St & Madison St", distanceStats.MostCommonTripEnd)
	distance, ok := distanceStats.MostCommonTripDistance.Get()
	require.True(t, ok)
	assert.InDelta(t, 0.35, distance, 0.05)
}

func TestComputeDistanceStats_WithoutCatalog(t *testing.T) {
	distanceStats := ComputeDistanceStats(testutil.LoadDataset(t, "washington"))

	assert.False(t, distanceStats.Available)
	assert.False(t, distanceStats.AverageDistance.Valid)

	out := &bytes.Buffer{}
	distanceStats.Render(output.NewPrinterWithWriters(out, &bytes.Buffer{}, false))
	assert.Contains(t, out.String(), "no station coordinates available for washington")
}

func TestComputeDistanceStats_UnknownStations(t *testing.T) {
	catalog := station.Catalog{}
	catalog.Add(station.NewStationData("chicago", "A", 41.0, -87.0))
	catalog.Add(station.NewStationData("chicago", "B", 42.0, -87.0))

	startTime := time.Date(2017, time.April, 3, 10, 0, 0, 0, time.UTC)
	data := &dataset.Dataset{
		City: "chicago",
		Trips: []*trip.TripData{
			trip.NewTripData(2, startTime, "A", "Z"),
			trip.NewTripData(3, startTime, "A", "B"),
			trip.NewTripData(4, startTime, "A", "Z"),
		},
		Stations: catalog,
	}

	distanceStats := ComputeDistanceStats(data)
	assert.Equal(t, 1, distanceStats.Measured)
	assert.Equal(t, 2, distanceStats.UnknownStations)
	average, ok := distanceStats.AverageDistance.Get()
	require.True(t, ok)
	assert.InDelta(t, 111.0, average, 1.0)

	// the most common trip goes to a station without coordinates
	assert.Equal(t, "Z", distanceStats.MostCommonTripEnd)
	assert.False(t, distanceStats.MostCommonTripDistance.Valid)

	out := &bytes.Buffer{}
	distanceStats.Render(output.NewPrinterWithWriters(out, &bytes.Buffer{}, false))
	assert.Contains(t, out.String(), "Average trip distance: 111.")
	assert.Contains(t, out.String(), "2 trips were not measured")
}
