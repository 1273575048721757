package distancereporter

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities"
	"bikeshare/output"
)

const (
	reporterType = "distance-stats"
	title        = "Trip Distances"
)

// DistanceStats distances between stations, in km
// + Available: false when the city has no station catalog, nothing else is set then
// + Measured: trips whose both stations are in the catalog
// + UnknownStations: trips with at least one station missing from the catalog
type DistanceStats struct {
	City                   string                     `json:"city"`
	Available              bool                       `json:"available"`
	AverageDistance        entities.Nullable[float64] `json:"average_distance"`
	MostCommonTripStart    string                     `json:"most_common_trip_start"`
	MostCommonTripEnd      string                     `json:"most_common_trip_end"`
	MostCommonTripDistance entities.Nullable[float64] `json:"most_common_trip_distance"`
	Measured               int                        `json:"measured"`
	UnknownStations        int                        `json:"unknown_stations"`
}

type stationPair struct {
	start string
	end   string
}

type DistanceReporter struct{}

func NewDistanceReporter() *DistanceReporter {
	return &DistanceReporter{}
}

func (dr *DistanceReporter) GetType() string {
	return reporterType
}

func (dr *DistanceReporter) GetTitle() string {
	return title
}

func (dr *DistanceReporter) GenerateReport(data *dataset.Dataset) (output.Renderable, error) {
	return ComputeDistanceStats(data), nil
}

// ComputeDistanceStats measures the trips whose stations are both in the catalog of the dataset
func ComputeDistanceStats(data *dataset.Dataset) *DistanceStats {
	distanceStats := &DistanceStats{
		City:                   data.City,
		Available:              data.HasStations(),
		AverageDistance:        entities.None[float64](),
		MostCommonTripDistance: entities.None[float64](),
	}
	if !distanceStats.Available {
		return distanceStats
	}

	accumulator := distanceaccumulator.NewDistanceAccumulator()
	trips := modecounter.NewModeCounter[stationPair]()
	for _, tripData := range data.Trips {
		startStation, _ := data.Stations.Get(tripData.StartStation)
		endStation, _ := data.Stations.Get(tripData.EndStation)
		accumulator.UpdateAccumulator(startStation, endStation)
		trips.UpdateCounter(stationPair{start: tripData.StartStation, end: tripData.EndStation})
	}

	distanceStats.Measured = accumulator.Counter
	distanceStats.UnknownStations = accumulator.Unknown
	if average, err := accumulator.GetAverageDistance(); err == nil {
		distanceStats.AverageDistance = entities.Some(average)
	}

	mostCommonTrip, err := trips.GetMode()
	if err != nil {
		return distanceStats
	}
	distanceStats.MostCommonTripStart = mostCommonTrip.Value.start
	distanceStats.MostCommonTripEnd = mostCommonTrip.Value.end

	startStation, okStart := data.Stations.Get(mostCommonTrip.Value.start)
	endStation, okEnd := data.Stations.Get(mostCommonTrip.Value.end)
	if okStart && okEnd {
		distanceStats.MostCommonTripDistance = entities.Some(accumulator.GetDistance(startStation, endStation))
	}
	return distanceStats
}

func (ds *DistanceStats) Render(printer *output.Printer) {
	if !ds.Available {
		printer.Print("Trip distances: no station coordinates available for %s", ds.City)
		return
	}

	if average, ok := ds.AverageDistance.Get(); ok {
		printer.Stat("Average trip distance", fmt.Sprintf("%.2f km", average))
	} else {
		printer.Stat("Average trip distance", "not available, no trip has both stations in the catalog")
	}

	if distance, ok := ds.MostCommonTripDistance.Get(); ok {
		printer.Stat("Most common trip distance", fmt.Sprintf("%.2f km (%s - %s)", distance, ds.MostCommonTripStart, ds.MostCommonTripEnd))
	}

	if ds.UnknownStations > 0 {
		printer.Print("Please note %v trips were not measured, their stations are not in the catalog.", ds.UnknownStations)
	}
}
