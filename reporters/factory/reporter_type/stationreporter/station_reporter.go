package stationreporter

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
)

const (
	reporterType         = "station-stats"
	title                = "The Most Popular Stations and Trip"
	defaultPairSeparator = " - "
)

// StationStats most popular stations and trip
type StationStats struct {
	MostCommonStartStation modecounter.ValueCount[string] `json:"most_common_start_station"`
	MostCommonEndStation   modecounter.ValueCount[string] `json:"most_common_end_station"`
	MostCommonTrip         modecounter.ValueCount[string] `json:"most_common_trip"`
}

type StationReporter struct {
	pairSeparator string
}

func NewStationReporter(pairSeparator string) *StationReporter {
	if pairSeparator == "" {
		pairSeparator = defaultPairSeparator
	}
	return &StationReporter{
		pairSeparator: pairSeparator,
	}
}

func (sr *StationReporter) GetType() string {
	return reporterType
}

func (sr *StationReporter) GetTitle() string {
	return title
}

func (sr *StationReporter) GenerateReport(data *dataset.Dataset) (output.Renderable, error) {
	stationStats, err := ComputeStationStats(data, sr.pairSeparator)
	if err != nil {
		log.Debugf("[reporter: %s][method: GenerateReport][status: ERROR] %s", reporterType, err.Error())
		return nil, err
	}
	return stationStats, nil
}

// ComputeStationStats returns the most common start station, end station and trip.
// A trip is the start and end station joined by pairSeparator.
func ComputeStationStats(data *dataset.Dataset, pairSeparator string) (*StationStats, error) {
	if data.IsEmpty() {
		return nil, fmt.Errorf("%w: there are no trips to find the most popular stations", dataErrors.ErrAggregation)
	}

	startStations := modecounter.NewModeCounter[string]()
	endStations := modecounter.NewModeCounter[string]()
	trips := modecounter.NewModeCounter[string]()
	for _, tripData := range data.Trips {
		startStations.UpdateCounter(tripData.StartStation)
		endStations.UpdateCounter(tripData.EndStation)
		trips.UpdateCounter(tripData.GetTripKey(pairSeparator))
	}

	startStation, _ := startStations.GetMode()
	endStation, _ := endStations.GetMode()
	trip, _ := trips.GetMode()

	return &StationStats{
		MostCommonStartStation: startStation,
		MostCommonEndStation:   endStation,
		MostCommonTrip:         trip,
	}, nil
}

func (ss *StationStats) Render(printer *output.Printer) {
	printer.Stat("Most common start station", fmt.Sprintf("%s (%v trips)", ss.MostCommonStartStation.Value, ss.MostCommonStartStation.Count))
	printer.Stat("Most common end station", fmt.Sprintf("%s (%v trips)", ss.MostCommonEndStation.Value, ss.MostCommonEndStation.Count))
	printer.Stat("Most common trip", fmt.Sprintf("%s (%v trips)", ss.MostCommonTrip.Value, ss.MostCommonTrip.Count))
}
