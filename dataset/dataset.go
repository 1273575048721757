package dataset

import (
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// Dataset trips of a city, in the order they were read
// + City: city the trips belong to
// + HasDemographics: false if the city does not publish gender and birth year
// + HasGender, HasBirthYear: whether the source file has those columns
// + SkippedRows: rows dismissed because their start time could not be parsed
// + Stations: station catalog, empty when the city has none
type Dataset struct {
	City            string
	Trips           []*trip.TripData
	HasDemographics bool
	HasGender       bool
	HasBirthYear    bool
	SkippedRows     int
	Stations        station.Catalog
}

func (d *Dataset) Len() int {
	return len(d.Trips)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.Trips) == 0
}

// GetTrips returns the trips in [from, to). Bounds are clamped to the dataset size
func (d *Dataset) GetTrips(from int, to int) []*trip.TripData {
	if from < 0 {
		from = 0
	}
	if to > len(d.Trips) {
		to = len(d.Trips)
	}
	if from >= to {
		return nil
	}
	return d.Trips[from:to]
}

// HasGenderData returns true if gender can be aggregated for this dataset
func (d *Dataset) HasGenderData() bool {
	return d.HasDemographics && d.HasGender
}

// HasBirthYearData returns true if birth year can be aggregated for this dataset
func (d *Dataset) HasBirthYearData() bool {
	return d.HasDemographics && d.HasBirthYear
}

func (d *Dataset) HasStations() bool {
	return len(d.Stations) > 0
}

// withTrips returns a copy of the dataset with other trips
func (d *Dataset) withTrips(trips []*trip.TripData) *Dataset {
	filtered := *d
	filtered.Trips = trips
	return &filtered
}
