package distanceaccumulator

import (
	"fmt"

	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

// DistanceAccumulator struct that collects the distance traveled in the trips of a dataset
// + Counter: counts the amount of trips whose distance could be calculated
// + Unknown: counts the trips with a station that is not in the catalog
// + TotalDistance: sum of distances traveled, in km
type DistanceAccumulator struct {
	Counter        int     `json:"counter"`
	Unknown        int     `json:"unknown"`
	TotalDistance  float64 `json:"total_distance"`
	distancesCache map[string]float64
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{
		distancesCache: make(map[string]float64),
	}
}

// UpdateAccumulator adds the distance between both stations. If one of them is
// nil the trip is counted as unknown.
func (da *DistanceAccumulator) UpdateAccumulator(startStation *station.StationData, endStation *station.StationData) {
	if startStation == nil || endStation == nil {
		da.Unknown += 1
		return
	}
	da.Counter += 1
	da.TotalDistance += da.GetDistance(startStation, endStation)
}

// GetDistance returns the distance in km between two stations. Distances are cached by station names
func (da *DistanceAccumulator) GetDistance(startStation *station.StationData, endStation *station.StationData) float64 {
	cacheKey := startStation.Name + "|" + endStation.Name
	distance, ok := da.distancesCache[cacheKey]
	if ok {
		return distance
	}

	latStartStation, longStartStation := startStation.GetCoordinates()
	latEndStation, longEndStation := endStation.GetCoordinates()
	distance = CalculateDistance(latStartStation, longStartStation, latEndStation, longEndStation)
	da.distancesCache[cacheKey] = distance
	return distance
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average distance, counter is zero", dataErrors.ErrAggregation)
	}
	return da.TotalDistance / float64(da.Counter), nil
}

// CalculateDistance returns the distance between two points using haversine formula
func CalculateDistance(latStartStation float64, longStartStation float64, latEndStation float64, longEndStation float64) float64 {
	station1 := haversine.Coord{Lat: latStartStation, Lon: longStartStation}
	station2 := haversine.Coord{Lat: latEndStation, Lon: longEndStation}

	_, km := haversine.Distance(station1, station2)
	return km
}
