package trip

import (
	"time"

	"bikeshare/domain/entities"
)

// TripData struct that contains the data of a single trip of a city dataset
// + Line: line of the source file where the trip was read (header is line 1)
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: Subscriber, Customer, ...
// + Gender: only present for cities that publish demographics
// + BirthYear: only present for cities that publish demographics
// + Month, WeekDay, Hour: derived once from StartTime
type TripData struct {
	Line         int                          `json:"line"`
	StartTime    time.Time                    `json:"start_time"`
	EndTime      entities.Nullable[time.Time] `json:"end_time"`
	Duration     entities.Nullable[float64]   `json:"duration"`
	StartStation string                       `json:"start_station"`
	EndStation   string                       `json:"end_station"`
	UserType     entities.Nullable[string]    `json:"user_type"`
	Gender       entities.Nullable[string]    `json:"gender"`
	BirthYear    entities.Nullable[float64]   `json:"birth_year"`
	Month        int                          `json:"month"`
	WeekDay      string                       `json:"week_day"`
	Hour         int                          `json:"hour"`
}

// NewTripData builds a TripData deriving month, weekday and hour from startTime
func NewTripData(line int, startTime time.Time, startStation string, endStation string) *TripData {
	return &TripData{
		Line:         line,
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Month:        int(startTime.Month()),
		WeekDay:      startTime.Weekday().String(),
		Hour:         startTime.Hour(),
	}
}

// GetTripKey returns the start and end station joined by separator
func (td *TripData) GetTripKey(separator string) string {
	return td.StartStation + separator + td.EndStation
}
