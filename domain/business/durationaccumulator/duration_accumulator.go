package durationaccumulator

import (
	"fmt"
	"math"

	"bikeshare/domain/entities"
	dataErrors "bikeshare/domain/errors"
)

// DurationAccumulator struct that collects the durations of the trips of a dataset.
// + Counter: counts the amount of valid durations collected
// + Missing: counts the trips without a valid duration
// + TotalDuration: sum of valid durations, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	Missing       int     `json:"missing"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration entities.Nullable[float64]) {
	value, ok := duration.Get()
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		da.Missing += 1
		return
	}
	da.Counter += 1
	da.TotalDuration += value
}

func (da *DurationAccumulator) GetTotalDuration() float64 {
	return da.TotalDuration
}

func (da *DurationAccumulator) GetMissing() int {
	return da.Missing
}

// GetAverageDuration returns the mean of the valid durations collected
func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average duration, counter is zero", dataErrors.ErrAggregation)
	}
	return da.TotalDuration / float64(da.Counter), nil
}
