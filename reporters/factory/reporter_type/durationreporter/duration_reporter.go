package durationreporter

import (
	"fmt"
	"strconv"
	"time"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities"
	"bikeshare/output"
)

const (
	reporterType = "duration-stats"
	title        = "Trip Duration"
)

// DurationStats total and average trip duration, in seconds
type DurationStats struct {
	TotalDuration   float64                    `json:"total_duration"`
	AverageDuration entities.Nullable[float64] `json:"average_duration"`
	Missing         int                        `json:"missing"`
}

type DurationReporter struct{}

func NewDurationReporter() *DurationReporter {
	return &DurationReporter{}
}

func (dr *DurationReporter) GetType() string {
	return reporterType
}

func (dr *DurationReporter) GetTitle() string {
	return title
}

func (dr *DurationReporter) GenerateReport(data *dataset.Dataset) (output.Renderable, error) {
	return ComputeDurationStats(data), nil
}

// ComputeDurationStats sums the durations of the trips. Trips without duration are not
// taken into account for the total nor for the average.
func ComputeDurationStats(data *dataset.Dataset) *DurationStats {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range data.Trips {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	durationStats := &DurationStats{
		TotalDuration:   accumulator.GetTotalDuration(),
		AverageDuration: entities.None[float64](),
		Missing:         accumulator.GetMissing(),
	}
	if average, err := accumulator.GetAverageDuration(); err == nil {
		durationStats.AverageDuration = entities.Some(average)
	}
	return durationStats
}

func (ds *DurationStats) Render(printer *output.Printer) {
	printer.Stat("Total travel time", formatSeconds(ds.TotalDuration))

	if average, ok := ds.AverageDuration.Get(); ok {
		printer.Stat("Average travel time", formatSeconds(average))
	} else {
		printer.Stat("Average travel time", "not available, there are no trip durations")
	}

	if ds.Missing > 0 {
		printer.Print("Please note there were %v trips without duration.", ds.Missing)
	}
}

func formatSeconds(seconds float64) string {
	asDuration := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%s seconds (%s)", strconv.FormatFloat(seconds, 'f', -1, 64), asDuration)
}
