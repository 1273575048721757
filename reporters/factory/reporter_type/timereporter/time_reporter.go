package timereporter

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
)

const (
	reporterType = "time-stats"
	title        = "The Most Frequent Times of Travel"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth   modecounter.ValueCount[int]    `json:"most_common_month"`
	MostCommonWeekDay modecounter.ValueCount[string] `json:"most_common_week_day"`
	MostCommonHour    modecounter.ValueCount[int]    `json:"most_common_hour"`
}

type TimeReporter struct{}

func NewTimeReporter() *TimeReporter {
	return &TimeReporter{}
}

func (tr *TimeReporter) GetType() string {
	return reporterType
}

func (tr *TimeReporter) GetTitle() string {
	return title
}

func (tr *TimeReporter) GenerateReport(data *dataset.Dataset) (output.Renderable, error) {
	timeStats, err := ComputeTimeStats(data)
	if err != nil {
		log.Debugf("[reporter: %s][method: GenerateReport][status: ERROR] %s", reporterType, err.Error())
		return nil, err
	}
	return timeStats, nil
}

// ComputeTimeStats returns the most common month, weekday and start hour of the trips
func ComputeTimeStats(data *dataset.Dataset) (*TimeStats, error) {
	if data.IsEmpty() {
		return nil, fmt.Errorf("%w: there are no trips to find the most frequent times of travel", dataErrors.ErrAggregation)
	}

	months := modecounter.NewModeCounter[int]()
	weekDays := modecounter.NewModeCounter[string]()
	hours := modecounter.NewModeCounter[int]()
	for _, tripData := range data.Trips {
		months.UpdateCounter(tripData.Month)
		weekDays.UpdateCounter(tripData.WeekDay)
		hours.UpdateCounter(tripData.Hour)
	}

	// the dataset is not empty, so none of the counters is
	month, _ := months.GetMode()
	weekDay, _ := weekDays.GetMode()
	hour, _ := hours.GetMode()

	return &TimeStats{
		MostCommonMonth:   month,
		MostCommonWeekDay: weekDay,
		MostCommonHour:    hour,
	}, nil
}

func (ts *TimeStats) Render(printer *output.Printer) {
	printer.Stat("Most common month", fmt.Sprintf("%v - %s (%v trips)", ts.MostCommonMonth.Value, time.Month(ts.MostCommonMonth.Value), ts.MostCommonMonth.Count))
	printer.Stat("Most common day of the week", fmt.Sprintf("%s (%v trips)", ts.MostCommonWeekDay.Value, ts.MostCommonWeekDay.Count))
	printer.Stat("Most common start hour", fmt.Sprintf("%v (%v trips)", ts.MostCommonHour.Value, ts.MostCommonHour.Count))
}
