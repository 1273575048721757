package factory

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/output"
	"bikeshare/reporters/factory/config"
	"bikeshare/reporters/factory/reporter_type/distancereporter"
	"bikeshare/reporters/factory/reporter_type/durationreporter"
	"bikeshare/reporters/factory/reporter_type/stationreporter"
	"bikeshare/reporters/factory/reporter_type/timereporter"
	"bikeshare/reporters/factory/reporter_type/userreporter"
)

const (
	TimeReporterType     = "time-stats"
	StationReporterType  = "station-stats"
	DurationReporterType = "duration-stats"
	UserReporterType     = "user-stats"
	DistanceReporterType = "distance-stats"
)

// DefaultReporters order in which the reporters run when none is configured
var DefaultReporters = []string{
	TimeReporterType,
	StationReporterType,
	DurationReporterType,
	UserReporterType,
	DistanceReporterType,
}

// IReporter computes a report over a dataset. Reporters are stateless, a non-nil report
// may come along with an error when only part of it could be computed.
type IReporter interface {
	GetType() string
	GetTitle() string
	GenerateReport(data *dataset.Dataset) (output.Renderable, error)
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-stats, station-stats, duration-stats, user-stats, distance-stats
func NewReporter(reporterType string, reportersConfig config.ReportersConfig) (IReporter, error) {
	switch reporterType {
	case TimeReporterType:
		return timereporter.NewTimeReporter(), nil
	case StationReporterType:
		return stationreporter.NewStationReporter(reportersConfig.PairSeparator), nil
	case DurationReporterType:
		return durationreporter.NewDurationReporter(), nil
	case UserReporterType:
		return userreporter.NewUserReporter(), nil
	case DistanceReporterType:
		return distancereporter.NewDistanceReporter(), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] Invalid reporter type %s", reporterType)
}

// NewReporters returns the enabled reporters in the configured order
func NewReporters(reportersConfig config.ReportersConfig) ([]IReporter, error) {
	reporterTypes := reportersConfig.Enabled
	if len(reporterTypes) == 0 {
		reporterTypes = DefaultReporters
	}

	reporters := make([]IReporter, 0, len(reporterTypes))
	for _, reporterType := range reporterTypes {
		reporter, err := NewReporter(reporterType, reportersConfig)
		if err != nil {
			return nil, err
		}
		reporters = append(reporters, reporter)
	}
	return reporters, nil
}
