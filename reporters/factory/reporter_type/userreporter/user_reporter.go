package userreporter

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/birthyearaccumulator"
	"bikeshare/domain/business/modecounter"
	"bikeshare/output"
)

const (
	reporterType = "user-stats"
	title        = "User Stats"
)

// CountStats occurrences of each value of a column plus the amount of missing values
type CountStats struct {
	Counts  []modecounter.ValueCount[string] `json:"counts"`
	Missing int                              `json:"missing"`
}

// BirthYearStats earliest, latest and most common birth year
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	Latest     int `json:"latest"`
	MostCommon int `json:"most_common"`
	Missing    int `json:"missing"`
}

// UserStats statistics about the users of the trips. Gender and BirthYears are nil
// when the city does not publish them.
type UserStats struct {
	City       string          `json:"city"`
	UserTypes  CountStats      `json:"user_types"`
	Genders    *CountStats     `json:"genders,omitempty"`
	BirthYears *BirthYearStats `json:"birth_years,omitempty"`
	// birthYearsAvailable is true when the city publishes birth years, even if none is valid
	birthYearsAvailable bool
}

type UserReporter struct{}

func NewUserReporter() *UserReporter {
	return &UserReporter{}
}

func (ur *UserReporter) GetType() string {
	return reporterType
}

func (ur *UserReporter) GetTitle() string {
	return title
}

// GenerateReport returns the user stats. When the birth years cannot be aggregated the
// report is returned along with the error, without birth year stats.
func (ur *UserReporter) GenerateReport(data *dataset.Dataset) (output.Renderable, error) {
	userStats, err := ComputeUserStats(data)
	if err != nil {
		log.Debugf("[reporter: %s][method: GenerateReport][status: ERROR] %s", reporterType, err.Error())
	}
	return userStats, err
}

// ComputeUserStats counts user types and, for cities with demographics, genders and birth years
func ComputeUserStats(data *dataset.Dataset) (*UserStats, error) {
	userTypes := modecounter.NewModeCounter[string]()
	genders := modecounter.NewModeCounter[string]()
	birthYears := birthyearaccumulator.NewBirthYearAccumulator()

	hasGender := data.HasGenderData()
	hasBirthYear := data.HasBirthYearData()
	for _, tripData := range data.Trips {
		userTypes.UpdateNullable(tripData.UserType)
		if hasGender {
			genders.UpdateNullable(tripData.Gender)
		}
		if hasBirthYear {
			birthYears.UpdateAccumulator(tripData.BirthYear)
		}
	}

	userStats := &UserStats{
		City: data.City,
		UserTypes: CountStats{
			Counts:  userTypes.GetValueCounts(),
			Missing: userTypes.GetMissing(),
		},
		birthYearsAvailable: hasBirthYear,
	}

	if hasGender {
		userStats.Genders = &CountStats{
			Counts:  genders.GetValueCounts(),
			Missing: genders.GetMissing(),
		}
	}

	if !hasBirthYear {
		return userStats, nil
	}

	birthYearStats, err := getBirthYearStats(birthYears)
	if err != nil {
		return userStats, err
	}
	userStats.BirthYears = birthYearStats
	return userStats, nil
}

func getBirthYearStats(birthYears *birthyearaccumulator.BirthYearAccumulator) (*BirthYearStats, error) {
	earliest, err := birthYears.GetEarliest()
	if err != nil {
		return nil, err
	}
	latest, err := birthYears.GetLatest()
	if err != nil {
		return nil, err
	}
	mostCommon, err := birthYears.GetMostCommon()
	if err != nil {
		return nil, err
	}

	return &BirthYearStats{
		Earliest:   earliest,
		Latest:     latest,
		MostCommon: mostCommon,
		Missing:    birthYears.GetMissing(),
	}, nil
}

func (us *UserStats) Render(printer *output.Printer) {
	printer.Header("Types of users:")
	renderCounts(printer, "User Type", us.UserTypes)

	if us.Genders == nil {
		printer.Header(fmt.Sprintf("Genders: no gender data available for %s", us.City))
	} else {
		printer.Header("Genders:")
		renderCounts(printer, "Gender", *us.Genders)
	}

	switch {
	case !us.birthYearsAvailable:
		printer.Header(fmt.Sprintf("Years of birth: no birth data available for %s", us.City))
	case us.BirthYears == nil:
		printer.Header("Years of birth: no valid birth year to aggregate")
	default:
		printer.Header("Years of birth:")
		printer.Stat("Earliest year of birth", us.BirthYears.Earliest)
		printer.Stat("Latest year of birth", us.BirthYears.Latest)
		printer.Stat("Most common year of birth", us.BirthYears.MostCommon)
		printMissing(printer, us.BirthYears.Missing)
	}
}

func renderCounts(printer *output.Printer, column string, countStats CountStats) {
	table := printer.NewTable([]string{column, "Count"})
	for _, valueCount := range countStats.Counts {
		table.AddRow([]string{valueCount.Value, strconv.Itoa(valueCount.Count)})
	}
	table.Render()
	printMissing(printer, countStats.Missing)
}

func printMissing(printer *output.Printer, missing int) {
	if missing != 0 {
		printer.Print("Please note there were %v unknown values.", missing)
	}
}
