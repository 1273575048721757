package filter

import (
	"fmt"
	"strings"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// All value of month and day that disables the filter
const All = "all"

var (
	// Months that can be selected, the index + 1 is the month of the year
	Months = []string{"january", "february", "march", "april", "may", "june"}
	Days   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Criteria filters chosen by the user
// + City: city to analyze, always resolved to a data source
// + Month: "all" or one of Months
// + Day: "all" or one of Days
type Criteria struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func NewCriteria(city string, month string, day string) Criteria {
	if month == "" {
		month = All
	}
	if day == "" {
		day = All
	}
	return Criteria{
		City:  city,
		Month: month,
		Day:   day,
	}
}

// ValidMonths returns the accepted entries for the month prompt
func ValidMonths() []string {
	return append([]string{All}, Months...)
}

// ValidDays returns the accepted entries for the day prompt
func ValidDays() []string {
	return append([]string{All}, Days...)
}

func (c Criteria) FilterByMonth() bool {
	return c.Month != All
}

func (c Criteria) FilterByDay() bool {
	return c.Day != All
}

// GetMonthNumber returns the month of the year of the month filter
func (c Criteria) GetMonthNumber() (int, error) {
	for idx, month := range Months {
		if month == c.Month {
			return idx + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not one of %v", dataErrors.ErrInvalidMonth, c.Month, Months)
}

// GetWeekDay returns the day filter as a weekday name, e.g. monday -> Monday
func (c Criteria) GetWeekDay() (string, error) {
	if !utils.ContainsString(c.Day, Days) {
		return "", fmt.Errorf("%w: %q is not one of %v", dataErrors.ErrInvalidDay, c.Day, Days)
	}
	return strings.ToUpper(c.Day[:1]) + c.Day[1:], nil
}

func (c Criteria) String() string {
	return fmt.Sprintf("(city = %s ; month = %s ; day = %s)", c.City, c.Month, c.Day)
}
