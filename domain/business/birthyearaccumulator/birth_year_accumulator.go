package birthyearaccumulator

import (
	"fmt"
	"math"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities"
	dataErrors "bikeshare/domain/errors"
)

// BirthYearAccumulator collects the birth years of the users of a dataset.
// + Earliest: lowest valid birth year seen
// + Latest: highest valid birth year seen
// + Counter: amount of valid birth years
// + Missing: amount of trips without a valid birth year
type BirthYearAccumulator struct {
	Earliest float64
	Latest   float64
	Counter  int
	Missing  int
	years    *modecounter.ModeCounter[int]
}

func NewBirthYearAccumulator() *BirthYearAccumulator {
	return &BirthYearAccumulator{
		Earliest: math.Inf(1),
		Latest:   math.Inf(-1),
		years:    modecounter.NewModeCounter[int](),
	}
}

func (ba *BirthYearAccumulator) UpdateAccumulator(birthYear entities.Nullable[float64]) {
	year, ok := birthYear.Get()
	if !ok || math.IsNaN(year) || math.IsInf(year, 0) {
		ba.Missing += 1
		return
	}

	ba.Counter += 1
	ba.Earliest = math.Min(ba.Earliest, year)
	ba.Latest = math.Max(ba.Latest, year)
	ba.years.UpdateCounter(int(year))
}

func (ba *BirthYearAccumulator) GetMissing() int {
	return ba.Missing
}

func (ba *BirthYearAccumulator) GetEarliest() (int, error) {
	if ba.Counter == 0 {
		return 0, ba.noValuesError("earliest")
	}
	return int(ba.Earliest), nil
}

func (ba *BirthYearAccumulator) GetLatest() (int, error) {
	if ba.Counter == 0 {
		return 0, ba.noValuesError("latest")
	}
	return int(ba.Latest), nil
}

func (ba *BirthYearAccumulator) GetMostCommon() (int, error) {
	if ba.Counter == 0 {
		return 0, ba.noValuesError("most common")
	}
	mode, err := ba.years.GetMode()
	if err != nil {
		return 0, err
	}
	return mode.Value, nil
}

func (ba *BirthYearAccumulator) noValuesError(stat string) error {
	return fmt.Errorf("%w: cannot get %s birth year, there are no numeric values (%v missing)", dataErrors.ErrAggregation, stat, ba.Missing)
}
