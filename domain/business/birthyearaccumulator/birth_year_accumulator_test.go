package birthyearaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities"
	dataErrors "bikeshare/domain/errors"
)

func TestBirthYearAccumulator(t *testing.T) {
	accumulator := NewBirthYearAccumulator()
	years := []entities.Nullable[float64]{
		entities.Some(1992.0),
		entities.Some(1989.0),
		entities.None[float64](),
		entities.Some(2001.0),
		entities.Some(1989.0),
		entities.Some(1940.0),
	}
	for _, year := range years {
		accumulator.UpdateAccumulator(year)
	}

	earliest, err := accumulator.GetEarliest()
	require.NoError(t, err)
	assert.Equal(t, 1940, earliest)

	latest, err := accumulator.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, 2001, latest)

	mostCommon, err := accumulator.GetMostCommon()
	require.NoError(t, err)
	assert.Equal(t, 1989, mostCommon)

	assert.Equal(t, 1, accumulator.GetMissing())
}

func TestBirthYearAccumulator_NoNumericValues(t *testing.T) {
	accumulator := NewBirthYearAccumulator()
	accumulator.UpdateAccumulator(entities.None[float64]())
	accumulator.UpdateAccumulator(entities.None[float64]())

	_, err := accumulator.GetEarliest()
	assert.ErrorIs(t, err, dataErrors.ErrAggregation)
	_, err = accumulator.GetLatest()
	assert.ErrorIs(t, err, dataErrors.ErrAggregation)
	_, err = accumulator.GetMostCommon()
	assert.ErrorIs(t, err, dataErrors.ErrAggregation)
	assert.Equal(t, 2, accumulator.GetMissing())
}
