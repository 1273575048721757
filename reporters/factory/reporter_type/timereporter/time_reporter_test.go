package timereporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
	"bikeshare/testutil"
)

func TestComputeTimeStats_Chicago(t *testing.T) {
	timeStats, err := ComputeTimeStats(testutil.LoadDataset(t, "chicago"))
	require.NoError(t, err)

	// january and june have 2 trips each, january is seen first
	assert.Equal(t, 1, timeStats.MostCommonMonth.Value)
	assert.Equal(t, 2, timeStats.MostCommonMonth.Count)
	assert.Equal(t, "Monday", timeStats.MostCommonWeekDay.Value)
	assert.Equal(t, 3, timeStats.MostCommonWeekDay.Count)
	assert.Equal(t, 8, timeStats.MostCommonHour.Value)
	assert.Equal(t, 3, timeStats.MostCommonHour.Count)
}

func TestComputeTimeStats_HourTie(t *testing.T) {
	startTimes := []time.Time{
		time.Date(2017, time.May, 1, 18, 0, 0, 0, time.UTC),
		time.Date(2017, time.May, 2, 7, 0, 0, 0, time.UTC),
		time.Date(2017, time.May, 3, 7, 30, 0, 0, time.UTC),
		time.Date(2017, time.May, 4, 18, 30, 0, 0, time.UTC),
	}
	data := &dataset.Dataset{City: "chicago"}
	for idx, startTime := range startTimes {
		data.Trips = append(data.Trips, trip.NewTripData(idx+2, startTime, "A", "B"))
	}

	timeStats, err := ComputeTimeStats(data)
	require.NoError(t, err)
	assert.Equal(t, 18, timeStats.MostCommonHour.Value)
	assert.Equal(t, "Monday", timeStats.MostCommonWeekDay.Value)
	assert.Equal(t, 5, timeStats.MostCommonMonth.Value)
}

func TestComputeTimeStats_EmptyDataset(t *testing.T) {
	_, err := ComputeTimeStats(&dataset.Dataset{City: "chicago"})
	assert.ErrorIs(t, err, dataErrors.ErrAggregation)

	report, err := NewTimeReporter().GenerateReport(&dataset.Dataset{City: "chicago"})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, dataErrors.ErrAggregation)
}

func TestTimeStats_Render(t *testing.T) {
	report, err := NewTimeReporter().GenerateReport(testutil.LoadDataset(t, "chicago"))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	report.Render(output.NewPrinterWithWriters(out, &bytes.Buffer{}, false))
	assert.Contains(t, out.String(), "Most common month: 1 - January (2 trips)")
	assert.Contains(t, out.String(), "Most common day of the week: Monday (3 trips)")
	assert.Contains(t, out.String(), "Most common start hour: 8 (3 trips)")
}
