// Package testutil provides dataset fixtures shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
)

// ChicagoTrips has 7 data rows, the 6th has an invalid start time and is dismissed.
// Valid trips by month: 1, 1, 3, 6, 6, 2
const ChicagoTrips = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-02 08:07:57,2017-01-02 08:20:53,776,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1992.0
2,2017-01-09 17:11:00,2017-01-09 17:20:00,540,Canal St & Adams St,Streeter Dr & Grand Ave,Customer,,
3,2017-03-15 08:30:00,2017-03-15 08:50:00,1200,Streeter Dr & Grand Ave,Canal St & Adams St,Subscriber,Female,1985.0
4,2017-06-05 17:45:00,2017-06-05 17:50:00,300,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1992.0
5,2017-06-06 08:00:00,2017-06-06 08:10:00,600,Clinton St & Madison St,Canal St & Adams St,,Female,1970.0
6,not a date,2017-06-06 08:10:00,600,Clinton St & Madison St,Canal St & Adams St,Subscriber,Female,1970.0
7,2017-02-10 12:00:00,2017-02-10 12:30:00,,Streeter Dr & Grand Ave,Streeter Dr & Grand Ave,Customer,,
`

// ChicagoStations catalog with the stations of ChicagoTrips
const ChicagoStations = `name,latitude,longitude
Canal St & Adams St,41.879255,-87.639904
Clinton St & Madison St,41.882242,-87.641066
Streeter Dr & Grand Ave,41.892278,-87.612043
Broken Station,north,-87.6
`

// WashingtonTrips has no gender nor birth year columns
const WashingtonTrips = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330037,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Customer
`

// WriteFile writes content in dir/name and returns the path of the file
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// NewDataDir returns a directory with the chicago and washington fixtures.
// There is no file for new york city.
func NewDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "chicago.csv", ChicagoTrips)
	WriteFile(t, dir, "chicago_stations.csv", ChicagoStations)
	WriteFile(t, dir, "washington.csv", WashingtonTrips)
	return dir
}

// NewLoaderConfig returns the loader config used in production pointing to dataDir
func NewLoaderConfig(dataDir string) dataset.LoaderConfig {
	return dataset.LoaderConfig{
		DataDir:      dataDir,
		CSVDelimiter: ",",
		DateLayout:   "2006-01-02 15:04:05",
		Cities: []dataset.CityConfig{
			{Name: "chicago", File: "chicago.csv", StationsFile: "chicago_stations.csv", HasDemographics: true},
			{Name: "new york city", File: "new_york_city.csv", HasDemographics: true},
			{Name: "washington", File: "washington.csv", HasDemographics: false},
		},
		Columns: dataset.ColumnNames{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			TripDuration: "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		StationColumns: dataset.StationColumnNames{
			Name:      "name",
			Latitude:  "latitude",
			Longitude: "longitude",
		},
	}
}

// LoadDataset loads the trips of city from the fixtures without filters
func LoadDataset(t *testing.T, city string) *dataset.Dataset {
	t.Helper()
	loader := dataset.NewLoader(NewLoaderConfig(NewDataDir(t)))
	loaded, err := loader.Load(filter.NewCriteria(city, filter.All, filter.All))
	require.NoError(t, err)
	return loaded
}
