package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	defaultDateLayout = "2006-01-02 15:04:05"
	utf8BOM           = "\ufeff"
	missingColumn     = -1
)

// nullMarkers lowercase cell values read as missing text
var nullMarkers = []string{"nan", "na", "n/a", "null"}

// tripColumns index of each column in the file being read. Optional columns are
// missingColumn when the file does not have them.
type tripColumns struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

type Loader struct {
	config LoaderConfig
}

func NewLoader(loaderConfig LoaderConfig) *Loader {
	if loaderConfig.DateLayout == "" {
		loaderConfig.DateLayout = defaultDateLayout
	}
	if loaderConfig.CSVDelimiter == "" {
		loaderConfig.CSVDelimiter = ","
	}
	return &Loader{
		config: loaderConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: loader][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: loader][method: %s][status: OK] %s", method, message)
}

// Load reads the trips of the city of the criteria and applies its month and day filters.
// If the trips file cannot be used an error wrapping ErrDataSourceUnavailable is returned.
func (l *Loader) Load(criteria filter.Criteria) (*Dataset, error) {
	cityConfig, ok := l.config.GetCity(criteria.City)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", dataErrors.ErrDataSourceUnavailable, dataErrors.ErrUnknownCity, criteria.City)
	}

	dataset, err := l.readTrips(cityConfig)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error reading trips of %s", cityConfig.Name), err))
		return nil, err
	}

	if cityConfig.StationsFile != "" {
		stations, err := l.readStations(cityConfig)
		if err != nil {
			log.Warn(l.getLogMessage("Load", fmt.Sprintf("stations of %s not available", cityConfig.Name), err))
		} else {
			dataset.Stations = stations
		}
	}

	log.Info(l.getLogMessage("Load", fmt.Sprintf("%v trips of %s loaded, %v rows skipped", dataset.Len(), cityConfig.Name, dataset.SkippedRows), nil))
	return Filter(dataset, criteria)
}

// Filter returns the trips of the dataset that match the month and day of the criteria
func Filter(dataset *Dataset, criteria filter.Criteria) (*Dataset, error) {
	if !criteria.FilterByMonth() && !criteria.FilterByDay() {
		return dataset, nil
	}

	month := 0
	if criteria.FilterByMonth() {
		monthNumber, err := criteria.GetMonthNumber()
		if err != nil {
			return nil, err
		}
		month = monthNumber
	}

	weekDay := ""
	if criteria.FilterByDay() {
		day, err := criteria.GetWeekDay()
		if err != nil {
			return nil, err
		}
		weekDay = day
	}

	var filteredTrips []*trip.TripData
	for _, tripData := range dataset.Trips {
		if month != 0 && tripData.Month != month {
			continue
		}
		if weekDay != "" && tripData.WeekDay != weekDay {
			continue
		}
		filteredTrips = append(filteredTrips, tripData)
	}

	return dataset.withTrips(filteredTrips), nil
}

func (l *Loader) getFilePath(filename string) string {
	return filepath.Join(l.config.DataDir, filename)
}

func (l *Loader) openCSV(filename string) (*os.File, *csv.Reader, map[string]int, error) {
	path := l.getFilePath(filename)
	dataFile, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s", dataErrors.ErrDataSourceUnavailable, err.Error())
	}

	reader := csv.NewReader(dataFile)
	reader.Comma = []rune(l.config.CSVDelimiter)[0]
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		_ = dataFile.Close()
		return nil, nil, nil, fmt.Errorf("%w: error reading header of %s: %s", dataErrors.ErrDataSourceUnavailable, path, err.Error())
	}

	headerIndexes := make(map[string]int, len(header))
	for idx, columnName := range header {
		columnName = strings.TrimSpace(strings.TrimPrefix(columnName, utf8BOM))
		if _, ok := headerIndexes[columnName]; !ok {
			headerIndexes[columnName] = idx
		}
	}

	return dataFile, reader, headerIndexes, nil
}

func (l *Loader) readTrips(cityConfig CityConfig) (*Dataset, error) {
	dataFile, reader, headerIndexes, err := l.openCSV(cityConfig.File)
	if err != nil {
		return nil, err
	}
	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("readTrips", fmt.Sprintf("error closing %s", dataFile.Name()), err))
		}
	}(dataFile)

	columns, err := l.getTripColumns(headerIndexes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", dataErrors.ErrDataSourceUnavailable, cityConfig.File, err)
	}

	dataset := &Dataset{
		City:            cityConfig.Name,
		HasDemographics: cityConfig.HasDemographics,
		HasGender:       columns.gender != missingColumn,
		HasBirthYear:    columns.birthYear != missingColumn,
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseError *csv.ParseError
			if errors.As(err, &parseError) {
				log.Debug(l.getLogMessage("readTrips", fmt.Sprintf("dismissing malformed line %v", parseError.StartLine), err))
				dataset.SkippedRows += 1
				continue
			}
			return nil, fmt.Errorf("%w: error reading %s: %s", dataErrors.ErrDataSourceUnavailable, cityConfig.File, err.Error())
		}
		line, _ := reader.FieldPos(0)

		tripData, err := l.getTripData(record, columns, line)
		if err != nil {
			if errors.Is(err, dataErrors.ErrInvalidTripData) {
				log.Debug(l.getLogMessage("readTrips", fmt.Sprintf("dismissing line %v", line), err))
				dataset.SkippedRows += 1
				continue
			}
			return nil, err
		}
		dataset.Trips = append(dataset.Trips, tripData)
	}

	return dataset, nil
}

func (l *Loader) getTripColumns(headerIndexes map[string]int) (tripColumns, error) {
	optional := func(columnName string) int {
		idx, ok := headerIndexes[columnName]
		if !ok || columnName == "" {
			return missingColumn
		}
		return idx
	}

	columns := tripColumns{
		startTime:    optional(l.config.Columns.StartTime),
		endTime:      optional(l.config.Columns.EndTime),
		duration:     optional(l.config.Columns.TripDuration),
		startStation: optional(l.config.Columns.StartStation),
		endStation:   optional(l.config.Columns.EndStation),
		userType:     optional(l.config.Columns.UserType),
		gender:       optional(l.config.Columns.Gender),
		birthYear:    optional(l.config.Columns.BirthYear),
	}

	mandatory := map[string]int{
		l.config.Columns.StartTime:    columns.startTime,
		l.config.Columns.StartStation: columns.startStation,
		l.config.Columns.EndStation:   columns.endStation,
	}
	for columnName, idx := range mandatory {
		if idx == missingColumn {
			return tripColumns{}, fmt.Errorf("%w: %q", dataErrors.ErrMissingColumn, columnName)
		}
	}

	return columns, nil
}

// getTripData builds a trip from a record. Only an invalid start time makes the record invalid,
// any other unparseable cell is treated as a missing value.
func (l *Loader) getTripData(record []string, columns tripColumns, line int) (*trip.TripData, error) {
	startTimeStr := getCell(record, columns.startTime)
	startTime, err := l.parseTime(startTimeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: start time %q: %w", dataErrors.ErrInvalidTripData, startTimeStr, dataErrors.ErrInvalidDate)
	}

	tripData := trip.NewTripData(
		line,
		startTime,
		getCell(record, columns.startStation),
		getCell(record, columns.endStation),
	)

	if endTimeStr := getCell(record, columns.endTime); endTimeStr != "" {
		endTime, err := l.parseTime(endTimeStr)
		if err == nil {
			tripData.EndTime = entities.Some(endTime)
		}
	}

	tripData.Duration = l.parseFloat(getCell(record, columns.duration), line, dataErrors.ErrInvalidDurationType)
	tripData.UserType = getText(getCell(record, columns.userType))
	tripData.Gender = getText(getCell(record, columns.gender))
	tripData.BirthYear = l.parseFloat(getCell(record, columns.birthYear), line, nil)

	return tripData, nil
}

func (l *Loader) parseTime(value string) (time.Time, error) {
	parsed, err := time.Parse(l.config.DateLayout, value)
	if err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (l *Loader) parseFloat(value string, line int, invalidTypeErr error) entities.Nullable[float64] {
	if value == "" {
		return entities.None[float64]()
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		if err != nil && invalidTypeErr != nil {
			log.Debug(l.getLogMessage("parseFloat", fmt.Sprintf("line %v: %q", line, value), invalidTypeErr))
		}
		return entities.None[float64]()
	}
	return entities.Some(parsed)
}

func getCell(record []string, idx int) string {
	if idx == missingColumn || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// getText returns None for empty cells and for the markers used for missing values
func getText(value string) entities.Nullable[string] {
	if value == "" || utils.ContainsString(strings.ToLower(value), nullMarkers) {
		return entities.None[string]()
	}
	return entities.Some(value)
}

// readStations reads the station catalog of the city. Stations with invalid coordinates are dismissed
func (l *Loader) readStations(cityConfig CityConfig) (station.Catalog, error) {
	dataFile, reader, headerIndexes, err := l.openCSV(cityConfig.StationsFile)
	if err != nil {
		return nil, err
	}
	defer dataFile.Close()

	nameIdx, okName := headerIndexes[l.config.StationColumns.Name]
	latitudeIdx, okLatitude := headerIndexes[l.config.StationColumns.Latitude]
	longitudeIdx, okLongitude := headerIndexes[l.config.StationColumns.Longitude]
	if !okName || !okLatitude || !okLongitude {
		return nil, fmt.Errorf("%w: stations file %s needs %v", dataErrors.ErrMissingColumn, cityConfig.StationsFile, l.config.StationColumns)
	}

	catalog := station.Catalog{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", cityConfig.StationsFile, err)
		}

		stationData, err := getStationData(cityConfig.Name, getCell(record, nameIdx), getCell(record, latitudeIdx), getCell(record, longitudeIdx))
		if err != nil {
			log.Debug(l.getLogMessage("readStations", "dismissing station", err))
			continue
		}
		catalog.Add(stationData)
	}

	return catalog, nil
}

// getStationData returns the station if the following conditions are met:
// + Name is not the empty string
// + Latitude is between -90 and 90
// + Longitude is between -180 and 180
func getStationData(city string, name string, latitudeStr string, longitudeStr string) (*station.StationData, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", dataErrors.ErrInvalidStationData)
	}

	latitude, err := strconv.ParseFloat(latitudeStr, 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: %s latitude %q: %w", dataErrors.ErrInvalidStationData, name, latitudeStr, dataErrors.ErrInvalidCoordinate)
	}

	longitude, err := strconv.ParseFloat(longitudeStr, 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: %s longitude %q: %w", dataErrors.ErrInvalidStationData, name, longitudeStr, dataErrors.ErrInvalidCoordinate)
	}

	return station.NewStationData(city, name, latitude, longitude), nil
}
