package dataset

// CityConfig data source of a city
// + Name: key typed by the user, e.g. new york city
// + File: trips file, relative to the data directory
// + StationsFile: optional catalog with station coordinates
// + HasDemographics: false for cities that do not publish gender and birth year
type CityConfig struct {
	Name            string `yaml:"name"`
	File            string `yaml:"file"`
	StationsFile    string `yaml:"stations_file"`
	HasDemographics bool   `yaml:"has_demographics"`
}

// ColumnNames header of each column used by the explorer
type ColumnNames struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	TripDuration string `yaml:"trip_duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// StationColumnNames header of each column of a stations catalog
type StationColumnNames struct {
	Name      string `yaml:"name"`
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}

type LoaderConfig struct {
	DataDir        string             `yaml:"data_dir"`
	CSVDelimiter   string             `yaml:"csv_delimiter"`
	DateLayout     string             `yaml:"date_layout"`
	Cities         []CityConfig       `yaml:"cities"`
	Columns        ColumnNames        `yaml:"columns"`
	StationColumns StationColumnNames `yaml:"station_columns"`
}

// GetCity returns the config of the given city
func (lc LoaderConfig) GetCity(name string) (CityConfig, bool) {
	for _, city := range lc.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return CityConfig{}, false
}

// GetCityNames returns the name of every configured city, in config order
func (lc LoaderConfig) GetCityNames() []string {
	names := make([]string, 0, len(lc.Cities))
	for _, city := range lc.Cities {
		names = append(names, city.Name)
	}
	return names
}
