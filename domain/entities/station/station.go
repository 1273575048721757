package station

// StationData struct that contains the coordinates of a station of the catalog
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewStationData(city string, name string, latitude float64, longitude float64) *StationData {
	return &StationData{
		City:      city,
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func (sd *StationData) GetCoordinates() (float64, float64) {
	return sd.Latitude, sd.Longitude
}

// Catalog stations of a city indexed by name
type Catalog map[string]*StationData

func (c Catalog) Add(stationData *StationData) {
	c[stationData.Name] = stationData
}

func (c Catalog) Get(name string) (*StationData, bool) {
	stationData, ok := c[name]
	return stationData, ok
}
