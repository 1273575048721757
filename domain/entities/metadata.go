package entities

// Metadata this struct contains extra information about a report produced during a session
// + City: city whose dataset was analyzed
// + Month: month filter applied ("all" when no filter)
// + Day: day filter applied ("all" when no filter)
// + Type: report type, e.g. time-stats, station-stats
// + Stage: component that built the Metadata
// + Message: message with extra information
type Metadata struct {
	City    string `json:"city"`
	Month   string `json:"month"`
	Day     string `json:"day"`
	Type    string `json:"type"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func NewMetadata(city string, month string, day string, dataType string, stage string, message string) Metadata {
	return Metadata{
		City:    city,
		Month:   month,
		Day:     day,
		Type:    dataType,
		Stage:   stage,
		Message: message,
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetMessage() string {
	return m.Message
}
