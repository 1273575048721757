package errors

import "errors"

// Failures the session controller decides on
var (
	ErrInputRead             = errors.New("input read error")
	ErrRetriesExhausted      = errors.New("too many invalid entries")
	ErrDataSourceUnavailable = errors.New("data source unavailable")
	ErrAggregation           = errors.New("aggregation error")
)

// Data errors
var (
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidStationData  = errors.New("invalid station data")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrMissingColumn       = errors.New("missing column")
	ErrUnknownCity         = errors.New("unknown city")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrInvalidDay          = errors.New("invalid day")
)
