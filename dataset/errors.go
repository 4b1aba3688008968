package dataset

import "errors"

var (
	ErrDataUnavailable    = errors.New("data unavailable")
	ErrUnknownCity        = errors.New("unknown city")
	ErrMissingColumn      = errors.New("missing column")
	ErrInvalidTripData    = errors.New("invalid trip data")
	ErrInvalidStationData = errors.New("invalid station data")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidDuration    = errors.New("invalid duration type")
	ErrInvalidBirthYear   = errors.New("invalid birth year type")
	ErrInvalidCoordinate  = errors.New("invalid coordinate type")
)
