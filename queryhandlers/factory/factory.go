package factory

import (
	"fmt"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/queryhandlers/factory/handler_type/durationhandler"
	"bikeshare/queryhandlers/factory/handler_type/stationhandler"
	"bikeshare/queryhandlers/factory/handler_type/timehandler"
	"bikeshare/queryhandlers/factory/handler_type/userhandler"
)

const (
	TimeHandlerType     = "time-handler"
	StationHandlerType  = "station-handler"
	DurationHandlerType = "duration-handler"
	UserHandlerType     = "user-handler"
)

// HandlerTypes every handler type, in the order their responses are shown
var HandlerTypes = []string{TimeHandlerType, StationHandlerType, DurationHandlerType, UserHandlerType}

type Handler interface {
	GetQueryID() string
	GetType() string
	GenerateResponse(table *trip.Table) (*queryresponse.QueryResponse, error)
}

// NewQueryHandler initialize a handler of some type.
// Possible handler types are: time-handler, station-handler, duration-handler, user-handler.
// stations is only used by the station-handler and may be nil
func NewQueryHandler(handlerType string, stations map[string]*station.StationData) (Handler, error) {
	switch handlerType {
	case TimeHandlerType:
		return timehandler.NewTimeHandler(), nil
	case StationHandlerType:
		return stationhandler.NewStationHandler(stations), nil
	case DurationHandlerType:
		return durationhandler.NewDurationHandler(), nil
	case UserHandlerType:
		return userhandler.NewUserHandler(), nil
	}

	return nil, fmt.Errorf("[method: NewQueryHandler][status: error] Invalid handler type %s", handlerType)
}

// NewQueryHandlers returns one handler of each type, in HandlerTypes order
func NewQueryHandlers(stations map[string]*station.StationData) ([]Handler, error) {
	handlers := make([]Handler, 0, len(HandlerTypes))
	for _, handlerType := range HandlerTypes {
		handler, err := NewQueryHandler(handlerType, stations)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, handler)
	}
	return handlers, nil
}
