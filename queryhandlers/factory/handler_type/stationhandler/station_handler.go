package stationhandler

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "2"
	handlerType = "station-handler"
	title       = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most popular stations and trip.
// Distances are nil when the coordinates of the stations are unknown
type StationStats struct {
	MostCommonStartStation string
	MostCommonEndStation   string
	MostCommonTrip         string
	MostCommonTripDistance *float64
	MeanTripDistance       *float64
}

type StationHandler struct {
	stations map[string]*station.StationData
}

// NewStationHandler returns a handler. stations are the coordinates of the stations by name, it may be nil
func NewStationHandler(stations map[string]*station.StationData) *StationHandler {
	return &StationHandler{
		stations: stations,
	}
}

func (sh *StationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (sh *StationHandler) GetQueryID() string {
	return queryID
}

// GetType returns handler type
func (sh *StationHandler) GetType() string {
	return handlerType
}

// Compute returns the most common start station, end station and trip ("<start> to <end>").
// handlerErrors.ErrNoData is returned if the table is empty
func (sh *StationHandler) Compute(table *trip.Table) (*StationStats, error) {
	if table.IsEmpty() {
		return nil, handlerErrors.ErrNoData
	}

	startStations := tripcounter.NewTripCounter[string]()
	endStations := tripcounter.NewTripCounter[string]()
	trips := tripcounter.NewTripCounter[string]()
	tripsByLabel := make(map[string]*trip.TripData)
	allTripsDistance := distanceaccumulator.NewDistanceAccumulator("all trips")

	for _, tripData := range table.Trips {
		startStations.UpdateCounter(tripData.StartStation)
		endStations.UpdateCounter(tripData.EndStation)

		label := tripData.GetTripLabel()
		trips.UpdateCounter(label)
		if _, ok := tripsByLabel[label]; !ok {
			tripsByLabel[label] = tripData
		}

		if distance, ok := sh.getDistance(tripData); ok {
			allTripsDistance.UpdateAccumulator(distance)
		}
	}

	stats := &StationStats{}
	var err error
	if stats.MostCommonStartStation, err = startStations.Mode(); err != nil {
		return nil, err
	}
	if stats.MostCommonEndStation, err = endStations.Mode(); err != nil {
		return nil, err
	}
	if stats.MostCommonTrip, err = trips.Mode(); err != nil {
		return nil, err
	}

	if distance, ok := sh.getDistance(tripsByLabel[stats.MostCommonTrip]); ok {
		stats.MostCommonTripDistance = &distance
	}

	meanDistance, err := allTripsDistance.GetAverageDistance()
	if err == nil {
		stats.MeanTripDistance = &meanDistance
	} else if !errors.Is(err, distanceaccumulator.ErrEmptyAccumulator) {
		return nil, err
	}

	return stats, nil
}

// getDistance returns the distance in km between the stations of the trip. False if any station has no coordinates
func (sh *StationHandler) getDistance(tripData *trip.TripData) (float64, bool) {
	if sh.stations == nil {
		return 0, false
	}

	startStation, okStart := sh.stations[tripData.StartStation]
	endStation, okEnd := sh.stations[tripData.EndStation]
	if !okStart || !okEnd {
		return 0, false
	}
	return startStation.DistanceTo(endStation), true
}

// GenerateResponse computes the stats of the table and returns them ready to be shown
func (sh *StationHandler) GenerateResponse(table *trip.Table) (*queryresponse.QueryResponse, error) {
	start := time.Now()
	response := queryresponse.NewQueryResponse(queryID, title)

	stats, err := sh.Compute(table)
	switch {
	case errors.Is(err, handlerErrors.ErrNoData):
		log.Debug(sh.getLogMessage("GenerateResponse", "empty table", nil))
		response.AddLine(handlerErrors.NoDataMessage)
	case err != nil:
		log.Error(sh.getLogMessage("GenerateResponse", "error computing stats", err))
		return nil, err
	default:
		response.AddLine("Most Common Start Station: %s", stats.MostCommonStartStation)
		response.AddLine("Most Common End Station: %s", stats.MostCommonEndStation)
		response.AddLine("Most Common Trip: %s", stats.MostCommonTrip)
		if stats.MostCommonTripDistance != nil {
			response.AddLine("Distance of Most Common Trip: %.2f km", *stats.MostCommonTripDistance)
		}
		if stats.MeanTripDistance != nil {
			response.AddLine("Mean Trip Distance: %.2f km", *stats.MeanTripDistance)
		}
	}

	response.SetElapsed(time.Since(start))
	log.Debug(sh.getLogMessage("GenerateResponse", fmt.Sprintf("response generated for %v trips", table.Len()), nil))
	return response, nil
}
