package durationhandler

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "3"
	handlerType = "duration-handler"
	title       = "Calculating Trip Duration..."
)

// DurationStats total and mean trip duration, in seconds and split in calendar units
type DurationStats struct {
	Total      float64
	Mean       float64
	TotalParts durationaccumulator.TimeParts
	MeanParts  durationaccumulator.TimeParts
}

type DurationHandler struct{}

func NewDurationHandler() *DurationHandler {
	return &DurationHandler{}
}

func (dh *DurationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (dh *DurationHandler) GetQueryID() string {
	return queryID
}

// GetType returns handler type
func (dh *DurationHandler) GetType() string {
	return handlerType
}

// Compute returns the sum and the mean of the trip durations.
// handlerErrors.ErrNoData is returned if the table is empty
func (dh *DurationHandler) Compute(table *trip.Table) (*DurationStats, error) {
	if table.IsEmpty() {
		return nil, handlerErrors.ErrNoData
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range table.Trips {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, err
	}

	return &DurationStats{
		Total:      accumulator.TotalDuration,
		Mean:       mean,
		TotalParts: durationaccumulator.Decompose(accumulator.TotalDuration),
		MeanParts:  durationaccumulator.DecomposeMinutes(mean),
	}, nil
}

// GenerateResponse computes the stats of the table and returns them ready to be shown
func (dh *DurationHandler) GenerateResponse(table *trip.Table) (*queryresponse.QueryResponse, error) {
	start := time.Now()
	response := queryresponse.NewQueryResponse(queryID, title)

	stats, err := dh.Compute(table)
	switch {
	case errors.Is(err, handlerErrors.ErrNoData):
		log.Debug(dh.getLogMessage("GenerateResponse", "empty table", nil))
		response.AddLine(handlerErrors.NoDataMessage)
	case err != nil:
		log.Error(dh.getLogMessage("GenerateResponse", "error computing stats", err))
		return nil, err
	default:
		total := stats.TotalParts
		response.AddLine("Total Travel Time: %dd %dh %dm %ds", total.Days, total.Hours, total.Minutes, total.Seconds)
		response.AddLine("Mean Travel Time: %d minutes, %d seconds", stats.MeanParts.Minutes, stats.MeanParts.Seconds)
	}

	response.SetElapsed(time.Since(start))
	log.Debug(dh.getLogMessage("GenerateResponse", fmt.Sprintf("response generated for %v trips", table.Len()), nil))
	return response, nil
}
