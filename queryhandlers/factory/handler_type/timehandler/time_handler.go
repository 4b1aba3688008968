package timehandler

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
	"bikeshare/utils"
)

const (
	queryID     = "1"
	handlerType = "time-handler"
	title       = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth time.Month
	MostCommonDay   string
	MostCommonHour  int
}

type TimeHandler struct{}

func NewTimeHandler() *TimeHandler {
	return &TimeHandler{}
}

func (th *TimeHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (th *TimeHandler) GetQueryID() string {
	return queryID
}

// GetType returns handler type
func (th *TimeHandler) GetType() string {
	return handlerType
}

// Compute returns the most common month, day of week and start hour of the trips.
// handlerErrors.ErrNoData is returned if the table is empty
func (th *TimeHandler) Compute(table *trip.Table) (*TimeStats, error) {
	if table.IsEmpty() {
		return nil, handlerErrors.ErrNoData
	}

	months := tripcounter.NewTripCounter[int]()
	days := tripcounter.NewTripCounter[string]()
	hours := tripcounter.NewTripCounter[int]()
	for _, tripData := range table.Trips {
		months.UpdateCounter(tripData.Month)
		days.UpdateCounter(tripData.DayOfWeek)
		hours.UpdateCounter(tripData.Hour)
	}

	month, err := months.Mode()
	if err != nil {
		return nil, err
	}
	day, err := days.Mode()
	if err != nil {
		return nil, err
	}
	hour, err := hours.Mode()
	if err != nil {
		return nil, err
	}

	return &TimeStats{
		MostCommonMonth: time.Month(month),
		MostCommonDay:   day,
		MostCommonHour:  hour,
	}, nil
}

// GenerateResponse computes the stats of the table and returns them ready to be shown
func (th *TimeHandler) GenerateResponse(table *trip.Table) (*queryresponse.QueryResponse, error) {
	start := time.Now()
	response := queryresponse.NewQueryResponse(queryID, title)

	stats, err := th.Compute(table)
	switch {
	case errors.Is(err, handlerErrors.ErrNoData):
		log.Debug(th.getLogMessage("GenerateResponse", "empty table", nil))
		response.AddLine(handlerErrors.NoDataMessage)
	case err != nil:
		log.Error(th.getLogMessage("GenerateResponse", "error computing stats", err))
		return nil, err
	default:
		response.AddLine("Most Common Month: %s", stats.MostCommonMonth)
		response.AddLine("Most Common Day of Week: %s", utils.Title(stats.MostCommonDay))
		response.AddLine("Most Common Start Hour: %d", stats.MostCommonHour)
	}

	response.SetElapsed(time.Since(start))
	log.Debug(th.getLogMessage("GenerateResponse", fmt.Sprintf("response generated for %v trips", table.Len()), nil))
	return response, nil
}
