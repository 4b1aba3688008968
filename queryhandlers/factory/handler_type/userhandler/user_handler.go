package userhandler

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "4"
	handlerType = "user-handler"
	title       = "Calculating User Stats..."

	noBirthYearsMessage = "No birth year recorded for the selected trips."
)

// BirthYearStats earliest, most recent and most common birth year of the riders
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats demographics of the riders.
// + GenderAvailable, BirthYearAvailable: true if the source file has the column
// + Genders: counts of genders, empty if no trip has one
// + BirthYears: nil if the column is missing or no trip has a birth year
type UserStats struct {
	UserTypes          []tripcounter.ValueCount[string]
	GenderAvailable    bool
	Genders            []tripcounter.ValueCount[string]
	BirthYearAvailable bool
	BirthYears         *BirthYearStats
}

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (uh *UserHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (uh *UserHandler) GetQueryID() string {
	return queryID
}

// GetType returns handler type
func (uh *UserHandler) GetType() string {
	return handlerType
}

// Compute returns the counts of user types and genders, sorted by count in descending order,
// and the birth year stats. Empty cells are not counted.
// handlerErrors.ErrNoData is returned if the table is empty
func (uh *UserHandler) Compute(table *trip.Table) (*UserStats, error) {
	if table.IsEmpty() {
		return nil, handlerErrors.ErrNoData
	}

	userTypes := tripcounter.NewTripCounter[string]()
	genders := tripcounter.NewTripCounter[string]()
	birthYears := tripcounter.NewTripCounter[int]()
	earliest, mostRecent := 0, 0

	for _, tripData := range table.Trips {
		if tripData.UserType != nil {
			userTypes.UpdateCounter(*tripData.UserType)
		}
		if table.HasGender && tripData.Gender != nil {
			genders.UpdateCounter(*tripData.Gender)
		}
		if table.HasBirthYear && tripData.BirthYear != nil {
			year := *tripData.BirthYear
			if birthYears.Len() == 0 || year < earliest {
				earliest = year
			}
			if birthYears.Len() == 0 || year > mostRecent {
				mostRecent = year
			}
			birthYears.UpdateCounter(year)
		}
	}

	stats := &UserStats{
		UserTypes:          userTypes.Counts(),
		GenderAvailable:    table.HasGender,
		BirthYearAvailable: table.HasBirthYear,
	}
	if table.HasGender {
		stats.Genders = genders.Counts()
	}

	mostCommon, err := birthYears.Mode()
	if err == nil {
		stats.BirthYears = &BirthYearStats{
			Earliest:   earliest,
			MostRecent: mostRecent,
			MostCommon: mostCommon,
		}
	} else if !errors.Is(err, tripcounter.ErrEmptyCounter) {
		return nil, err
	}

	return stats, nil
}

// GenerateResponse computes the stats of the table and returns them ready to be shown
func (uh *UserHandler) GenerateResponse(table *trip.Table) (*queryresponse.QueryResponse, error) {
	start := time.Now()
	response := queryresponse.NewQueryResponse(queryID, title)

	stats, err := uh.Compute(table)
	switch {
	case errors.Is(err, handlerErrors.ErrNoData):
		log.Debug(uh.getLogMessage("GenerateResponse", "empty table", nil))
		response.AddLine(handlerErrors.NoDataMessage)
	case err != nil:
		log.Error(uh.getLogMessage("GenerateResponse", "error computing stats", err))
		return nil, err
	default:
		response.AddLine("Counts of User Types:")
		for _, userType := range stats.UserTypes {
			response.AddLine("%s: %d", userType.Value, userType.Counter)
		}

		response.AddLine("")
		if stats.GenderAvailable {
			response.AddLine("Counts of Gender:")
			for _, gender := range stats.Genders {
				response.AddLine("%s: %d", gender.Value, gender.Counter)
			}
		} else {
			response.AddLine("Gender data not available.")
		}

		response.AddLine("")
		switch {
		case !stats.BirthYearAvailable:
			response.AddLine("Birth year data not available.")
		case stats.BirthYears == nil:
			response.AddLine(noBirthYearsMessage)
		default:
			response.AddLine("Earliest Birth Year: %d", stats.BirthYears.Earliest)
			response.AddLine("Most Recent Birth Year: %d", stats.BirthYears.MostRecent)
			response.AddLine("Most Common Birth Year: %d", stats.BirthYears.MostCommon)
		}
	}

	response.SetElapsed(time.Since(start))
	log.Debug(uh.getLogMessage("GenerateResponse", fmt.Sprintf("response generated for %v trips", table.Len()), nil))
	return response, nil
}
