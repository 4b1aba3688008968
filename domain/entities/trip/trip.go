package trip

import (
	"strings"
	"time"
)

// TripData struct that contains the data of a single ride
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of rider, nil if the cell was empty
// + Gender: gender of the rider, nil if the cell was empty or the city does not record it
// + BirthYear: birth year of the rider, nil if the cell was empty or the city does not record it
// + Month, DayOfWeek, Hour: derived from StartTime when the trip is created
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     *string   `json:"user_type,omitempty"`
	Gender       *string   `json:"gender,omitempty"`
	BirthYear    *int      `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
	Hour         int       `json:"hour"`
}

// NewTripData returns a TripData with its derived fields computed from startTime
func NewTripData(startTime time.Time, endTime time.Time, duration float64, startStation string, endStation string) *TripData {
	return &TripData{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		Month:        int(startTime.Month()),
		DayOfWeek:    strings.ToLower(startTime.Weekday().String()),
		Hour:         startTime.Hour(),
	}
}

// GetTripLabel returns the label that identifies the route of the trip: "<start> to <end>"
func (td *TripData) GetTripLabel() string {
	return td.StartStation + " to " + td.EndStation
}
