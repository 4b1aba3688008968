// Package handlertest builds trip tables for query handler tests.
package handlertest

import (
	"time"

	"bikeshare/domain/entities/trip"
)

const timeLayout = "2006-01-02 15:04:05"

// TripOption changes a trip built by NewTrip
type TripOption func(tripData *trip.TripData)

// NewTrip returns a trip that starts at startTime (2006-01-02 15:04:05 layout) and lasts duration seconds
func NewTrip(startTime string, duration float64, startStation string, endStation string, options ...TripOption) *trip.TripData {
	start, err := time.Parse(timeLayout, startTime)
	if err != nil {
		panic(err)
	}

	end := start.Add(time.Duration(duration * float64(time.Second)))
	tripData := trip.NewTripData(start, end, duration, startStation, endStation)
	for _, option := range options {
		option(tripData)
	}
	return tripData
}

func WithUserType(userType string) TripOption {
	return func(tripData *trip.TripData) {
		tripData.UserType = &userType
	}
}

func WithGender(gender string) TripOption {
	return func(tripData *trip.TripData) {
		tripData.Gender = &gender
	}
}

func WithBirthYear(birthYear int) TripOption {
	return func(tripData *trip.TripData) {
		tripData.BirthYear = &birthYear
	}
}

// NewTable returns a chicago table with every trip. Gender and birth year columns are marked as present
func NewTable(trips ...*trip.TripData) *trip.Table {
	table := trip.NewTable("chicago", true, true)
	for _, tripData := range trips {
		table.Append(tripData)
	}
	return table
}

// NewTableWithoutDemographics returns a washington table, which has no gender nor birth year columns
func NewTableWithoutDemographics(trips ...*trip.TripData) *trip.Table {
	table := trip.NewTable("washington", false, false)
	for _, tripData := range trips {
		table.Append(tripData)
	}
	return table
}
