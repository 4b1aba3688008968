package dataset

import (
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
)

// Filter returns a table with the trips that match the month and day of the selection, in their original order.
// Rows are shared with the input table and never modified. The result may be empty.
func Filter(table *trip.Table, sel selection.Selection) *trip.Table {
	if !sel.FilterByMonth() && !sel.FilterByDay() {
		return table.WithTrips(table.Trips)
	}

	monthNumber := sel.MonthNumber()
	filtered := make([]*trip.TripData, 0)
	for _, tripData := range table.Trips {
		if sel.FilterByMonth() && tripData.Month != monthNumber {
			continue
		}
		if sel.FilterByDay() && tripData.DayOfWeek != sel.Day {
			continue
		}
		filtered = append(filtered, tripData)
	}

	return table.WithTrips(filtered)
}
