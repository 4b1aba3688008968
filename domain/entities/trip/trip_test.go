package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTripDataDerivedFields(t *testing.T) {
	tests := []struct {
		name      string
		startTime time.Time
		month     int
		day       string
		hour      int
	}{
		{
			name:      "sunday morning",
			startTime: time.Date(2017, time.January, 1, 9, 7, 57, 0, time.UTC),
			month:     1,
			day:       "sunday",
			hour:      9,
		},
		{
			name:      "midnight",
			startTime: time.Date(2017, time.June, 30, 0, 0, 0, 0, time.UTC),
			month:     6,
			day:       "friday",
			hour:      0,
		},
		{
			name:      "last hour of the day",
			startTime: time.Date(2017, time.March, 15, 23, 59, 59, 0, time.UTC),
			month:     3,
			day:       "wednesday",
			hour:      23,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tripData := NewTripData(tt.startTime, tt.startTime.Add(10*time.Minute), 600, "A", "B")

			assert.Equal(t, tt.month, tripData.Month)
			assert.Equal(t, tt.day, tripData.DayOfWeek)
			assert.Equal(t, tt.hour, tripData.Hour)
			assert.Nil(t, tripData.Gender)
			assert.Nil(t, tripData.BirthYear)
		})
	}
}

func TestGetTripLabel(t *testing.T) {
	start := time.Date(2017, time.January, 1, 9, 0, 0, 0, time.UTC)
	tripData := NewTripData(start, start, 1, "Canal St & Adams St", "Clinton St & Madison St")

	assert.Equal(t, "Canal St & Adams St to Clinton St & Madison St", tripData.GetTripLabel())
}

func TestTableWithTrips(t *testing.T) {
	start := time.Date(2017, time.January, 1, 9, 0, 0, 0, time.UTC)
	table := NewTable("chicago", true, false)
	table.Append(NewTripData(start, start, 1, "A", "B"))
	table.Append(NewTripData(start, start, 2, "B", "C"))

	narrowed := table.WithTrips(table.Trips[1:])

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 1, narrowed.Len())
	assert.Equal(t, "chicago", narrowed.City)
	assert.True(t, narrowed.HasGender)
	assert.False(t, narrowed.HasBirthYear)
	assert.Same(t, table.Trips[1], narrowed.Trips[0])
	assert.True(t, table.WithTrips(nil).IsEmpty())
}
