package userhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/tripcounter"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
	"bikeshare/queryhandlers/factory/handler_type/handlertest"
)

var (
	subscriber = handlertest.WithUserType("Subscriber")
	customer   = handlertest.WithUserType("Customer")
	male       = handlertest.WithGender("Male")
	female     = handlertest.WithGender("Female")
)

func TestComputeWithDemographics(t *testing.T) {
	table := handlertest.NewTable(
		handlertest.NewTrip("2017-01-02 08:00:00", 60, "A", "B", customer, female, handlertest.WithBirthYear(1985)),
		handlertest.NewTrip("2017-01-02 09:00:00", 60, "A", "B", subscriber, male, handlertest.WithBirthYear(1992)),
		handlertest.NewTrip("2017-01-02 10:00:00", 60, "A", "B", subscriber, male, handlertest.WithBirthYear(1939)),
		handlertest.NewTrip("2017-01-02 11:00:00", 60, "A", "B", subscriber, handlertest.WithBirthYear(1992)),
		handlertest.NewTrip("2017-01-02 12:00:00", 60, "A", "B", customer),
	)

	stats, err := NewUserHandler().Compute(table)
	require.NoError(t, err)

	assert.Equal(t, []tripcounter.ValueCount[string]{
		{Value: "Subscriber", Counter: 3},
		{Value: "Customer", Counter: 2},
	}, stats.UserTypes)
	assert.Equal(t, []tripcounter.ValueCount[string]{
		{Value: "Male", Counter: 2},
		{Value: "Female", Counter: 1},
	}, stats.Genders)
	require.NotNil(t, stats.BirthYears)
	assert.Equal(t, BirthYearStats{Earliest: 1939, MostRecent: 1992, MostCommon: 1992}, *stats.BirthYears)
}

func TestComputeWithoutDemographicColumns(t *testing.T) {
	table := handlertest.NewTableWithoutDemographics(
		handlertest.NewTrip("2017-01-02 08:00:00", 60, "A", "B", subscriber),
		handlertest.NewTrip("2017-01-02 09:00:00", 60, "A", "B", customer),
	)

	stats, err := NewUserHandler().Compute(table)
	require.NoError(t, err)

	assert.Len(t, stats.UserTypes, 2)
	assert.False(t, stats.GenderAvailable)
	assert.Nil(t, stats.Genders)
	assert.False(t, stats.BirthYearAvailable)
	assert.Nil(t, stats.BirthYears)
}

func TestComputeColumnsPresentButEmpty(t *testing.T) {
	table := handlertest.NewTable(
		handlertest.NewTrip("2017-01-02 08:00:00", 60, "A", "B", customer),
	)

	stats, err := NewUserHandler().Compute(table)
	require.NoError(t, err)

	assert.True(t, stats.GenderAvailable)
	assert.NotNil(t, stats.Genders)
	assert.Empty(t, stats.Genders)
	assert.True(t, stats.BirthYearAvailable)
	assert.Nil(t, stats.BirthYears)
}

func TestComputeEmptyTable(t *testing.T) {
	_, err := NewUserHandler().Compute(handlertest.NewTable())
	assert.ErrorIs(t, err, handlerErrors.ErrNoData)
}

func TestGenerateResponse(t *testing.T) {
	tests := []struct {
		name  string
		build func() []string
		want  []string
	}{
		{
			name: "city with demographics",
			build: func() []string {
				table := handlertest.NewTable(
					handlertest.NewTrip("2017-01-02 08:00:00", 60, "A", "B", subscriber, male, handlertest.WithBirthYear(1990)),
					handlertest.NewTrip("2017-01-02 09:00:00", 60, "A", "B", customer, female, handlertest.WithBirthYear(2000)),
					handlertest.NewTrip("2017-01-02 10:00:00", 60, "A", "B", subscriber, female, handlertest.WithBirthYear(2000)),
				)
				response, err := NewUserHandler().GenerateResponse(table)
				require.NoError(t, err)
				return response.Lines
			},
			want: []string{
				"Counts of User Types:",
				"Subscriber: 2",
				"Customer: 1",
				"",
				"Counts of Gender:",
				"Female: 2",
				"Male: 1",
				"",
				"Earliest Birth Year: 1990",
				"Most Recent Birth Year: 2000",
				"Most Common Birth Year: 2000",
			},
		},
		{
			name: "city without demographics",
			build: func() []string {
				table := handlertest.NewTableWithoutDemographics(
					handlertest.NewTrip("2017-01-02 08:00:00", 60, "A", "B", subscriber),
				)
				response, err := NewUserHandler().GenerateResponse(table)
				require.NoError(t, err)
				return response.Lines
			},
			want: []string{
				"Counts of User Types:",
				"Subscriber: 1",
				"",
				"Gender data not available.",
				"",
				"Birth year data not available.",
			},
		},
		{
			name: "columns present but every cell empty",
			build: func() []string {
				table := handlertest.NewTable(
					handlertest.NewTrip("2017-01-02 08:00:00", 60, "A", "B", customer),
				)
				response, err := NewUserHandler().GenerateResponse(table)
				require.NoError(t, err)
				return response.Lines
			},
			want: []string{
				"Counts of User Types:",
				"Customer: 1",
				"",
				"Counts of Gender:",
				"",
				noBirthYearsMessage,
			},
		},
		{
			name: "empty table",
			build: func() []string {
				response, err := NewUserHandler().GenerateResponse(handlertest.NewTable())
				require.NoError(t, err)
				return response.Lines
			},
			want: []string{handlerErrors.NoDataMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build())
		})
	}
}
