package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/queryhandlers/factory/handler_type/handlertest"
)

func TestWriteRows(t *testing.T) {
	first := handlertest.NewTrip("2017-06-23 15:09:32", 321, "Wood St", "Damen Ave",
		handlertest.WithUserType("Subscriber"), handlertest.WithGender("Male"), handlertest.WithBirthYear(1992))
	second := handlertest.NewTrip("2017-01-04 08:27:49", 416.5, "May St", "Taylor St")
	table := handlertest.NewTable(first, second)

	var output bytes.Buffer
	require.NoError(t, writeRows(&output, table, table.Trips))

	lines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{
		"Start", "Time", "End", "Time", "Trip", "Duration", "Start", "Station", "End", "Station",
		"User", "Type", "Gender", "Birth", "Year", "month", "day_of_week", "hour",
	}, strings.Fields(lines[0]))
	assert.Equal(t, []string{
		"2017-06-23", "15:09:32", "2017-06-23", "15:14:53", "321", "Wood", "St", "Damen", "Ave",
		"Subscriber", "Male", "1992", "6", "friday", "15",
	}, strings.Fields(lines[1]))
	assert.Equal(t, []string{
		"2017-01-04", "08:27:49", "2017-01-04", "08:34:45", "416.5", "May", "St", "Taylor", "St",
		"-", "-", "-", "1", "wednesday", "8",
	}, strings.Fields(lines[2]))
}

func TestWriteRowsWithoutDemographics(t *testing.T) {
	table := handlertest.NewTableWithoutDemographics(
		handlertest.NewTrip("2017-06-21 08:36:34", 489, "A", "B", handlertest.WithUserType("Customer")),
	)

	var output bytes.Buffer
	require.NoError(t, writeRows(&output, table, table.Trips))

	assert.NotContains(t, output.String(), "Gender")
	assert.NotContains(t, output.String(), "Birth Year")
	assert.Contains(t, output.String(), "Customer")
}
