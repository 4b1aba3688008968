package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/domain/entities/trip"
)

const (
	rowTimeLayout = "2006-01-02 15:04:05"
	emptyCell     = "-"
)

// rowHeader returns the column names of the table, optional columns included only if the table has them
func rowHeader(table *trip.Table) []string {
	header := []string{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if table.HasGender {
		header = append(header, "Gender")
	}
	if table.HasBirthYear {
		header = append(header, "Birth Year")
	}
	return append(header, "month", "day_of_week", "hour")
}

func rowCells(table *trip.Table, tripData *trip.TripData) []string {
	cells := []string{
		tripData.StartTime.Format(rowTimeLayout),
		tripData.EndTime.Format(rowTimeLayout),
		strconv.FormatFloat(tripData.Duration, 'f', -1, 64),
		tripData.StartStation,
		tripData.EndStation,
		optionalCell(tripData.UserType),
	}
	if table.HasGender {
		cells = append(cells, optionalCell(tripData.Gender))
	}
	if table.HasBirthYear {
		birthYear := emptyCell
		if tripData.BirthYear != nil {
			birthYear = strconv.Itoa(*tripData.BirthYear)
		}
		cells = append(cells, birthYear)
	}
	return append(cells, strconv.Itoa(tripData.Month), tripData.DayOfWeek, strconv.Itoa(tripData.Hour))
}

func optionalCell(value *string) string {
	if value == nil || *value == "" {
		return emptyCell
	}
	return *value
}

// writeRows writes the page as aligned columns preceded by the header
func writeRows(w io.Writer, table *trip.Table, page []*trip.TripData) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(rowHeader(table), "\t")); err != nil {
		return err
	}
	for _, tripData := range page {
		if _, err := fmt.Fprintln(tw, strings.Join(rowCells(table, tripData), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
