package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset/config"
	"bikeshare/domain/entities/trip"
)

const (
	loaderType    = "trips-loader"
	byteOrderMark = "\ufeff"
	notFound      = -1
)

// tripColumnIndexes position of each field in the csv header. Optional fields are notFound when absent
type tripColumnIndexes struct {
	StartTime    int
	EndTime      int
	Duration     int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

// Loader reads the trips file of a city into a trip.Table
type Loader struct {
	config *config.DatasetConfig
}

func NewLoader(datasetConfig *config.DatasetConfig) *Loader {
	return &Loader{
		config: datasetConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[loader: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[loader: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// Load reads every trip of the city. Any problem with the file is returned wrapping ErrDataUnavailable
func (l *Loader) Load(city string) (*trip.Table, error) {
	cityConfig, ok := l.config.GetCity(city)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrDataUnavailable, ErrUnknownCity, city)
	}

	tripsPath := l.config.GetTripsPath(cityConfig)
	log.Debug(l.getLogMessage("Load", fmt.Sprintf("opening %s for city %s", tripsPath, city), nil))

	tripsFile, err := os.Open(tripsPath)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error opening %s", tripsPath), err))
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	defer func(tripsFile *os.File) {
		err := tripsFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("Load", fmt.Sprintf("error closing %s", tripsPath), err))
		}
	}(tripsFile)

	table, err := l.ReadTrips(city, tripsFile)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error reading %s", tripsPath), err))
		return nil, err
	}

	log.Info(l.getLogMessage("Load", fmt.Sprintf("%v trips loaded for %s", table.Len(), city), nil))
	return table, nil
}

// ReadTrips parses a csv with header from reader. Columns are found by name, so their order does not matter
// and extra columns are ignored. Gender and birth year columns are optional.
func (l *Loader) ReadTrips(city string, reader io.Reader) (*trip.Table, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w: empty file", ErrDataUnavailable, ErrMissingColumn)
		}
		return nil, fmt.Errorf("%w: error reading header: %w", ErrDataUnavailable, err)
	}

	indexes, err := l.getColumnIndexes(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	table := trip.NewTable(city, indexes.Gender != notFound, indexes.BirthYear != notFound)
	lineNumber := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		lineNumber += 1
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		}

		tripData, err := l.getTripData(row, indexes)
		if err != nil {
			return nil, fmt.Errorf("%w: line %v: %w", ErrDataUnavailable, lineNumber, err)
		}
		table.Append(tripData)
	}

	log.Debug(l.getLogMessage("ReadTrips", fmt.Sprintf("[city: %s] read %v rows, gender: %v, birth year: %v", city, table.Len(), table.HasGender, table.HasBirthYear), nil))
	return table, nil
}

func (l *Loader) getColumnIndexes(header []string) (tripColumnIndexes, error) {
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, byteOrderMark))
		positions[name] = idx
	}

	columns := l.config.TripColumns
	indexes := tripColumnIndexes{
		Gender:    getOptionalIndex(positions, columns.Gender),
		BirthYear: getOptionalIndex(positions, columns.BirthYear),
	}

	mandatory := []struct {
		name  string
		index *int
	}{
		{name: columns.StartTime, index: &indexes.StartTime},
		{name: columns.EndTime, index: &indexes.EndTime},
		{name: columns.Duration, index: &indexes.Duration},
		{name: columns.StartStation, index: &indexes.StartStation},
		{name: columns.EndStation, index: &indexes.EndStation},
		{name: columns.UserType, index: &indexes.UserType},
	}

	var missing []string
	for _, column := range mandatory {
		idx, ok := positions[column.name]
		if !ok {
			missing = append(missing, column.name)
			continue
		}
		*column.index = idx
	}

	if len(missing) > 0 {
		return tripColumnIndexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return indexes, nil
}

func getOptionalIndex(positions map[string]int, name string) int {
	if idx, ok := positions[name]; ok && name != "" {
		return idx
	}
	return notFound
}

func (l *Loader) getTripData(row []string, indexes tripColumnIndexes) (*trip.TripData, error) {
	startTime, err := time.Parse(l.config.TimeLayout, strings.TrimSpace(row[indexes.StartTime]))
	if err != nil {
		log.Debugf("Invalid start time: %v", row[indexes.StartTime])
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidTripData, ErrInvalidDate, row[indexes.StartTime])
	}

	endTime, err := time.Parse(l.config.TimeLayout, strings.TrimSpace(row[indexes.EndTime]))
	if err != nil {
		log.Debugf("Invalid end time: %v", row[indexes.EndTime])
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidTripData, ErrInvalidDate, row[indexes.EndTime])
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(row[indexes.Duration]), 64)
	if err != nil {
		log.Debugf("Invalid duration type: %v", row[indexes.Duration])
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidTripData, ErrInvalidDuration, row[indexes.Duration])
	}

	tripData := trip.NewTripData(startTime, endTime, duration, row[indexes.StartStation], row[indexes.EndStation])
	tripData.UserType = getOptionalString(row, indexes.UserType)
	tripData.Gender = getOptionalString(row, indexes.Gender)

	birthYear := getOptionalString(row, indexes.BirthYear)
	if birthYear != nil {
		year, err := strconv.ParseFloat(*birthYear, 64)
		if err != nil {
			log.Debugf("Invalid birth year type: %v", *birthYear)
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidTripData, ErrInvalidBirthYear, *birthYear)
		}
		yearAsInt := int(year)
		tripData.BirthYear = &yearAsInt
	}

	return tripData, nil
}

// getOptionalString returns nil if the column is absent or the cell is empty
func getOptionalString(row []string, idx int) *string {
	if idx == notFound || idx >= len(row) {
		return nil
	}
	value := strings.TrimSpace(row[idx])
	if value == "" {
		return nil
	}
	return &value
}
