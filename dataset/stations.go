package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
)

// LoadStations reads the stations file of the city, indexed by station name.
// If the city has no stations file a nil map is returned.
func (l *Loader) LoadStations(city string) (map[string]*station.StationData, error) {
	cityConfig, ok := l.config.GetCity(city)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrDataUnavailable, ErrUnknownCity, city)
	}

	stationsPath := l.config.GetStationsPath(cityConfig)
	if stationsPath == "" {
		log.Debug(l.getLogMessage("LoadStations", fmt.Sprintf("city %s has no stations file", city), nil))
		return nil, nil
	}

	stationsFile, err := os.Open(stationsPath)
	if err != nil {
		log.Error(l.getLogMessage("LoadStations", fmt.Sprintf("error opening %s", stationsPath), err))
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	defer stationsFile.Close()

	stations, err := l.ReadStations(city, stationsFile)
	if err != nil {
		log.Error(l.getLogMessage("LoadStations", fmt.Sprintf("error reading %s", stationsPath), err))
		return nil, err
	}

	log.Info(l.getLogMessage("LoadStations", fmt.Sprintf("%v stations loaded for %s", len(stations), city), nil))
	return stations, nil
}

// ReadStations parses a csv with name, latitude and longitude columns. A repeated name keeps its last row
func (l *Loader) ReadStations(city string, reader io.Reader) (map[string]*station.StationData, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: error reading header: %w", ErrDataUnavailable, err)
	}

	positions := make(map[string]int, len(header))
	for idx, name := range header {
		positions[strings.TrimSpace(strings.TrimPrefix(name, byteOrderMark))] = idx
	}

	columns := l.config.StationColumns
	nameIdx, okName := positions[columns.Name]
	latitudeIdx, okLatitude := positions[columns.Latitude]
	longitudeIdx, okLongitude := positions[columns.Longitude]
	if !okName || !okLatitude || !okLongitude {
		return nil, fmt.Errorf("%w: %w: expected %s, %s and %s", ErrDataUnavailable, ErrMissingColumn, columns.Name, columns.Latitude, columns.Longitude)
	}

	stations := make(map[string]*station.StationData)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		}

		latitude, err := strconv.ParseFloat(strings.TrimSpace(row[latitudeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %w: %s", ErrDataUnavailable, ErrInvalidStationData, ErrInvalidCoordinate, row[latitudeIdx])
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(row[longitudeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %w: %s", ErrDataUnavailable, ErrInvalidStationData, ErrInvalidCoordinate, row[longitudeIdx])
		}

		name := row[nameIdx]
		stations[name] = station.NewStationData(city, name, latitude, longitude)
	}

	return stations, nil
}
