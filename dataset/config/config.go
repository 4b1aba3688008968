package config

import (
	"path/filepath"
)

const defaultTimeLayout = "2006-01-02 15:04:05"

// tripColumns contains the header name of each field to analyze
type tripColumns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	Duration     string `yaml:"duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// stationColumns contains the header name of each field of a stations file
type stationColumns struct {
	Name      string `yaml:"name"`
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}

// CityConfig files that belong to a city. StationsFile is optional
type CityConfig struct {
	Name         string `yaml:"name"`
	TripsFile    string `yaml:"trips_file"`
	StationsFile string `yaml:"stations_file"`
}

type DatasetConfig struct {
	DataDir        string         `yaml:"data_dir"`
	TimeLayout     string         `yaml:"time_layout"`
	Cities         []CityConfig   `yaml:"cities"`
	TripColumns    tripColumns    `yaml:"trip_columns"`
	StationColumns stationColumns `yaml:"station_columns"`
}

// DefaultConfig returns the configuration of the US bikeshare datasets
func DefaultConfig() *DatasetConfig {
	return &DatasetConfig{
		DataDir:    ".",
		TimeLayout: defaultTimeLayout,
		Cities: []CityConfig{
			{Name: "chicago", TripsFile: "chicago.csv"},
			{Name: "new york", TripsFile: "new_york_city.csv"},
			{Name: "washington", TripsFile: "washington.csv"},
		},
		TripColumns: tripColumns{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			Duration:     "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		StationColumns: stationColumns{
			Name:      "name",
			Latitude:  "latitude",
			Longitude: "longitude",
		},
	}
}

// GetCityNames returns the name of every configured city, in config order
func (dc *DatasetConfig) GetCityNames() []string {
	names := make([]string, 0, len(dc.Cities))
	for _, city := range dc.Cities {
		names = append(names, city.Name)
	}
	return names
}

func (dc *DatasetConfig) GetCity(name string) (CityConfig, bool) {
	for _, city := range dc.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return CityConfig{}, false
}

// GetTripsPath returns the path of the trips file of the city. Relative files are resolved against DataDir
func (dc *DatasetConfig) GetTripsPath(city CityConfig) string {
	return dc.resolve(city.TripsFile)
}

// GetStationsPath returns the path of the stations file of the city, or an empty string if it has none
func (dc *DatasetConfig) GetStationsPath(city CityConfig) string {
	if city.StationsFile == "" {
		return ""
	}
	return dc.resolve(city.StationsFile)
}

func (dc *DatasetConfig) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dc.DataDir, filename)
}
